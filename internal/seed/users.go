package seed

import (
	"go-erp/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

// Users returns the default account. The well-known demo password is
// hashed at seed time so the stored record never carries plaintext.
func Users() []auth.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("mudar@123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return []auth.User{
		{
			Username:    "admin",
			Password:    string(hashed),
			Role:        auth.RoleAdmin,
			Active:      true,
			CreatedDate: "2025-07-01",
		},
	}
}
