package auth

const (
	// UsersKey holds the user collection; SessionKey holds the marker
	// for the currently signed-in session.
	UsersKey   = "erpUsers"
	SessionKey = "erpUser"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account record. Password holds the bcrypt hash; accounts
// are never deleted, only deactivated.
type User struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
	CreatedDate string  `json:"createdDate"`
	LastLogin   *string `json:"lastLogin,omitempty"`
}

func (u User) RecordID() string { return u.Username }

// Session is the marker persisted on login and removed on logout.
type Session struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime"`
}
