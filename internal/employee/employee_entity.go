package employee

import "github.com/shopspring/decimal"

const (
	// CollectionKey is the persistence channel key for this collection.
	CollectionKey = "erpEmployees"
	// IDPrefix is the identifier prefix; sequences render as EMP0001.
	IDPrefix = "EMP"
)

// Departments is the fixed enumeration offered by the registration
// form. Membership is not enforced on save; the form is the gatekeeper.
var Departments = []string{"TI", "RH", "Financeiro", "Operações", "Vendas", "Marketing"}

// Employee is stored exactly as serialized: json tags define the wire
// and shadow-copy format. Employees are never deleted; deactivation
// flips Active.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	HireDate   string          `json:"hireDate"`
	Salary     decimal.Decimal `json:"salary"`
	Active     bool            `json:"active"`
}

func (e Employee) RecordID() string { return e.ID }
