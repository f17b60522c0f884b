package employee

// SaveEmployeeRequest carries the registration form values. Fields
// arrive as the form submitted them; numeric and date parsing happens
// in the service so parse failures surface as business-rule errors.
type SaveEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	HireDate   string `json:"hireDate" binding:"required"`
	Salary     string `json:"salary" binding:"required"`
	Active     *bool  `json:"active"`
}

// Stats is the dashboard block derived from the employee collection.
type Stats struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	ByDepartment map[string]int `json:"byDepartment"`
	NewThisMonth int            `json:"newThisMonth"`
}
