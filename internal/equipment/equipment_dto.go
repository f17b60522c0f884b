package equipment

// SaveEquipmentRequest carries the registration form values. Status
// defaults to Ativo when omitted, matching the form's preselection.
type SaveEquipmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber" binding:"required"`
	PurchaseDate string `json:"purchaseDate" binding:"required"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	Responsible  string `json:"responsible"`
}

// Stats is the dashboard block derived from the equipment collection.
type Stats struct {
	Total       int            `json:"total"`
	Active      int            `json:"active"`
	Maintenance int            `json:"maintenance"`
	ByType      map[string]int `json:"byType"`
}
