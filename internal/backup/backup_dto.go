package backup

import (
	"go-erp/internal/employee"
	"go-erp/internal/equipment"
	"go-erp/internal/serviceorder"
)

// Document is the export shape: the three collections plus the export
// timestamp, matching the file the frontend downloads.
type Document struct {
	Employees     []employee.Employee         `json:"employees"`
	Equipment     []equipment.Equipment       `json:"equipment"`
	ServiceOrders []serviceorder.ServiceOrder `json:"serviceOrders"`
	ExportDate    string                      `json:"exportDate"`
}

// ImportDocument distinguishes an absent collection from an empty one.
// Absent collections are left untouched on import.
type ImportDocument struct {
	Employees     *[]employee.Employee         `json:"employees"`
	Equipment     *[]equipment.Equipment       `json:"equipment"`
	ServiceOrders *[]serviceorder.ServiceOrder `json:"serviceOrders"`
}

// ImportSummary reports which collections an import replaced.
type ImportSummary struct {
	Employees     bool `json:"employees"`
	Equipment     bool `json:"equipment"`
	ServiceOrders bool `json:"serviceOrders"`
}
