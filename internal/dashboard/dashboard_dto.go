package dashboard

import (
	"go-erp/internal/employee"
	"go-erp/internal/equipment"
	"go-erp/internal/serviceorder"
)

// Stats bundles the three per-collection blocks the dashboard renders.
type Stats struct {
	Employees     employee.Stats     `json:"employees"`
	Equipment     equipment.Stats    `json:"equipment"`
	ServiceOrders serviceorder.Stats `json:"serviceOrders"`
}
