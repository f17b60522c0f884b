package serviceorder

// SaveServiceOrderRequest carries the order form values. CreatedDate
// is only honored on create; edits keep the stored creation date. The
// form never submits a completion date.
type SaveServiceOrderRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	EquipmentID    string `json:"equipmentId"`
	Category       string `json:"category" binding:"required"`
	Priority       string `json:"priority" binding:"required"`
	Status         string `json:"status"`
	EstimatedHours string `json:"estimatedHours"`
	AssignedTo     string `json:"assignedTo" binding:"required"`
	RequestedBy    string `json:"requestedBy"`
	CreatedDate    string `json:"createdDate"`
	DueDate        string `json:"dueDate"`
}

// Stats is the dashboard block derived from the order collection.
type Stats struct {
	Total      int            `json:"total"`
	Open       int            `json:"open"`
	Urgent     int            `json:"urgent"`
	Completed  int            `json:"completed"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
}
