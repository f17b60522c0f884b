package serviceorder

import "github.com/shopspring/decimal"

const (
	CollectionKey = "erpServiceOrders"
	IDPrefix      = "OS"
)

// Status values carried as plain data. Any transition is allowed,
// including reopening a completed order.
const (
	StatusPending    = "Pendente"
	StatusInProgress = "Em Andamento"
	StatusScheduled  = "Agendada"
	StatusCompleted  = "Concluída"
	StatusCancelled  = "Cancelada"
)

const (
	PriorityLow    = "Baixa"
	PriorityMedium = "Média"
	PriorityHigh   = "Alta"
	PriorityUrgent = "Urgente"
)

// Categories is the fixed enumeration offered by the order form.
var Categories = []string{
	"Manutenção Preventiva", "Manutenção Corretiva", "Instalação",
	"Configuração", "Reparo", "Atualização", "Backup", "Teste", "Outros",
}

// ServiceOrder mirrors the persisted record. EquipmentID is nil for
// orders not tied to a specific asset; CompletedDate is never written
// by the form and survives edits untouched.
type ServiceOrder struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	EquipmentID    *string         `json:"equipmentId"`
	Category       string          `json:"category"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	AssignedTo     string          `json:"assignedTo"`
	RequestedBy    *string         `json:"requestedBy"`
	CreatedDate    string          `json:"createdDate"`
	DueDate        *string         `json:"dueDate"`
	CompletedDate  *string         `json:"completedDate,omitempty"`
}

func (o ServiceOrder) RecordID() string { return o.ID }
