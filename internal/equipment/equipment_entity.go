package equipment

const (
	CollectionKey = "erpEquipment"
	IDPrefix      = "EQ"
)

// Status values carried as plain data; transitions are not validated.
const (
	StatusActive      = "Ativo"
	StatusMaintenance = "Manutenção"
	StatusInactive    = "Inativo"
	StatusDiscarded   = "Descartado"
)

// Types is the fixed enumeration offered by the registration form.
var Types = []string{
	"Computador", "Impressora", "Monitor", "Rede", "Projetor",
	"Telefone", "Celular", "Segurança", "Energia", "Outros",
}

// Equipment mirrors the persisted record. Responsible is a soft
// reference to an employee identifier; empty means unassigned.
type Equipment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	PurchaseDate string `json:"purchaseDate"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	Responsible  string `json:"responsible"`
}

func (e Equipment) RecordID() string { return e.ID }
