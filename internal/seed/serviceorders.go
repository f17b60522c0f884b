package seed

import (
	"go-erp/internal/serviceorder"

	"github.com/shopspring/decimal"
)

func strptr(s string) *string { return &s }

func ServiceOrders() []serviceorder.ServiceOrder {
	return []serviceorder.ServiceOrder{
		{
			ID:             "OS0001",
			Title:          "Manutenção Preventiva - Projetor",
			Description:    "Realizar limpeza e verificação de componentes do projetor da sala de reuniões",
			EquipmentID:    strptr("EQ0004"),
			AssignedTo:     "EMP0011",
			RequestedBy:    strptr("EMP0002"),
			Priority:       "Média",
			Status:         "Em Andamento",
			CreatedDate:    "2025-07-18",
			DueDate:        strptr("2025-07-25"),
			EstimatedHours: decimal.NewFromInt(4),
			Category:       "Manutenção Preventiva",
		},
		{
			ID:             "OS0002",
			Title:          "Instalação de Software - Notebook",
			Description:    "Instalar e configurar novo software de desenvolvimento no notebook do desenvolvedor",
			EquipmentID:    strptr("EQ0001"),
			AssignedTo:     "EMP0003",
			RequestedBy:    strptr("EMP0001"),
			Priority:       "Alta",
			Status:         "Pendente",
			CreatedDate:    "2025-07-19",
			DueDate:        strptr("2025-07-22"),
			EstimatedHours: decimal.NewFromInt(2),
			Category:       "Instalação",
		},
		{
			ID:             "OS0003",
			Title:          "Reparo - Câmera de Segurança",
			Description:    "Verificar e reparar problema de conexão da câmera de segurança da entrada",
			EquipmentID:    strptr("EQ0008"),
			AssignedTo:     "EMP0011",
			RequestedBy:    strptr("EMP0007"),
			Priority:       "Urgente",
			Status:         "Pendente",
			CreatedDate:    "2025-07-20",
			DueDate:        strptr("2025-07-21"),
			EstimatedHours: decimal.NewFromInt(6),
			Category:       "Reparo",
		},
		{
			ID:             "OS0004",
			Title:          "Configuração de Rede - Roteador",
			Description:    "Atualizar configurações de segurança e QoS do roteador principal",
			EquipmentID:    strptr("EQ0005"),
			AssignedTo:     "EMP0013",
			RequestedBy:    strptr("EMP0003"),
			Priority:       "Média",
			Status:         "Concluída",
			CreatedDate:    "2025-07-15",
			DueDate:        strptr("2025-07-18"),
			EstimatedHours: decimal.NewFromInt(3),
			Category:       "Configuração",
			CompletedDate:  strptr("2025-07-17"),
		},
		{
			ID:             "OS0005",
			Title:          "Troca de Toner - Impressora",
			Description:    "Substituir cartucho de toner da impressora do setor administrativo",
			EquipmentID:    strptr("EQ0002"),
			AssignedTo:     "EMP0006",
			RequestedBy:    strptr("EMP0014"),
			Priority:       "Baixa",
			Status:         "Concluída",
			CreatedDate:    "2025-07-16",
			DueDate:        strptr("2025-07-19"),
			EstimatedHours: decimal.NewFromFloat(0.5),
			Category:       "Manutenção",
			CompletedDate:  strptr("2025-07-16"),
		},
		{
			ID:             "OS0006",
			Title:          "Atualização de Sistema - Smartphone",
			Description:    "Realizar atualização do sistema operacional e aplicativos corporativos",
			EquipmentID:    strptr("EQ0006"),
			AssignedTo:     "EMP0003",
			RequestedBy:    strptr("EMP0007"),
			Priority:       "Média",
			Status:         "Em Andamento",
			CreatedDate:    "2025-07-19",
			DueDate:        strptr("2025-07-23"),
			EstimatedHours: decimal.NewFromInt(1),
			Category:       "Atualização",
		},
		{
			ID:             "OS0007",
			Title:          "Backup de Dados - Servidor",
			Description:    "Realizar backup completo dos dados do servidor principal",
			EquipmentID:    nil,
			AssignedTo:     "EMP0013",
			RequestedBy:    strptr("EMP0004"),
			Priority:       "Alta",
			Status:         "Agendada",
			CreatedDate:    "2025-07-20",
			DueDate:        strptr("2025-07-22"),
			EstimatedHours: decimal.NewFromInt(8),
			Category:       "Backup",
		},
		{
			ID:             "OS0008",
			Title:          "Calibração - Monitor",
			Description:    "Calibrar cores e ajustar configurações do monitor para melhor qualidade",
			EquipmentID:    strptr("EQ0003"),
			AssignedTo:     "EMP0005",
			RequestedBy:    strptr("EMP0009"),
			Priority:       "Baixa",
			Status:         "Pendente",
			CreatedDate:    "2025-07-18",
			DueDate:        strptr("2025-07-26"),
			EstimatedHours: decimal.NewFromInt(1),
			Category:       "Calibração",
		},
		{
			ID:             "OS0009",
			Title:          "Teste de Funcionamento - No-Break",
			Description:    "Realizar teste de autonomia e funcionamento do no-break do rack principal",
			EquipmentID:    strptr("EQ0007"),
			AssignedTo:     "EMP0011",
			RequestedBy:    strptr("EMP0013"),
			Priority:       "Média",
			Status:         "Concluída",
			CreatedDate:    "2025-07-12",
			DueDate:        strptr("2025-07-15"),
			EstimatedHours: decimal.NewFromInt(2),
			Category:       "Teste",
			CompletedDate:  strptr("2025-07-14"),
		},
		{
			ID:             "OS0010",
			Title:          "Instalação de Antivírus - Computadores",
			Description:    "Instalar e configurar nova versão do antivírus corporativo em todos os computadores",
			EquipmentID:    nil,
			AssignedTo:     "EMP0003",
			RequestedBy:    strptr("EMP0013"),
			Priority:       "Alta",
			Status:         "Em Andamento",
			CreatedDate:    "2025-07-17",
			DueDate:        strptr("2025-07-24"),
			EstimatedHours: decimal.NewFromInt(16),
			Category:       "Instalação",
		},
		{
			ID:             "OS0011",
			Title:          "Limpeza Geral - Equipamentos TI",
			Description:    "Realizar limpeza completa de todos os equipamentos de TI",
			EquipmentID:    nil,
			AssignedTo:     "EMP0011",
			RequestedBy:    strptr("EMP0013"),
			Priority:       "Baixa",
			Status:         "Agendada",
			CreatedDate:    "2025-07-19",
			DueDate:        strptr("2025-07-30"),
			EstimatedHours: decimal.NewFromInt(12),
			Category:       "Manutenção Preventiva",
		},
		{
			ID:             "OS0012",
			Title:          "Configuração de Backup Automático",
			Description:    "Configurar rotina de backup automático para arquivos críticos",
			EquipmentID:    strptr("EQ0001"),
			AssignedTo:     "EMP0001",
			RequestedBy:    strptr("EMP0004"),
			Priority:       "Média",
			Status:         "Pendente",
			CreatedDate:    "2025-07-20",
			DueDate:        strptr("2025-07-25"),
			EstimatedHours: decimal.NewFromInt(3),
			Category:       "Configuração",
		},
	}
}
