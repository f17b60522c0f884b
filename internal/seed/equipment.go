package seed

import "go-erp/internal/equipment"

func Equipment() []equipment.Equipment {
	return []equipment.Equipment{
		{ID: "EQ0001", Name: "Notebook Dell Latitude 5520", Type: "Computador", Brand: "Dell", Model: "Latitude 5520", SerialNumber: "DL5520001", PurchaseDate: "2023-01-15", Status: "Ativo", Location: "TI - Sala 101", Responsible: "EMP0001"},
		{ID: "EQ0002", Name: "Impressora HP LaserJet Pro", Type: "Impressora", Brand: "HP", Model: "LaserJet Pro M404n", SerialNumber: "HP404001", PurchaseDate: "2022-11-08", Status: "Ativo", Location: "Administrativo", Responsible: "EMP0006"},
		{ID: "EQ0003", Name: "Monitor Samsung 24\"", Type: "Monitor", Brand: "Samsung", Model: "S24F350FH", SerialNumber: "SM24001", PurchaseDate: "2023-03-20", Status: "Ativo", Location: "TI - Sala 101", Responsible: "EMP0005"},
		{ID: "EQ0004", Name: "Projetor Epson PowerLite", Type: "Projetor", Brand: "Epson", Model: "PowerLite X49", SerialNumber: "EP49001", PurchaseDate: "2022-09-12", Status: "Manutenção", Location: "Sala de Reuniões", Responsible: "EMP0011"},
		{ID: "EQ0005", Name: "Roteador TP-Link AC1750", Type: "Rede", Brand: "TP-Link", Model: "Archer C7", SerialNumber: "TP1750001", PurchaseDate: "2023-05-10", Status: "Ativo", Location: "TI - Rack Principal", Responsible: "EMP0003"},
		{ID: "EQ0006", Name: "Smartphone Samsung Galaxy A54", Type: "Celular", Brand: "Samsung", Model: "Galaxy A54 5G", SerialNumber: "SGA54001", PurchaseDate: "2024-02-01", Status: "Ativo", Location: "Gerência", Responsible: "EMP0007"},
		{ID: "EQ0007", Name: "No-Break APC Smart-UPS", Type: "Energia", Brand: "APC", Model: "Smart-UPS 1500VA", SerialNumber: "APC1500001", PurchaseDate: "2022-12-15", Status: "Ativo", Location: "TI - Rack Principal", Responsible: "EMP0013"},
		{ID: "EQ0008", Name: "Câmera de Segurança Hikvision", Type: "Segurança", Brand: "Hikvision", Model: "DS-2CD2085FWD-I", SerialNumber: "HK085001", PurchaseDate: "2023-08-22", Status: "Manutenção", Location: "Entrada Principal", Responsible: "EMP0011"},
	}
}
