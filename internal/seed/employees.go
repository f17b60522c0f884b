// Package seed holds the demo datasets loaded into empty or corrupt
// collections. The records match the fixtures the frontend ships with,
// so a fresh backend and a fresh browser session agree on the data.
package seed

import (
	"go-erp/internal/employee"

	"github.com/shopspring/decimal"
)

func Employees() []employee.Employee {
	return []employee.Employee{
		{ID: "EMP0001", Name: "João Silva Santos", Position: "Desenvolvedor Senior", Department: "TI", HireDate: "2022-03-15", Salary: decimal.NewFromFloat(8500.00), Active: true},
		{ID: "EMP0002", Name: "Maria Oliveira Costa", Position: "Analista de RH", Department: "RH", HireDate: "2021-07-20", Salary: decimal.NewFromFloat(6200.00), Active: true},
		{ID: "EMP0003", Name: "Pedro Henrique Lima", Position: "Técnico de Suporte", Department: "TI", HireDate: "2023-01-10", Salary: decimal.NewFromFloat(4500.00), Active: true},
		{ID: "EMP0004", Name: "Ana Carolina Ferreira", Position: "Coordenadora Financeira", Department: "Financeiro", HireDate: "2020-11-08", Salary: decimal.NewFromFloat(9200.00), Active: true},
		{ID: "EMP0005", Name: "Carlos Eduardo Souza", Position: "Analista de Sistemas", Department: "TI", HireDate: "2022-09-12", Salary: decimal.NewFromFloat(7000.00), Active: true},
		{ID: "EMP0006", Name: "Fernanda Rodrigues", Position: "Assistente Administrativo", Department: "Operações", HireDate: "2023-05-03", Salary: decimal.NewFromFloat(3800.00), Active: true},
		{ID: "EMP0007", Name: "Ricardo Mendes", Position: "Gerente de Operações", Department: "Operações", HireDate: "2019-02-14", Salary: decimal.NewFromFloat(12000.00), Active: true},
		{ID: "EMP0008", Name: "Juliana Alves", Position: "Analista Contábil", Department: "Financeiro", HireDate: "2021-12-01", Salary: decimal.NewFromFloat(5500.00), Active: true},
		{ID: "EMP0009", Name: "Bruno Carvalho", Position: "Desenvolvedor Junior", Department: "TI", HireDate: "2024-01-15", Salary: decimal.NewFromFloat(4200.00), Active: true},
		{ID: "EMP0010", Name: "Camila Torres", Position: "Especialista em RH", Department: "RH", HireDate: "2020-08-25", Salary: decimal.NewFromFloat(7200.00), Active: true},
		{ID: "EMP0011", Name: "Diego Nascimento", Position: "Técnico de Manutenção", Department: "Operações", HireDate: "2022-06-18", Salary: decimal.NewFromFloat(4800.00), Active: true},
		{ID: "EMP0012", Name: "Larissa Campos", Position: "Auxiliar Financeiro", Department: "Financeiro", HireDate: "2023-09-07", Salary: decimal.NewFromFloat(3200.00), Active: true},
		{ID: "EMP0013", Name: "Rafael Pereira", Position: "Coordenador de TI", Department: "TI", HireDate: "2018-05-30", Salary: decimal.NewFromFloat(11500.00), Active: true},
		{ID: "EMP0014", Name: "Priscila Barbosa", Position: "Recepcionista", Department: "Operações", HireDate: "2023-11-20", Salary: decimal.NewFromFloat(2800.00), Active: true},
		{ID: "EMP0015", Name: "Thiago Martins", Position: "Analista de Qualidade", Department: "Operações", HireDate: "2021-04-12", Salary: decimal.NewFromFloat(6800.00), Active: true},
	}
}
