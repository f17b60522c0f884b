package dashboard_test

import (
	"context"
	"testing"

	"go-erp/internal/dashboard"
	"go-erp/internal/employee"
	"go-erp/internal/equipment"
	"go-erp/internal/seed"
	"go-erp/internal/serviceorder"
	"go-erp/internal/shared/counter"
	"go-erp/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (dashboard.Service, employee.Service) {
	t.Helper()
	channel := storage.NewMemoryChannel()
	counters := counter.NewRepository(channel)

	empService := employee.NewService(
		employee.NewRepository(channel, nil, seed.Employees, nil), counters)
	eqService := equipment.NewService(
		equipment.NewRepository(channel, nil, seed.Equipment, nil), counters)
	osService := serviceorder.NewService(
		serviceorder.NewRepository(channel, nil, seed.ServiceOrders, nil), counters)

	return dashboard.NewService(empService, eqService, osService), empService
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 15, stats.Employees.Total)
	assert.Equal(t, 15, stats.Employees.Active)
	assert.Equal(t, 8, stats.Equipment.Total)
	assert.Equal(t, 6, stats.Equipment.Active)
	assert.Equal(t, 2, stats.Equipment.Maintenance)
	assert.Equal(t, 12, stats.ServiceOrders.Total)
	assert.Equal(t, 9, stats.ServiceOrders.Open)
	assert.Equal(t, 3, stats.ServiceOrders.Completed)
	assert.Equal(t, 1, stats.ServiceOrders.Urgent)
}

func TestDashboardService_StatsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	second, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDashboardService_ReflectsMutations(t *testing.T) {
	ctx := context.Background()
	svc, empService := setupService(t)

	before, err := svc.Stats(ctx)
	require.NoError(t, err)

	_, err = empService.Save(ctx, employee.SaveEmployeeRequest{
		Name:       "Nova Analista",
		Position:   "Analista",
		Department: "RH",
		HireDate:   "2024-05-10",
		Salary:     "4000",
	}, "")
	require.NoError(t, err)

	after, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Employees.Total+1, after.Employees.Total)
	assert.Equal(t, before.Employees.ByDepartment["RH"]+1, after.Employees.ByDepartment["RH"])
}
