package equipment_test

import (
	"context"
	"testing"
	"time"

	"go-erp/internal/equipment"
	equipmenterrors "go-erp/internal/equipment/errors"
	"go-erp/internal/seed"
	"go-erp/internal/shared/counter"
	"go-erp/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (equipment.Service, equipment.Repository) {
	t.Helper()
	channel := storage.NewMemoryChannel()
	repo := equipment.NewRepository(channel, nil, seed.Equipment, nil)
	svc := equipment.NewService(repo, counter.NewRepository(channel))
	return svc, repo
}

func validRequest() equipment.SaveEquipmentRequest {
	return equipment.SaveEquipmentRequest{
		Name:         "Switch Cisco Catalyst",
		Type:         "Rede",
		Brand:        "Cisco",
		Model:        "Catalyst 2960",
		SerialNumber: "CS2960001",
		PurchaseDate: "2024-03-01",
		Location:     "TI - Rack Principal",
		Responsible:  "EMP0013",
	}
}

func TestEquipmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates the next id and defaults status", func(t *testing.T) {
		svc, repo := setupService(t)

		eq, err := svc.Save(ctx, validRequest(), "")
		require.NoError(t, err)
		assert.Equal(t, "EQ0009", eq.ID)
		assert.Equal(t, equipment.StatusActive, eq.Status)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 9)
	})

	t.Run("purchase date in the future is rejected", func(t *testing.T) {
		svc, _ := setupService(t)

		req := validRequest()
		req.PurchaseDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := svc.Save(ctx, req, "")
		assert.ErrorIs(t, err, equipmenterrors.ErrPurchaseDateInFuture)
	})

	t.Run("malformed purchase date", func(t *testing.T) {
		svc, _ := setupService(t)

		req := validRequest()
		req.PurchaseDate = "01-03-2024"
		_, err := svc.Save(ctx, req, "")
		assert.ErrorIs(t, err, equipmenterrors.ErrInvalidPurchaseDate)
	})
}

func TestEquipmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("status change persists and neighbors are untouched", func(t *testing.T) {
		svc, repo := setupService(t)

		// The projector comes out of maintenance.
		req := equipment.SaveEquipmentRequest{
			Name:         "Projetor Epson PowerLite",
			Type:         "Projetor",
			Brand:        "Epson",
			Model:        "PowerLite X49",
			SerialNumber: "EP49001",
			PurchaseDate: "2022-09-12",
			Status:       equipment.StatusActive,
			Location:     "Sala de Reuniões",
			Responsible:  "EMP0011",
		}
		eq, err := svc.Save(ctx, req, "EQ0004")
		require.NoError(t, err)
		assert.Equal(t, equipment.StatusActive, eq.Status)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 8)
		assert.Equal(t, "EQ0004", all[3].ID)
		assert.Equal(t, equipment.StatusActive, all[3].Status)
		assert.Equal(t, "Monitor Samsung 24\"", all[2].Name)
		assert.Equal(t, "Roteador TP-Link AC1750", all[4].Name)
	})

	t.Run("missing id is not an upsert", func(t *testing.T) {
		svc, repo := setupService(t)

		_, err := svc.Save(ctx, validRequest(), "EQ9999")
		assert.ErrorIs(t, err, equipmenterrors.ErrEquipmentNotFound)

		all, _ := repo.All(ctx)
		assert.Len(t, all, 8)
	})
}

func TestEquipmentService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 6, stats.Active)
	assert.Equal(t, 2, stats.Maintenance)
	assert.Equal(t, map[string]int{
		"Computador": 1,
		"Impressora": 1,
		"Monitor":    1,
		"Projetor":   1,
		"Rede":       1,
		"Celular":    1,
		"Energia":    1,
		"Segurança":  1,
	}, stats.ByType)

	// A repair completion moves the unit between buckets.
	req := equipment.SaveEquipmentRequest{
		Name:         "Câmera de Segurança Hikvision",
		Type:         "Segurança",
		Brand:        "Hikvision",
		Model:        "DS-2CD2085FWD-I",
		SerialNumber: "HK085001",
		PurchaseDate: "2023-08-22",
		Status:       equipment.StatusActive,
		Location:     "Entrada Principal",
		Responsible:  "EMP0011",
	}
	_, err = svc.Save(ctx, req, "EQ0008")
	require.NoError(t, err)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Active)
	assert.Equal(t, 1, stats.Maintenance)
}
