package equipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	equipmenterrors "go-erp/internal/equipment/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/counter"
	"go-erp/internal/store"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=equipment_service.go -destination=mock/equipment_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveEquipmentRequest, existingID string) (Equipment, error)
	GetAll(ctx context.Context) ([]Equipment, error)
	GetByID(ctx context.Context, id string) (Equipment, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("equipment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("equipment.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Save(ctx context.Context, req SaveEquipmentRequest, existingID string) (Equipment, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save equipment requested",
		zap.String("request_id", rid),
		zap.String("equipment_id", existingID),
		zap.String("type", req.Type),
	)

	if _, err := time.Parse(dateLayout, req.PurchaseDate); err != nil {
		s.logger.Warn("save equipment invalid purchase_date",
			zap.String("purchase_date", req.PurchaseDate),
			zap.Error(err),
		)
		return Equipment{}, equipmenterrors.ErrInvalidPurchaseDate
	}
	if req.PurchaseDate > time.Now().Format(dateLayout) {
		return Equipment{}, equipmenterrors.ErrPurchaseDateInFuture
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	eq := Equipment{
		ID:           existingID,
		Name:         strings.TrimSpace(req.Name),
		Type:         req.Type,
		Brand:        strings.TrimSpace(req.Brand),
		Model:        strings.TrimSpace(req.Model),
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		PurchaseDate: req.PurchaseDate,
		Status:       status,
		Location:     strings.TrimSpace(req.Location),
		Responsible:  req.Responsible,
	}

	if existingID == "" {
		floor, err := s.repo.MaxSequence(ctx)
		if err != nil {
			return Equipment{}, err
		}
		seq, err := s.counter.Next(ctx, IDPrefix, floor)
		if err != nil {
			s.logger.Error("save equipment generate id failed", zap.Error(err))
			return Equipment{}, err
		}
		eq.ID = fmt.Sprintf("%s%04d", IDPrefix, seq)

		if err := s.repo.Append(ctx, eq); err != nil {
			s.logger.Error("save equipment persist failed", zap.Error(err))
			return Equipment{}, err
		}
		s.logger.Info("equipment created",
			zap.String("request_id", rid),
			zap.String("equipment_id", eq.ID),
		)
		return eq, nil
	}

	if _, found, err := s.repo.FindByID(ctx, existingID); err != nil {
		return Equipment{}, err
	} else if !found {
		s.logger.Warn("save equipment target missing", zap.String("equipment_id", existingID))
		return Equipment{}, equipmenterrors.ErrEquipmentNotFound
	}

	if err := s.repo.Replace(ctx, eq); err != nil {
		if err == store.ErrRecordNotFound {
			return Equipment{}, equipmenterrors.ErrEquipmentNotFound
		}
		s.logger.Error("save equipment persist failed", zap.Error(err))
		return Equipment{}, err
	}
	s.logger.Info("equipment updated",
		zap.String("request_id", rid),
		zap.String("equipment_id", eq.ID),
	)
	return eq, nil
}

func (s *service) GetAll(ctx context.Context) ([]Equipment, error) {
	return s.repo.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (Equipment, error) {
	eq, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Equipment{}, err
	}
	if !found {
		return Equipment{}, equipmenterrors.ErrEquipmentNotFound
	}
	return eq, nil
}

// Stats recomputes the equipment dashboard block in a single pass.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Total:  len(items),
		ByType: map[string]int{},
	}
	for _, eq := range items {
		switch eq.Status {
		case StatusActive:
			stats.Active++
		case StatusMaintenance:
			stats.Maintenance++
		}
		stats.ByType[eq.Type]++
	}
	return stats, nil
}
