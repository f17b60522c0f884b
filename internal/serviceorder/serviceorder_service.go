package serviceorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	serviceordererrors "go-erp/internal/serviceorder/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/counter"
	"go-erp/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=serviceorder_service.go -destination=mock/serviceorder_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveServiceOrderRequest, existingID string) (ServiceOrder, error)
	GetAll(ctx context.Context) ([]ServiceOrder, error)
	GetByID(ctx context.Context, id string) (ServiceOrder, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("serviceorder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("serviceorder.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Save(ctx context.Context, req SaveServiceOrderRequest, existingID string) (ServiceOrder, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save service order requested",
		zap.String("request_id", rid),
		zap.String("order_id", existingID),
		zap.String("priority", req.Priority),
	)

	var existing ServiceOrder
	if existingID != "" {
		found := false
		var err error
		existing, found, err = s.repo.FindByID(ctx, existingID)
		if err != nil {
			return ServiceOrder{}, err
		}
		if !found {
			s.logger.Warn("save service order target missing", zap.String("order_id", existingID))
			return ServiceOrder{}, serviceordererrors.ErrServiceOrderNotFound
		}
	}

	// Creation date: taken from the form on create (defaulting to
	// today), immutable on edit.
	createdDate := existing.CreatedDate
	if existingID == "" {
		createdDate = req.CreatedDate
		if createdDate == "" {
			createdDate = time.Now().Format(dateLayout)
		}
		if _, err := time.Parse(dateLayout, createdDate); err != nil {
			return ServiceOrder{}, serviceordererrors.ErrInvalidCreatedDate
		}
	}

	var dueDate *string
	if req.DueDate != "" {
		if _, err := time.Parse(dateLayout, req.DueDate); err != nil {
			return ServiceOrder{}, serviceordererrors.ErrInvalidDueDate
		}
		if req.DueDate < createdDate {
			return ServiceOrder{}, serviceordererrors.ErrDueBeforeCreated
		}
		d := req.DueDate
		dueDate = &d
	}

	// Unparsable hours fall back to zero; negatives are rejected.
	estimatedHours := decimal.Zero
	if parsed, err := decimal.NewFromString(strings.TrimSpace(req.EstimatedHours)); err == nil {
		if parsed.IsNegative() {
			return ServiceOrder{}, serviceordererrors.ErrNegativeEstimatedHours
		}
		estimatedHours = parsed
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	order := ServiceOrder{
		ID:             existingID,
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		EquipmentID:    optional(req.EquipmentID),
		Category:       req.Category,
		Priority:       req.Priority,
		Status:         status,
		EstimatedHours: estimatedHours,
		AssignedTo:     req.AssignedTo,
		RequestedBy:    optional(req.RequestedBy),
		CreatedDate:    createdDate,
		DueDate:        dueDate,
		CompletedDate:  existing.CompletedDate,
	}

	if existingID == "" {
		floor, err := s.repo.MaxSequence(ctx)
		if err != nil {
			return ServiceOrder{}, err
		}
		seq, err := s.counter.Next(ctx, IDPrefix, floor)
		if err != nil {
			s.logger.Error("save service order generate id failed", zap.Error(err))
			return ServiceOrder{}, err
		}
		order.ID = fmt.Sprintf("%s%04d", IDPrefix, seq)

		if err := s.repo.Append(ctx, order); err != nil {
			s.logger.Error("save service order persist failed", zap.Error(err))
			return ServiceOrder{}, err
		}
		s.logger.Info("service order created",
			zap.String("request_id", rid),
			zap.String("order_id", order.ID),
		)
		return order, nil
	}

	if err := s.repo.Replace(ctx, order); err != nil {
		if err == store.ErrRecordNotFound {
			return ServiceOrder{}, serviceordererrors.ErrServiceOrderNotFound
		}
		s.logger.Error("save service order persist failed", zap.Error(err))
		return ServiceOrder{}, err
	}
	s.logger.Info("service order updated",
		zap.String("request_id", rid),
		zap.String("order_id", order.ID),
	)
	return order, nil
}

func (s *service) GetAll(ctx context.Context) ([]ServiceOrder, error) {
	return s.repo.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceOrder, error) {
	order, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceOrder{}, err
	}
	if !found {
		return ServiceOrder{}, serviceordererrors.ErrServiceOrderNotFound
	}
	return order, nil
}

// Stats recomputes the order dashboard block in a single pass. Open
// means any status other than Concluída.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Total:      len(orders),
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
	}
	for _, o := range orders {
		if o.Status == StatusCompleted {
			stats.Completed++
		} else {
			stats.Open++
			if o.Priority == PriorityUrgent {
				stats.Urgent++
			}
		}
		stats.ByStatus[o.Status]++
		stats.ByPriority[o.Priority]++
	}
	return stats, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
