package dashboard

import (
	"context"

	"go-erp/internal/employee"
	"go-erp/internal/equipment"
	"go-erp/internal/serviceorder"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	employees     employee.Service
	equipment     equipment.Service
	serviceOrders serviceorder.Service
	group         singleflight.Group
	logger        *zap.Logger
}

func NewService(
	employees employee.Service,
	equipment equipment.Service,
	serviceOrders serviceorder.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees:     employees,
		equipment:     equipment,
		serviceOrders: serviceOrders,
		logger:        l,
	}
}

// Stats recomputes every block from the current collections. The
// aggregation is pure, so concurrent callers share one computation.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	v, err, _ := s.group.Do("stats", func() (interface{}, error) {
		empStats, err := s.employees.Stats(ctx)
		if err != nil {
			return nil, err
		}
		eqStats, err := s.equipment.Stats(ctx)
		if err != nil {
			return nil, err
		}
		osStats, err := s.serviceOrders.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return Stats{
			Employees:     empStats,
			Equipment:     eqStats,
			ServiceOrders: osStats,
		}, nil
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}
