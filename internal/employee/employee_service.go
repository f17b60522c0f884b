package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	employeeerrors "go-erp/internal/employee/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/counter"
	"go-erp/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	// Save creates a new employee when existingID is empty, otherwise
	// replaces the record with that identifier in place.
	Save(ctx context.Context, req SaveEmployeeRequest, existingID string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Save(ctx context.Context, req SaveEmployeeRequest, existingID string) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", existingID),
		zap.String("department", req.Department),
	)

	salary, err := decimal.NewFromString(strings.TrimSpace(req.Salary))
	if err != nil {
		s.logger.Warn("save employee invalid salary", zap.String("salary", req.Salary))
		return Employee{}, employeeerrors.ErrInvalidSalary
	}
	if !salary.IsPositive() {
		return Employee{}, employeeerrors.ErrSalaryNotPositive
	}

	if _, err := time.Parse(dateLayout, req.HireDate); err != nil {
		s.logger.Warn("save employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return Employee{}, employeeerrors.ErrInvalidHireDate
	}
	// ISO dates compare lexically; hire dates up to and including today pass.
	if req.HireDate > time.Now().Format(dateLayout) {
		return Employee{}, employeeerrors.ErrHireDateInFuture
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	emp := Employee{
		ID:         existingID,
		Name:       strings.TrimSpace(req.Name),
		Position:   strings.TrimSpace(req.Position),
		Department: req.Department,
		HireDate:   req.HireDate,
		Salary:     salary,
		Active:     active,
	}

	if existingID == "" {
		floor, err := s.repo.MaxSequence(ctx)
		if err != nil {
			return Employee{}, err
		}
		seq, err := s.counter.Next(ctx, IDPrefix, floor)
		if err != nil {
			s.logger.Error("save employee generate id failed", zap.Error(err))
			return Employee{}, err
		}
		emp.ID = fmt.Sprintf("%s%04d", IDPrefix, seq)

		if err := s.repo.Append(ctx, emp); err != nil {
			s.logger.Error("save employee persist failed", zap.Error(err))
			return Employee{}, err
		}
		s.logger.Info("employee created",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID),
		)
		return emp, nil
	}

	if _, found, err := s.repo.FindByID(ctx, existingID); err != nil {
		return Employee{}, err
	} else if !found {
		s.logger.Warn("save employee target missing", zap.String("employee_id", existingID))
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Replace(ctx, emp); err != nil {
		if err == store.ErrRecordNotFound {
			return Employee{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("save employee persist failed", zap.Error(err))
		return Employee{}, err
	}
	s.logger.Info("employee updated",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID),
	)
	return emp, nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	return s.repo.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	emp, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if !found {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return emp, nil
}

// Stats recomputes the employee dashboard block in a single pass.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	emps, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := time.Now()
	stats := Stats{
		Total:        len(emps),
		ByDepartment: map[string]int{},
	}
	for _, e := range emps {
		if e.Active {
			stats.Active++
		}
		stats.ByDepartment[e.Department]++
		if hired, err := time.Parse(dateLayout, e.HireDate); err == nil {
			if hired.Month() == now.Month() && hired.Year() == now.Year() {
				stats.NewThisMonth++
			}
		}
	}
	return stats, nil
}
