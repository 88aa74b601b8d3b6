package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hr-dashboard/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "departments:options"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetOptions(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (DepartmentResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetOptions melayani dropdown department pada create-employee form.
// Data master, jadi cache 1 jam cukup.
func (s *service) GetOptions(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight agar traffic tinggi saat admin membuka form tidak
	// menembus DB bersamaan.
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get department options failed", zap.Error(err))
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to load departments", 500)
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, apperror.ErrNotFound
		}
		s.logger.Error("get department by id failed", zap.Int64("department_id", id), zap.Error(err))
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}
