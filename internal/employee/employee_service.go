package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "hr-dashboard/internal/employee/errors"
	"hr-dashboard/internal/events"
	"hr-dashboard/internal/messaging/kafka"
	"hr-dashboard/internal/shared/contextutil"
	"hr-dashboard/internal/shared/listquery"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "employees:options"

// ListResult adalah hasil flat untuk list view:
// len(Records) <= Limit, Total = seluruh record yang match query.
type ListResult struct {
	Records []EmployeeResponse
	Total   int64
	Page    int
	Limit   int
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, q listquery.Query) (ListResult, error)
	GetOptions(ctx context.Context) ([]OptionResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Int64("user_id", req.UserID),
		zap.Int64("department_id", req.DepartmentID),
	)

	dob, err := parseDOB(req.DOB)
	if err != nil {
		s.logger.Warn("create employee invalid dob", zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrInvalidDOB
	}

	if ok, err := s.repo.DepartmentExists(ctx, req.DepartmentID); err != nil {
		s.logger.Error("create employee check department failed", zap.Error(err))
		return EmployeeResponse{}, err
	} else if !ok {
		return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
	}

	if ok, err := s.repo.UserExists(ctx, req.UserID); err != nil {
		s.logger.Error("create employee check user failed", zap.Error(err))
		return EmployeeResponse{}, err
	} else if !ok {
		return EmployeeResponse{}, employeeerrors.ErrUserNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserID:        req.UserID,
		DepartmentID:  req.DepartmentID,
		Address:       req.Address,
		PhotoURL:      req.PhotoURL,
		Gender:        defaultEnum(req.Gender, 1),
		DOB:           dob,
		MaritalStatus: defaultEnum(req.MaritalStatus, 1),
		IDPhotoURL:    req.IDPhotoURL,
		PersonalPhone: req.PersonalPhone,
		WorkPhone:     req.WorkPhone,
		PersonalEmail: req.PersonalEmail,
		WorkEmail:     req.WorkEmail,
		Status:        defaultEnum(req.Status, 1),
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID,
			UserID:     empl.UserID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID,
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.Int64("employee_id", empl.ID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, q listquery.Query) (ListResult, error) {
	s.logger.Debug("list employees requested",
		zap.Int("page", q.Page),
		zap.Int("limit", q.Limit),
		zap.String("sort_by", q.SortBy),
		zap.String("search", q.Search),
	)

	empls, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return ListResult{}, mapRepositoryError(err)
	}

	return ListResult{
		Records: mapToListResponse(empls),
		Total:   total,
		Page:    q.Page,
		Limit:   q.Limit,
	}, nil
}

func (s *service) GetOptions(ctx context.Context) ([]OptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat admin buka form
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = OptionResponse{
				ID:       e.ID,
				FullName: e.FirstName + " " + e.LastName,
			}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
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

	return v.([]OptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee by id failed", zap.Error(err))
		}
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int64("employee_id", id))

	dob, err := parseDOB(req.DOB)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDOB
	}

	if ok, err := s.repo.DepartmentExists(ctx, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	} else if !ok {
		return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.DepartmentID = req.DepartmentID
	empl.Address = req.Address
	empl.PhotoURL = req.PhotoURL
	empl.Gender = defaultEnum(req.Gender, 1)
	empl.DOB = dob
	empl.MaritalStatus = defaultEnum(req.MaritalStatus, 1)
	empl.IDPhotoURL = req.IDPhotoURL
	empl.PersonalPhone = req.PersonalPhone
	empl.WorkPhone = req.WorkPhone
	empl.PersonalEmail = req.PersonalEmail
	empl.WorkEmail = req.WorkEmail
	empl.Status = defaultEnum(req.Status, 1)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("employee_id", id))

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("delete employee failed", zap.Error(err))
		}
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func parseDOB(dob *string) (*time.Time, error) {
	if dob == nil || *dob == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *dob)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func defaultEnum(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
