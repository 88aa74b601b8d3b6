package department_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hr-dashboard/internal/department"
	"hr-dashboard/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	FindAllFn  func(ctx context.Context) ([]department.Department, error)
	FindByIDFn func(ctx context.Context, id int64) (*department.Department, error)
}

func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id int64) (*department.Department, error) {
	return f.FindByIDFn(ctx, id)
}

func TestDepartmentService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from repo and fills cache", func(t *testing.T) {
		expected := []department.DepartmentResponse{
			{ID: 1, Name: "Engineering"},
			{ID: 2, Name: "Finance"},
		}
		raw, _ := json.Marshal(expected)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(department.OptionsCacheKey).RedisNil()
		redisMock.ExpectSet(department.OptionsCacheKey, raw, time.Hour).SetVal("OK")

		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				return []department.Department{
					{ID: 1, Name: "Engineering"},
					{ID: 2, Name: "Finance"},
				}, nil
			},
		}
		svc := department.NewService(repo, rdb)

		resp, err := svc.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		cached := []department.DepartmentResponse{{ID: 1, Name: "Engineering"}}
		raw, _ := json.Marshal(cached)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(department.OptionsCacheKey).SetVal(string(raw))

		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				t.Fatal("repo should not be hit on cache hit")
				return nil, nil
			},
		}
		svc := department.NewService(repo, rdb)

		resp, err := svc.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("repo failure wrapped", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(department.OptionsCacheKey).RedisNil()

		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				return nil, assert.AnError
			},
		}
		svc := department.NewService(repo, rdb)

		_, err := svc.GetOptions(ctx)

		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	t.Run("missing record maps to not found", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id int64) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := department.NewService(repo, nil)

		_, err := svc.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id int64) (*department.Department, error) {
				return &department.Department{ID: 1, Name: "Engineering"}, nil
			},
		}
		svc := department.NewService(repo, nil)

		resp, err := svc.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
	})
}
