package department_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-hrpay/internal/department"
	departmenterrors "go-hrpay/internal/department/errors"
	departmentMock "go-hrpay/internal/department/mock"
	"go-hrpay/internal/shared/listquery"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *departmentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := departmentMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: department.NewService(db, repo),
		repo:    repo,
	}
}

func TestDepartmentService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dept *department.Department) error {
				assert.Equal(t, "Engineering", dept.Name)
				assert.NotEqual(t, uuid.Nil, dept.ID)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NotEmpty(t, resp.DepartmentID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(context.Background(), department.CreateDepartmentRequest{Name: "Ops"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	parentID := uuid.New()
	childID := uuid.New()
	managerID := uuid.New()

	parent := &department.Department{
		ID:        parentID,
		Name:      "Engineering",
		ManagerID: &managerID,
		Manager:   &department.Manager{ID: managerID, FirstName: "Ada", LastName: "Lovelace"},
	}
	child := department.Department{
		ID:                 childID,
		Name:               "Platform",
		ParentDepartmentID: &parentID,
	}

	deps.repo.EXPECT().FindByID(ctx, parentID.String()).Return(parent, nil)
	deps.repo.EXPECT().CountEmployees(ctx, parentID.String()).Return(int64(12), nil)
	deps.repo.EXPECT().ListChildren(ctx, parentID.String()).Return([]department.Department{child}, nil)
	deps.repo.EXPECT().
		EmployeeCounts(ctx, []string{childID.String()}).
		Return(map[string]int64{childID.String(): 4}, nil)

	resp, err := deps.service.GetByID(ctx, parentID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.EmployeeCount)
	require.NotNil(t, resp.ManagerName)
	assert.Equal(t, "Ada Lovelace", *resp.ManagerName)
	require.Len(t, resp.SubDepartments, 1)
	assert.Equal(t, int64(4), resp.SubDepartments[0].EmployeeCount)
	require.NotNil(t, resp.SubDepartments[0].ParentDepartmentName)
	assert.Equal(t, "Engineering", *resp.SubDepartments[0].ParentDepartmentName)
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestDepartmentService_List(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deptID := uuid.New()
	page := listquery.Result[department.Department]{
		Items:      []department.Department{{ID: deptID, Name: "Finance"}},
		TotalCount: 1,
		PageNumber: 1,
		PageSize:   10,
	}

	deps.repo.EXPECT().
		List(ctx, gomock.Any(), false).
		Return(page, nil)
	deps.repo.EXPECT().
		EmployeeCounts(ctx, []string{deptID.String()}).
		Return(map[string]int64{deptID.String(): 9}, nil)

	res, err := deps.service.List(ctx, department.ListDepartmentsRequest{
		Request: listquery.Request{PageNumber: 1, PageSize: 10},
	})

	assert.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(9), res.Items[0].EmployeeCount)
	assert.Equal(t, int64(1), res.TotalCount)
}

func TestDepartmentService_Delete(t *testing.T) {
	t.Run("blocked when dependents exist", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&department.Department{ID: id}, nil)
		deps.repo.EXPECT().CountChildren(gomock.Any(), id.String()).Return(int64(2), nil)
		deps.repo.EXPECT().CountEmployees(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().CountPositions(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasDependents)
		// One message regardless of which dependent category blocked it.
		assert.Contains(t, err.Error(), "sub-departments, employees, or positions")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("allowed with no dependents", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&department.Department{ID: id}, nil)
		deps.repo.EXPECT().CountChildren(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().CountEmployees(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().CountPositions(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)
		deps.sqlMock.ExpectCommit()

		err := deps.service.Delete(context.Background(), id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), "nope").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), "nope")

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()

	existing := &department.Department{ID: id, Name: "Old Name"}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dept *department.Department) error {
			assert.Equal(t, "New Name", dept.Name)
			return nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Update(context.Background(), id.String(), department.UpdateDepartmentRequest{Name: "New Name"})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
