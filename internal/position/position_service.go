package position

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	positionerrors "go-hrpay/internal/position/errors"
	"go-hrpay/internal/shared/listquery"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	List(ctx context.Context, req ListPositionsRequest) (listquery.Result[PositionResponse], error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	s.logger.Debug("create position requested", zap.String("title", req.Title))

	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	pos := &Position{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
		DepartmentID: deptID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, pos)
	})
	if err != nil {
		s.logger.Error("create position persist failed", zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create position success", zap.String("position_id", pos.ID.String()))
	return mapToResponse(*pos, 0), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get position by id failed", zap.String("position_id", id), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	employeeCount, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*pos, employeeCount), nil
}

func (s *service) List(ctx context.Context, req ListPositionsRequest) (listquery.Result[PositionResponse], error) {
	page, err := s.repo.List(ctx, req.Request, req.DepartmentID)
	if err != nil {
		s.logger.Error("list positions failed", zap.Error(err))
		return listquery.Result[PositionResponse]{}, mapRepositoryError(err)
	}

	ids := make([]string, len(page.Items))
	for i, p := range page.Items {
		ids[i] = p.ID.String()
	}
	counts, err := s.repo.EmployeeCounts(ctx, ids)
	if err != nil {
		return listquery.Result[PositionResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, func(p Position) PositionResponse {
		return mapToResponse(p, counts[p.ID.String()])
	}), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	s.logger.Debug("update position requested", zap.String("position_id", id))

	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	var pos *Position
	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		pos, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		pos.Title = req.Title
		pos.Description = req.Description
		pos.MinSalary = req.MinSalary
		pos.MaxSalary = req.MaxSalary
		pos.DepartmentID = deptID

		return qtx.Update(ctx, pos)
	})
	if err != nil {
		s.logger.Error("update position failed", zap.String("position_id", id), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update position success", zap.String("position_id", id))
	return mapToResponse(*pos, 0), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete position requested", zap.String("position_id", id))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return err
		}

		employees, err := qtx.CountEmployees(ctx, id)
		if err != nil {
			return err
		}
		if employees > 0 {
			return positionerrors.ErrPositionHasEmployees
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete position blocked or failed", zap.String("position_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete position success", zap.String("position_id", id))
	return nil
}

func mapToResponse(pos Position, employeeCount int64) PositionResponse {
	resp := PositionResponse{
		PositionID:    pos.ID.String(),
		Title:         pos.Title,
		Description:   pos.Description,
		MinSalary:     pos.MinSalary,
		MaxSalary:     pos.MaxSalary,
		DepartmentID:  pos.DepartmentID.String(),
		EmployeeCount: employeeCount,
		Created:       pos.Created,
		Modified:      pos.Modified,
	}
	if pos.Department != nil {
		resp.DepartmentName = pos.Department.Name
	}
	return resp
}
