package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	employeeerrors "go-hrpay/internal/employee/errors"
	"go-hrpay/internal/events"
	"go-hrpay/internal/messaging/kafka"
	"go-hrpay/internal/shared/audit"
	"go-hrpay/internal/shared/contextutil"
	"go-hrpay/internal/shared/listquery"
)

const (
	EmployeeOptionsKey = "employees:options"

	dateLayout = "2006-01-02"

	minimumAgeYears   = 16
	maxHireDateWindow = time.Hour * 24 * 31
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, req ListEmployeesRequest) (listquery.Result[EmployeeResponse], error)
	Search(ctx context.Context, term string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	clock  audit.Clock
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, clock audit.Clock, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, clock, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	clock audit.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if clock == nil {
		clock = audit.SystemClock{}
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		clock:  clock,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	dob, hireDate, err := s.parseAndValidateDates(req.DateOfBirth, req.HireDate)
	if err != nil {
		s.logger.Warn("create employee date validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:               uuid.New(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      dob,
		HireDate:         hireDate,
		Status:           status,
		DepartmentID:     uuid.MustParse(req.DepartmentID),
		PositionID:       uuid.MustParse(req.PositionID),
		ManagerID:        uuidPtr(req.ManagerID),
		EmergencyContact: req.EmergencyContact,
		BankDetails:      req.BankDetails,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			return err
		}
		return s.enqueueCreatedEvent(ctx, tx, rid, empl.ID.String())
	})
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *gorm.DB, rid, employeeID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: employeeID,
		OccurredAt: s.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, req ListEmployeesRequest) (listquery.Result[EmployeeResponse], error) {
	page, err := s.repo.List(ctx, req.Request, ListFilters{
		Status:       req.Status,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return listquery.Result[EmployeeResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, mapToResponse), nil
}

func (s *service) Search(ctx context.Context, term string) ([]EmployeeResponse, error) {
	empls, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse a stampede of form loads into one query.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOption{
				EmployeeID: e.ID.String(),
				Name:       e.FirstName + " " + e.LastName,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	dob, hireDate, err := s.parseAndValidateDates(req.DateOfBirth, req.HireDate)
	if err != nil {
		s.logger.Warn("update employee date validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		empl, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		empl.FirstName = req.FirstName
		empl.LastName = req.LastName
		empl.Email = req.Email
		empl.Phone = req.Phone
		empl.Address = req.Address
		empl.DateOfBirth = dob
		empl.HireDate = hireDate
		if req.Status != "" {
			empl.Status = req.Status
		}
		empl.DepartmentID = uuid.MustParse(req.DepartmentID)
		empl.PositionID = uuid.MustParse(req.PositionID)
		empl.ManagerID = uuidPtr(req.ManagerID)
		empl.EmergencyContact = req.EmergencyContact
		empl.BankDetails = req.BankDetails

		return qtx.Update(ctx, empl)
	})
	if err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// Delete terminates the employee instead of removing the row. Payslips and
// salary history keep their reference; repeating the call re-stamps the
// termination date.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		empl.Status = StatusTerminated
		empl.TerminationDate = &now

		return qtx.Update(ctx, empl)
	})
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) parseAndValidateDates(dobRaw, hireRaw string) (time.Time, time.Time, error) {
	dob, err := time.Parse(dateLayout, dobRaw)
	if err != nil {
		return time.Time{}, time.Time{}, employeeerrors.ErrInvalidDateOfBirth
	}
	hireDate, err := time.Parse(dateLayout, hireRaw)
	if err != nil {
		return time.Time{}, time.Time{}, employeeerrors.ErrInvalidHireDateFormat
	}

	now := s.clock.Now()
	if dob.AddDate(minimumAgeYears, 0, 0).After(now) {
		return time.Time{}, time.Time{}, employeeerrors.ErrEmployeeTooYoung
	}
	if hireDate.Before(now.AddDate(-100, 0, 0)) || hireDate.After(now.Add(maxHireDateWindow)) {
		return time.Time{}, time.Time{}, employeeerrors.ErrHireDateOutOfRange
	}

	return dob, hireDate, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:       empl.ID.String(),
		FirstName:        empl.FirstName,
		LastName:         empl.LastName,
		Email:            empl.Email,
		Phone:            empl.Phone,
		Address:          empl.Address,
		DateOfBirth:      empl.DateOfBirth.Format(dateLayout),
		HireDate:         empl.HireDate.Format(dateLayout),
		Status:           empl.Status,
		DepartmentID:     empl.DepartmentID.String(),
		PositionID:       empl.PositionID.String(),
		EmergencyContact: empl.EmergencyContact,
		BankDetails:      empl.BankDetails,
		Created:          empl.Created,
		Modified:         empl.Modified,
	}
	if empl.TerminationDate != nil {
		t := empl.TerminationDate.Format(dateLayout)
		resp.TerminationDate = &t
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	if empl.Position != nil {
		resp.PositionTitle = empl.Position.Title
	}
	if empl.ManagerID != nil {
		id := empl.ManagerID.String()
		resp.ManagerID = &id
	}
	if empl.Manager != nil {
		name := empl.Manager.FirstName + " " + empl.Manager.LastName
		resp.ManagerName = &name
	}
	return resp
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}
