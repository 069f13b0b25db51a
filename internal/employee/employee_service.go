package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	employeeerrors "github.com/tech1210/empthics-backend/internal/employee/errors"
	"github.com/tech1210/empthics-backend/internal/events"
	"github.com/tech1210/empthics-backend/internal/messaging/kafka"
	"github.com/tech1210/empthics-backend/internal/shared/civil"
	"github.com/tech1210/empthics-backend/internal/shared/contextutil"
	"github.com/tech1210/empthics-backend/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const RosterKeyPrefix = "employees:roster:"

func GetRosterKey(orgID string) string {
	return RosterKeyPrefix + orgID
}

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type Service interface {
	Create(ctx context.Context, orgID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, orgID string, filter ListFilter) (ListResponse, error)
	GetRoster(ctx context.Context, orgID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, orgID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, orgID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, orgID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	orgID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.String("phone", req.Phone),
	)

	if !phonePattern.MatchString(req.Phone) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPhone
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmail
	}
	joiningDate, err := civil.ParseDate(req.JoiningDate, time.UTC)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	if exists, err := s.repo.ExistsByPhone(ctx, orgID, req.Phone, ""); err != nil {
		return EmployeeResponse{}, err
	} else if exists {
		return EmployeeResponse{}, employeeerrors.ErrDuplicatePhone
	}
	if req.Email != "" {
		if exists, err := s.repo.ExistsByEmail(ctx, orgID, req.Email, ""); err != nil {
			return EmployeeResponse{}, err
		} else if exists {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateEmail
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	nextVal, err := s.counter.GetNextValue(ctx, orgID, "employee_code")
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	code := fmt.Sprintf("EMP-%04d", nextVal)

	tempPassword := req.Password
	if tempPassword == "" {
		tempPassword = generateTempPassword()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		OrgID:        uuid.MustParse(orgID),
		EmployeeCode: code,
		LoginID:      fmt.Sprintf("%s.%s", code, orgID[:8]),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Designation:  req.Designation,
		JoiningDate:  &joiningDate,
		PasswordHash: string(hash),
		TempPassword: tempPassword,
		Status:       StatusActive,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			EmployeeID:   empl.ID.String(),
			OrgID:        orgID,
			EmployeeCode: code,
			OccurredAt:   time.Now().UTC(),
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
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateRoster(ctx, orgID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", code),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	orgID string,
	filter ListFilter,
) (ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	rows, total, err := s.repo.FindAllByOrg(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return ListResponse{}, mapRepositoryError(err)
	}

	resp := ListResponse{
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
		Employees: mapToListResponse(rows),
	}
	return resp, nil
}

// GetRoster returns the active employee list for an org, cached in Redis.
// A singleflight group collapses concurrent misses into one DB query.
func (s *service) GetRoster(ctx context.Context, orgID string) ([]EmployeeResponse, error) {
	cacheKey := GetRosterKey(orgID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindActiveByOrg(ctx, orgID, "")
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	orgID, id string,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndOrg(ctx, orgID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	orgID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("org_id", orgID),
		zap.String("employee_id", id),
	)

	empl, err := s.repo.FindByIDAndOrg(ctx, orgID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Phone != nil && *req.Phone != empl.Phone {
		if !phonePattern.MatchString(*req.Phone) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidPhone
		}
		if exists, err := s.repo.ExistsByPhone(ctx, orgID, *req.Phone, id); err != nil {
			return EmployeeResponse{}, err
		} else if exists {
			return EmployeeResponse{}, employeeerrors.ErrDuplicatePhone
		}
		empl.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != empl.Email {
		if *req.Email != "" {
			if !emailPattern.MatchString(*req.Email) {
				return EmployeeResponse{}, employeeerrors.ErrInvalidEmail
			}
			if exists, err := s.repo.ExistsByEmail(ctx, orgID, *req.Email, id); err != nil {
				return EmployeeResponse{}, err
			} else if exists {
				return EmployeeResponse{}, employeeerrors.ErrDuplicateEmail
			}
		}
		empl.Email = *req.Email
	}
	if req.Name != nil {
		empl.Name = *req.Name
	}
	if req.Designation != nil {
		empl.Designation = *req.Designation
	}
	if req.JoiningDate != nil {
		joiningDate, err := civil.ParseDate(*req.JoiningDate, time.UTC)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
		}
		empl.JoiningDate = &joiningDate
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = string(hash)
		empl.TempPassword = ""
	}
	if req.Status != nil {
		empl.Status = *req.Status
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateRoster(ctx, orgID)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// Deactivate flips the employee to Inactive. Rows are never removed so
// historical attendance and leave data stays queryable.
func (s *service) Deactivate(ctx context.Context, orgID, id string) error {
	empl, err := s.repo.FindByIDAndOrg(ctx, orgID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if empl.Status == StatusInactive {
		return nil
	}

	empl.Status = StatusInactive
	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("deactivate employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateRoster(ctx, orgID)

	s.logger.Info("employee deactivated",
		zap.String("org_id", orgID),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) invalidateRoster(ctx context.Context, orgID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetRosterKey(orgID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate roster cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func generateTempPassword() string {
	return fmt.Sprintf("%08d", rand.Intn(100000000))
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		OrgID:        empl.OrgID.String(),
		EmployeeCode: empl.EmployeeCode,
		LoginID:      empl.LoginID,
		Name:         empl.Name,
		Phone:        empl.Phone,
		Email:        empl.Email,
		Designation:  empl.Designation,
		Status:       empl.Status,
	}
	if empl.JoiningDate != nil {
		resp.JoiningDate = empl.JoiningDate.Format(civil.DateLayout)
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}
