package holiday

import (
	"context"
	"strings"
	"time"

	holidayerrors "github.com/tech1210/empthics-backend/internal/holiday/errors"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/shared/civil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	BulkUpload(ctx context.Context, orgID string, req BulkUploadRequest) (BulkUploadResponse, error)
	List(ctx context.Context, orgID string, year int) ([]HolidayResponse, error)
	PolicyFor(ctx context.Context, orgID string) (Policy, error)
	PolicyForRange(ctx context.Context, orgID string, from, to time.Time) (Policy, error)
}

type service struct {
	repo    Repository
	orgSvc  organization.Service
	logger  *zap.Logger
}

func NewService(repo Repository, orgSvc organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, orgSvc: orgSvc, logger: l}
}

func (s *service) BulkUpload(ctx context.Context, orgID string, req BulkUploadRequest) (BulkUploadResponse, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return BulkUploadResponse{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	var resp BulkUploadResponse
	for _, in := range req.Holidays {
		if strings.TrimSpace(in.Name) == "" {
			return BulkUploadResponse{}, holidayerrors.ErrHolidayNameRequired
		}
		from, err := civil.ParseDate(in.FromDate, loc)
		if err != nil {
			return BulkUploadResponse{}, holidayerrors.ErrInvalidHolidayDate
		}
		to, err := civil.ParseDate(in.ToDate, loc)
		if err != nil {
			return BulkUploadResponse{}, holidayerrors.ErrInvalidHolidayDate
		}
		if to.Before(from) {
			return BulkUploadResponse{}, holidayerrors.ErrInvalidHolidayRange
		}

		h := &Holiday{
			ID:       uuid.New(),
			OrgID:    uuid.MustParse(orgID),
			Name:     strings.TrimSpace(in.Name),
			FromDate: from,
			ToDate:   to,
			Year:     from.Year(),
			IsActive: true,
		}
		created, err := s.repo.Upsert(ctx, h)
		if err != nil {
			s.logger.Error("holiday upsert failed",
				zap.String("org_id", orgID),
				zap.String("name", h.Name),
				zap.Error(err),
			)
			return BulkUploadResponse{}, err
		}
		if created {
			resp.Inserted++
		} else {
			resp.Updated++
		}
	}

	s.logger.Info("holiday bulk upload complete",
		zap.String("org_id", orgID),
		zap.Int("inserted", resp.Inserted),
		zap.Int("updated", resp.Updated),
	)
	return resp, nil
}

func (s *service) List(ctx context.Context, orgID string, year int) ([]HolidayResponse, error) {
	var (
		rows []Holiday
		err  error
	)
	if year > 0 {
		rows, err = s.repo.FindByOrgAndYear(ctx, orgID, year)
	} else {
		rows, err = s.repo.FindActiveByOrg(ctx, orgID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, 0, len(rows))
	for _, h := range rows {
		resp = append(resp, mapToResponse(h))
	}
	return resp, nil
}

// PolicyFor builds a calendar policy from the org's full active holiday set.
func (s *service) PolicyFor(ctx context.Context, orgID string) (Policy, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return Policy{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	rows, err := s.repo.FindActiveByOrg(ctx, orgID)
	if err != nil {
		return Policy{}, err
	}
	return NewPolicy(cfg.WeeklyOffDay, loc, rows), nil
}

// PolicyForRange narrows the holiday fetch to windows intersecting [from, to].
func (s *service) PolicyForRange(ctx context.Context, orgID string, from, to time.Time) (Policy, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return Policy{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	rows, err := s.repo.FindActiveByOrgAndRange(ctx, orgID, from, to)
	if err != nil {
		return Policy{}, err
	}
	return NewPolicy(cfg.WeeklyOffDay, loc, rows), nil
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID.String(),
		Name:     h.Name,
		FromDate: h.FromDate.Format(civil.DateLayout),
		ToDate:   h.ToDate.Format(civil.DateLayout),
		Year:     h.Year,
		IsActive: h.IsActive,
	}
}
