package organization

import (
	"context"
	"errors"
	"time"

	orgerrors "github.com/tech1210/empthics-backend/internal/organization/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetSettings(ctx context.Context, orgID string) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, orgID string, req UpdateSettingsRequest) (SettingsResponse, error)
	ToggleRegularization(ctx context.Context, orgID string) (SettingsResponse, error)
	GetShiftConfig(ctx context.Context, orgID string) (ShiftConfig, bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetSettings(ctx context.Context, orgID string) (SettingsResponse, error) {
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, orgerrors.ErrOrganizationNotFound
		}
		return SettingsResponse{}, err
	}
	return mapToSettings(*org), nil
}

func (s *service) UpdateSettings(ctx context.Context, orgID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, orgerrors.ErrOrganizationNotFound
		}
		return SettingsResponse{}, err
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return SettingsResponse{}, orgerrors.ErrInvalidTimezone
		}
		org.Timezone = *req.Timezone
	}
	if req.ShiftStart != nil {
		if _, err := time.Parse("15:04", *req.ShiftStart); err != nil {
			return SettingsResponse{}, orgerrors.ErrInvalidShiftStart
		}
		org.ShiftStart = *req.ShiftStart
	}
	if req.HalfDayHours != nil {
		if *req.HalfDayHours <= 0 {
			return SettingsResponse{}, orgerrors.ErrInvalidHalfDayHours
		}
		org.HalfDayHours = *req.HalfDayHours
	}
	if req.WeeklyOffDay != nil {
		if *req.WeeklyOffDay < 0 || *req.WeeklyOffDay > 6 {
			return SettingsResponse{}, orgerrors.ErrInvalidWeeklyOffDay
		}
		org.WeeklyOffDay = *req.WeeklyOffDay
	}

	if err := s.repo.Update(ctx, org); err != nil {
		s.logger.Error("update organization settings failed", zap.String("org_id", orgID), zap.Error(err))
		return SettingsResponse{}, err
	}

	s.logger.Info("organization settings updated", zap.String("org_id", orgID))
	return mapToSettings(*org), nil
}

func (s *service) ToggleRegularization(ctx context.Context, orgID string) (SettingsResponse, error) {
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, orgerrors.ErrOrganizationNotFound
		}
		return SettingsResponse{}, err
	}

	org.IsRegularizationEnabled = !org.IsRegularizationEnabled
	if err := s.repo.Update(ctx, org); err != nil {
		s.logger.Error("toggle regularization failed", zap.String("org_id", orgID), zap.Error(err))
		return SettingsResponse{}, err
	}

	s.logger.Info("regularization toggled",
		zap.String("org_id", orgID),
		zap.Bool("enabled", org.IsRegularizationEnabled),
	)
	return mapToSettings(*org), nil
}

// GetShiftConfig returns the attendance policy knobs plus the regularization
// flag for other services (punch ledger, classifier, regularization guard).
func (s *service) GetShiftConfig(ctx context.Context, orgID string) (ShiftConfig, bool, error) {
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftConfig{}, false, orgerrors.ErrOrganizationNotFound
		}
		return ShiftConfig{}, false, err
	}
	return org.ShiftConfig(), org.IsRegularizationEnabled, nil
}

func mapToSettings(o Organization) SettingsResponse {
	return SettingsResponse{
		ID:                      o.ID.String(),
		Name:                    o.Name,
		Timezone:                o.Timezone,
		ShiftStart:              o.ShiftStart,
		HalfDayHours:            o.HalfDayHours,
		WeeklyOffDay:            o.WeeklyOffDay,
		IsRegularizationEnabled: o.IsRegularizationEnabled,
	}
}
