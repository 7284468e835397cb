package activities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
	"crm-backend/internal/utils"
)

var (
	ErrNotFound         = errors.New("activity not found")
	ErrInvalidReference = errors.New("invalid related record id")

	errMissingActivityType = fmt.Errorf("activityType: %w \"\"", enums.ErrUnknownValue)
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]models.ActivityLog, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.ActivityLog, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ActivityLog{}, ErrNotFound
		}
		return models.ActivityLog{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.ActivityLog, error) {
	actor := auth.ActorFromContext(ctx).Stamp()

	item := models.ActivityLog{
		Notes:     strings.TrimSpace(req.Notes),
		CreatedBy: actor,
		UpdatedBy: actor,
	}

	// activityType is the one required categorical field.
	activityType, err := enums.ActivityTypes.Canonical(req.ActivityType)
	if err != nil {
		return models.ActivityLog{}, err
	}
	if activityType == "" {
		return models.ActivityLog{}, errMissingActivityType
	}
	item.ActivityType = activityType

	if item.OutcomeDisposition, err = enums.Outcomes.Canonical(req.OutcomeDisposition); err != nil {
		return models.ActivityLog{}, err
	}
	if item.ContactID, err = parseReference(req.ContactID); err != nil {
		return models.ActivityLog{}, err
	}
	if item.AccountID, err = parseReference(req.AccountID); err != nil {
		return models.ActivityLog{}, err
	}

	if parsed := utils.ParseDate(req.DateTime, s.location); parsed != nil {
		item.DateTime = *parsed
	} else {
		item.DateTime = time.Now().In(s.location)
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return models.ActivityLog{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.ActivityLog, error) {
	updates := map[string]interface{}{}

	if req.ActivityType != nil {
		c, err := enums.ActivityTypes.Canonical(*req.ActivityType)
		if err != nil {
			return models.ActivityLog{}, err
		}
		if c == "" {
			return models.ActivityLog{}, errMissingActivityType
		}
		updates["activity_type"] = c
	}
	if req.OutcomeDisposition != nil {
		c, err := enums.Outcomes.Canonical(*req.OutcomeDisposition)
		if err != nil {
			return models.ActivityLog{}, err
		}
		updates["outcome_disposition"] = c
	}
	if req.DateTime != nil {
		if parsed := utils.ParseDate(*req.DateTime, s.location); parsed != nil {
			updates["date_time"] = *parsed
		}
	}
	if req.Notes != nil {
		updates["notes"] = strings.TrimSpace(*req.Notes)
	}
	if req.ContactID != nil {
		ref, err := parseReference(*req.ContactID)
		if err != nil {
			return models.ActivityLog{}, err
		}
		if ref == nil {
			updates["contact_id"] = nil
		} else {
			updates["contact_id"] = *ref
		}
	}
	if req.AccountID != nil {
		ref, err := parseReference(*req.AccountID)
		if err != nil {
			return models.ActivityLog{}, err
		}
		if ref == nil {
			updates["account_id"] = nil
		} else {
			updates["account_id"] = *ref
		}
	}

	updates["updated_by"] = auth.ActorFromContext(ctx).Stamp()

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ActivityLog{}, ErrNotFound
		}
		return models.ActivityLog{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func parseReference(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrInvalidReference
	}
	return &id, nil
}
