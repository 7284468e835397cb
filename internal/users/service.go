package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.UserProfile, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, ErrNotFound
		}
		return models.UserProfile{}, err
	}
	return item, nil
}

// GetOrCreateForActor resolves the profile matching the request actor's
// email, creating it with defaults on first access. Repeated calls return
// the same record.
func (s *Service) GetOrCreateForActor(ctx context.Context, actor auth.Actor) (models.UserProfile, error) {
	email := strings.TrimSpace(strings.ToLower(actor.Email))
	if email == "" {
		return models.UserProfile{}, ErrNotFound
	}

	item, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProfile{}, err
	}

	item = models.UserProfile{
		Name:               actor.Name,
		Email:              email,
		Role:               "SALES_REP",
		Timezone:           "UTC",
		Language:           "en",
		EmailNotifications: true,
		CreatedBy:          actor.Stamp(),
		UpdatedBy:          actor.Stamp(),
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return models.UserProfile{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.UserProfile, error) {
	updates := map[string]interface{}{}

	setString(updates, "name", req.Name)
	setString(updates, "title", req.Title)
	setString(updates, "department", req.Department)
	setString(updates, "phone", req.Phone)
	setString(updates, "timezone", req.Timezone)
	setString(updates, "language", req.Language)

	if req.Role != nil {
		c, err := enums.UserRoles.Canonical(*req.Role)
		if err != nil {
			return models.UserProfile{}, err
		}
		updates["role"] = c
	}
	if req.EmailNotifications != nil {
		updates["email_notifications"] = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		updates["push_notifications"] = *req.PushNotifications
	}
	if req.WeeklyDigest != nil {
		updates["weekly_digest"] = *req.WeeklyDigest
	}

	updates["updated_by"] = auth.ActorFromContext(ctx).Stamp()

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, ErrNotFound
		}
		return models.UserProfile{}, err
	}
	return item, nil
}

// UpdateForActor applies a partial update to the actor's own profile,
// creating it first if it does not exist yet.
func (s *Service) UpdateForActor(ctx context.Context, actor auth.Actor, req UpdateRequest) (models.UserProfile, error) {
	item, err := s.GetOrCreateForActor(ctx, actor)
	if err != nil {
		return models.UserProfile{}, err
	}
	return s.Update(ctx, item.ID, req)
}

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = strings.TrimSpace(*value)
	}
}
