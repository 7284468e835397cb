package leads

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
	"crm-backend/internal/utils"
)

var ErrNotFound = errors.New("lead not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]models.Lead, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.Lead, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, ErrNotFound
		}
		return models.Lead{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Lead, error) {
	actor := auth.ActorFromContext(ctx).Stamp()

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" && last == "" {
		first, last = utils.SplitName(req.Name)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.EmailAddress)
	}

	item := models.Lead{
		FirstName: first,
		LastName:  last,
		Company:   strings.TrimSpace(req.Company),
		Title:     strings.TrimSpace(req.Title),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     email,
		Owner:     strings.TrimSpace(req.Owner),
		CreatedBy: actor,
		UpdatedBy: actor,
	}

	var err error
	if item.LeadSource, err = enums.LeadSources.Canonical(req.LeadSource); err != nil {
		return models.Lead{}, err
	}
	if item.Status, err = enums.LeadStatuses.Canonical(req.Status); err != nil {
		return models.Lead{}, err
	}
	if item.Rating, err = enums.Ratings.Canonical(req.Rating); err != nil {
		return models.Lead{}, err
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return models.Lead{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.Lead, error) {
	updates := map[string]interface{}{}

	first, last := req.FirstName, req.LastName
	if first == nil && last == nil && req.Name != nil {
		f, l := utils.SplitName(*req.Name)
		first, last = &f, &l
	}
	if first != nil {
		updates["first_name"] = strings.TrimSpace(*first)
	}
	if last != nil {
		updates["last_name"] = strings.TrimSpace(*last)
	}

	email := req.Email
	if email == nil {
		email = req.EmailAddress
	}
	if email != nil {
		updates["email"] = strings.TrimSpace(*email)
	}

	if req.Company != nil {
		updates["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Owner != nil {
		updates["owner"] = strings.TrimSpace(*req.Owner)
	}

	if req.LeadSource != nil {
		c, err := enums.LeadSources.Canonical(*req.LeadSource)
		if err != nil {
			return models.Lead{}, err
		}
		updates["lead_source"] = c
	}
	if req.Status != nil {
		c, err := enums.LeadStatuses.Canonical(*req.Status)
		if err != nil {
			return models.Lead{}, err
		}
		updates["status"] = c
	}
	if req.Rating != nil {
		c, err := enums.Ratings.Canonical(*req.Rating)
		if err != nil {
			return models.Lead{}, err
		}
		updates["rating"] = c
	}

	updates["updated_by"] = auth.ActorFromContext(ctx).Stamp()

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, ErrNotFound
		}
		return models.Lead{}, err
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
