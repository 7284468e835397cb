package accounts

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

var ErrNotFound = errors.New("account not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]models.Account, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Account, error) {
	actor := auth.ActorFromContext(ctx).Stamp()

	item := models.Account{
		AccountName: strings.TrimSpace(req.AccountName),
		Industry:    strings.TrimSpace(req.Industry),
		Revenue:     strings.TrimSpace(req.Revenue),
		Street:      strings.TrimSpace(req.Street),
		City:        strings.TrimSpace(req.City),
		State:       strings.TrimSpace(req.State),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		Country:     strings.TrimSpace(req.Country),
		Website:     strings.TrimSpace(req.Website),
		Owner:       strings.TrimSpace(req.Owner),
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}

	var err error
	if item.AccountRating, err = enums.Ratings.Canonical(req.AccountRating); err != nil {
		return models.Account{}, err
	}
	if item.EmployeeCount, err = enums.EmployeeBuckets.Canonical(req.EmployeeCount); err != nil {
		return models.Account{}, err
	}
	if item.Status, err = enums.AccountStatuses.Canonical(req.Status); err != nil {
		return models.Account{}, err
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return models.Account{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.Account, error) {
	updates := map[string]interface{}{}

	setString(updates, "account_name", req.AccountName)
	setString(updates, "industry", req.Industry)
	setString(updates, "revenue", req.Revenue)
	setString(updates, "street", req.Street)
	setString(updates, "city", req.City)
	setString(updates, "state", req.State)
	setString(updates, "postal_code", req.PostalCode)
	setString(updates, "country", req.Country)
	setString(updates, "website", req.Website)
	setString(updates, "owner", req.Owner)

	if req.AccountRating != nil {
		c, err := enums.Ratings.Canonical(*req.AccountRating)
		if err != nil {
			return models.Account{}, err
		}
		updates["account_rating"] = c
	}
	if req.EmployeeCount != nil {
		c, err := enums.EmployeeBuckets.Canonical(*req.EmployeeCount)
		if err != nil {
			return models.Account{}, err
		}
		updates["employee_count"] = c
	}
	if req.Status != nil {
		c, err := enums.AccountStatuses.Canonical(*req.Status)
		if err != nil {
			return models.Account{}, err
		}
		updates["status"] = c
	}

	updates["updated_by"] = auth.ActorFromContext(ctx).Stamp()

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
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

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = strings.TrimSpace(*value)
	}
}
