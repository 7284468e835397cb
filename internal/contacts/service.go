package contacts

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

var (
	ErrNotFound         = errors.New("contact not found")
	ErrInvalidReference = errors.New("invalid accountId")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]models.Contact, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Contact{}, ErrNotFound
		}
		return models.Contact{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Contact, error) {
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

	item := models.Contact{
		FirstName:  first,
		LastName:   last,
		Title:      strings.TrimSpace(req.Title),
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		Mobile:     strings.TrimSpace(req.Mobile),
		Street:     strings.TrimSpace(req.Street),
		City:       strings.TrimSpace(req.City),
		State:      strings.TrimSpace(req.State),
		PostalCode: strings.TrimSpace(req.PostalCode),
		Country:    strings.TrimSpace(req.Country),
		Owner:      strings.TrimSpace(req.Owner),
		CreatedBy:  actor,
		UpdatedBy:  actor,
	}

	var err error
	if item.Source, err = enums.ContactSources.Canonical(req.Source); err != nil {
		return models.Contact{}, err
	}
	if item.Status, err = enums.ContactStatuses.Canonical(req.Status); err != nil {
		return models.Contact{}, err
	}
	if item.AccountID, err = parseReference(req.AccountID); err != nil {
		return models.Contact{}, err
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return models.Contact{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.Contact, error) {
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

	setString(updates, "title", req.Title)
	setString(updates, "phone", req.Phone)
	setString(updates, "mobile", req.Mobile)
	setString(updates, "street", req.Street)
	setString(updates, "city", req.City)
	setString(updates, "state", req.State)
	setString(updates, "postal_code", req.PostalCode)
	setString(updates, "country", req.Country)
	setString(updates, "owner", req.Owner)

	if req.Source != nil {
		c, err := enums.ContactSources.Canonical(*req.Source)
		if err != nil {
			return models.Contact{}, err
		}
		updates["source"] = c
	}
	if req.Status != nil {
		c, err := enums.ContactStatuses.Canonical(*req.Status)
		if err != nil {
			return models.Contact{}, err
		}
		updates["status"] = c
	}
	if req.AccountID != nil {
		ref, err := parseReference(*req.AccountID)
		if err != nil {
			return models.Contact{}, err
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
			return models.Contact{}, ErrNotFound
		}
		return models.Contact{}, err
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
