package deals

import (
	"context"
	"errors"
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
	ErrNotFound         = errors.New("deal not found")
	ErrInvalidReference = errors.New("invalid related record id")
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

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]models.ActiveDeal, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (models.ActiveDeal, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ActiveDeal{}, ErrNotFound
		}
		return models.ActiveDeal{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.ActiveDeal, error) {
	actor := auth.ActorFromContext(ctx).Stamp()

	item := models.ActiveDeal{
		DealName:    strings.TrimSpace(req.DealName),
		Owner:       strings.TrimSpace(req.Owner),
		ClosingDate: utils.ParseDate(req.ClosingDate, s.location),
		Probability: req.Probability,
		DealValue:   req.DealValue,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}

	var err error
	if item.BusinessLine, err = enums.BusinessLines.Canonical(req.BusinessLine); err != nil {
		return models.ActiveDeal{}, err
	}
	if item.Stage, err = enums.DealStages.Canonical(req.Stage); err != nil {
		return models.ActiveDeal{}, err
	}
	if item.Geo, err = enums.Geos.Canonical(req.Geo); err != nil {
		return models.ActiveDeal{}, err
	}
	if item.Entity, err = enums.LegalEntities.Canonical(req.Entity); err != nil {
		return models.ActiveDeal{}, err
	}
	if item.AccountID, err = parseReference(req.AccountID); err != nil {
		return models.ActiveDeal{}, err
	}
	if item.ContactID, err = parseReference(req.ContactID); err != nil {
		return models.ActiveDeal{}, err
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return models.ActiveDeal{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (models.ActiveDeal, error) {
	updates := map[string]interface{}{}

	if req.DealName != nil {
		updates["deal_name"] = strings.TrimSpace(*req.DealName)
	}
	if req.Owner != nil {
		updates["owner"] = strings.TrimSpace(*req.Owner)
	}
	if req.ClosingDate != nil {
		// Unparseable input clears the date instead of failing the update.
		if parsed := utils.ParseDate(*req.ClosingDate, s.location); parsed != nil {
			updates["closing_date"] = *parsed
		} else {
			updates["closing_date"] = nil
		}
	}
	if req.Probability != nil {
		updates["probability"] = *req.Probability
	}
	if req.DealValue != nil {
		updates["deal_value"] = *req.DealValue
	}

	if req.BusinessLine != nil {
		c, err := enums.BusinessLines.Canonical(*req.BusinessLine)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		updates["business_line"] = c
	}
	if req.Stage != nil {
		c, err := enums.DealStages.Canonical(*req.Stage)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		updates["stage"] = c
	}
	if req.Geo != nil {
		c, err := enums.Geos.Canonical(*req.Geo)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		updates["geo"] = c
	}
	if req.Entity != nil {
		c, err := enums.LegalEntities.Canonical(*req.Entity)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		updates["entity"] = c
	}
	if req.AccountID != nil {
		ref, err := parseReference(*req.AccountID)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		if ref == nil {
			updates["account_id"] = nil
		} else {
			updates["account_id"] = *ref
		}
	}
	if req.ContactID != nil {
		ref, err := parseReference(*req.ContactID)
		if err != nil {
			return models.ActiveDeal{}, err
		}
		if ref == nil {
			updates["contact_id"] = nil
		} else {
			updates["contact_id"] = *ref
		}
	}

	updates["updated_by"] = auth.ActorFromContext(ctx).Stamp()

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ActiveDeal{}, ErrNotFound
		}
		return models.ActiveDeal{}, err
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
