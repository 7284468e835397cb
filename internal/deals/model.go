package deals

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

// closingDate is accepted as "2006-01-02" or a full timestamp; anything else
// is persisted as absent rather than rejected.
type CreateRequest struct {
	DealName     string  `json:"dealName" validate:"required"`
	Owner        string  `json:"owner"`
	BusinessLine string  `json:"businessLine"`
	ClosingDate  string  `json:"closingDate"`
	Probability  int     `json:"probability" validate:"gte=0,lte=100"`
	DealValue    float64 `json:"dealValue" validate:"gte=0"`
	Stage        string  `json:"stage"`
	Geo          string  `json:"geo"`
	Entity       string  `json:"entity"`
	AccountID    string  `json:"accountId"`
	ContactID    string  `json:"contactId"`
}

type UpdateRequest struct {
	DealName     *string  `json:"dealName"`
	Owner        *string  `json:"owner"`
	BusinessLine *string  `json:"businessLine"`
	ClosingDate  *string  `json:"closingDate"`
	Probability  *int     `json:"probability" validate:"omitempty,gte=0,lte=100"`
	DealValue    *float64 `json:"dealValue" validate:"omitempty,gte=0"`
	Stage        *string  `json:"stage"`
	Geo          *string  `json:"geo"`
	Entity       *string  `json:"entity"`
	AccountID    *string  `json:"accountId"`
	ContactID    *string  `json:"contactId"`
}

type Response struct {
	ID           uuid.UUID  `json:"id"`
	DealName     string     `json:"dealName"`
	Owner        string     `json:"owner,omitempty"`
	BusinessLine string     `json:"businessLine,omitempty"`
	ClosingDate  *time.Time `json:"closingDate,omitempty"`
	Probability  int        `json:"probability"`
	DealValue    float64    `json:"dealValue"`
	Stage        string     `json:"stage,omitempty"`
	Geo          string     `json:"geo,omitempty"`
	Entity       string     `json:"entity,omitempty"`
	AccountID    *uuid.UUID `json:"accountId,omitempty"`
	ContactID    *uuid.UUID `json:"contactId,omitempty"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type AccountRef struct {
	ID          uuid.UUID `json:"id"`
	AccountName string    `json:"accountName"`
}

type ContactRef struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type DetailResponse struct {
	Response
	Account *AccountRef `json:"account,omitempty"`
	Contact *ContactRef `json:"contact,omitempty"`
}

func NewResponse(m models.ActiveDeal) Response {
	return Response{
		ID:           m.ID,
		DealName:     m.DealName,
		Owner:        m.Owner,
		BusinessLine: enums.BusinessLines.Display(m.BusinessLine),
		ClosingDate:  m.ClosingDate,
		Probability:  m.Probability,
		DealValue:    m.DealValue,
		Stage:        enums.DealStages.Display(m.Stage),
		Geo:          enums.Geos.Display(m.Geo),
		Entity:       enums.LegalEntities.Display(m.Entity),
		AccountID:    m.AccountID,
		ContactID:    m.ContactID,
		CreatedBy:    m.CreatedBy,
		UpdatedBy:    m.UpdatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func newDetailResponse(m models.ActiveDeal) DetailResponse {
	detail := DetailResponse{Response: NewResponse(m)}
	if m.Account != nil {
		detail.Account = &AccountRef{ID: m.Account.ID, AccountName: m.Account.AccountName}
	}
	if m.Contact != nil {
		detail.Contact = &ContactRef{ID: m.Contact.ID, FirstName: m.Contact.FirstName, LastName: m.Contact.LastName}
	}
	return detail
}
