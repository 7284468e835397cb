package activities

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type CreateRequest struct {
	ActivityType       string `json:"activityType" validate:"required"`
	OutcomeDisposition string `json:"outcomeDisposition"`
	DateTime           string `json:"dateTime"`
	Notes              string `json:"notes"`
	ContactID          string `json:"contactId"`
	AccountID          string `json:"accountId"`
}

type UpdateRequest struct {
	ActivityType       *string `json:"activityType"`
	OutcomeDisposition *string `json:"outcomeDisposition"`
	DateTime           *string `json:"dateTime"`
	Notes              *string `json:"notes"`
	ContactID          *string `json:"contactId"`
	AccountID          *string `json:"accountId"`
}

type Response struct {
	ID                 uuid.UUID  `json:"id"`
	ActivityType       string     `json:"activityType"`
	OutcomeDisposition string     `json:"outcomeDisposition,omitempty"`
	DateTime           time.Time  `json:"dateTime"`
	Notes              string     `json:"notes,omitempty"`
	ContactID          *uuid.UUID `json:"contactId,omitempty"`
	AccountID          *uuid.UUID `json:"accountId,omitempty"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	UpdatedBy          string     `json:"updatedBy,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ContactRef struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type AccountRef struct {
	ID          uuid.UUID `json:"id"`
	AccountName string    `json:"accountName"`
}

type DetailResponse struct {
	Response
	Contact *ContactRef `json:"contact,omitempty"`
	Account *AccountRef `json:"account,omitempty"`
}

func NewResponse(m models.ActivityLog) Response {
	return Response{
		ID:                 m.ID,
		ActivityType:       enums.ActivityTypes.Display(m.ActivityType),
		OutcomeDisposition: enums.Outcomes.Display(m.OutcomeDisposition),
		DateTime:           m.DateTime,
		Notes:              m.Notes,
		ContactID:          m.ContactID,
		AccountID:          m.AccountID,
		CreatedBy:          m.CreatedBy,
		UpdatedBy:          m.UpdatedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func newDetailResponse(m models.ActivityLog) DetailResponse {
	detail := DetailResponse{Response: NewResponse(m)}
	if m.Contact != nil {
		detail.Contact = &ContactRef{ID: m.Contact.ID, FirstName: m.Contact.FirstName, LastName: m.Contact.LastName}
	}
	if m.Account != nil {
		detail.Account = &AccountRef{ID: m.Account.ID, AccountName: m.Account.AccountName}
	}
	return detail
}
