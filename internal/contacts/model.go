package contacts

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

// CreateRequest accepts both the canonical field names and the legacy client
// aliases ("name" instead of firstName/lastName, "emailAddress" for email).
type CreateRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email" validate:"omitempty,email"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Mobile       string `json:"mobile" validate:"omitempty,phone"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Owner        string `json:"owner"`
	AccountID    string `json:"accountId"`
}

type UpdateRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Email        *string `json:"email" validate:"omitempty,email"`
	EmailAddress *string `json:"emailAddress" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,phone"`
	Mobile       *string `json:"mobile" validate:"omitempty,phone"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
	Country      *string `json:"country"`
	Source       *string `json:"source"`
	Status       *string `json:"status"`
	Owner        *string `json:"owner"`
	AccountID    *string `json:"accountId"`
}

type Response struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Title      string     `json:"title,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Mobile     string     `json:"mobile,omitempty"`
	Street     string     `json:"street,omitempty"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	PostalCode string     `json:"postalCode,omitempty"`
	Country    string     `json:"country,omitempty"`
	Source     string     `json:"source,omitempty"`
	Status     string     `json:"status,omitempty"`
	Owner      string     `json:"owner,omitempty"`
	AccountID  *uuid.UUID `json:"accountId,omitempty"`
	CreatedBy  string     `json:"createdBy,omitempty"`
	UpdatedBy  string     `json:"updatedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type AccountRef struct {
	ID          uuid.UUID `json:"id"`
	AccountName string    `json:"accountName"`
}

type DetailResponse struct {
	Response
	Account *AccountRef `json:"account,omitempty"`
}

func NewResponse(m models.Contact) Response {
	return Response{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Title:      m.Title,
		Email:      m.Email,
		Phone:      m.Phone,
		Mobile:     m.Mobile,
		Street:     m.Street,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		Country:    m.Country,
		Source:     enums.ContactSources.Display(m.Source),
		Status:     enums.ContactStatuses.Display(m.Status),
		Owner:      m.Owner,
		AccountID:  m.AccountID,
		CreatedBy:  m.CreatedBy,
		UpdatedBy:  m.UpdatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func newDetailResponse(m models.Contact) DetailResponse {
	detail := DetailResponse{Response: NewResponse(m)}
	if m.Account != nil {
		detail.Account = &AccountRef{ID: m.Account.ID, AccountName: m.Account.AccountName}
	}
	return detail
}
