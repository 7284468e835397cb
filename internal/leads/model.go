package leads

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type CreateRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Title        string `json:"title"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
	LeadSource   string `json:"leadSource"`
	Status       string `json:"status"`
	Rating       string `json:"rating"`
	Owner        string `json:"owner"`
}

type UpdateRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Name         *string `json:"name"`
	Company      *string `json:"company"`
	Title        *string `json:"title"`
	Phone        *string `json:"phone" validate:"omitempty,phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	EmailAddress *string `json:"emailAddress" validate:"omitempty,email"`
	LeadSource   *string `json:"leadSource"`
	Status       *string `json:"status"`
	Rating       *string `json:"rating"`
	Owner        *string `json:"owner"`
}

type Response struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Company    string    `json:"company,omitempty"`
	Title      string    `json:"title,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	LeadSource string    `json:"leadSource,omitempty"`
	Status     string    `json:"status,omitempty"`
	Rating     string    `json:"rating,omitempty"`
	Owner      string    `json:"owner,omitempty"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	UpdatedBy  string    `json:"updatedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewResponse(m models.Lead) Response {
	return Response{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Company:    m.Company,
		Title:      m.Title,
		Phone:      m.Phone,
		Email:      m.Email,
		LeadSource: enums.LeadSources.Display(m.LeadSource),
		Status:     enums.LeadStatuses.Display(m.Status),
		Rating:     enums.Ratings.Display(m.Rating),
		Owner:      m.Owner,
		CreatedBy:  m.CreatedBy,
		UpdatedBy:  m.UpdatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
