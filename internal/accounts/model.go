package accounts

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/activities"
	"crm-backend/internal/contacts"
	"crm-backend/internal/deals"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type CreateRequest struct {
	AccountName   string `json:"accountName" validate:"required"`
	Industry      string `json:"industry" validate:"required"`
	AccountRating string `json:"accountRating"`
	Revenue       string `json:"revenue"`
	EmployeeCount string `json:"employeeCount"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	Website       string `json:"website" validate:"omitempty,url"`
	Owner         string `json:"owner"`
	Status        string `json:"status"`
}

type UpdateRequest struct {
	AccountName   *string `json:"accountName"`
	Industry      *string `json:"industry"`
	AccountRating *string `json:"accountRating"`
	Revenue       *string `json:"revenue"`
	EmployeeCount *string `json:"employeeCount"`
	Street        *string `json:"street"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postalCode"`
	Country       *string `json:"country"`
	Website       *string `json:"website" validate:"omitempty,url"`
	Owner         *string `json:"owner"`
	Status        *string `json:"status"`
}

type Response struct {
	ID            uuid.UUID `json:"id"`
	AccountName   string    `json:"accountName"`
	Industry      string    `json:"industry"`
	AccountRating string    `json:"accountRating,omitempty"`
	Revenue       string    `json:"revenue,omitempty"`
	EmployeeCount string    `json:"employeeCount,omitempty"`
	Street        string    `json:"street,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	PostalCode    string    `json:"postalCode,omitempty"`
	Country       string    `json:"country,omitempty"`
	Website       string    `json:"website,omitempty"`
	Owner         string    `json:"owner,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	UpdatedBy     string    `json:"updatedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DetailResponse carries the eagerly loaded children shown on the account
// detail view.
type DetailResponse struct {
	Response
	Contacts   []contacts.Response   `json:"contacts"`
	Deals      []deals.Response      `json:"deals"`
	Activities []activities.Response `json:"activities"`
}

func NewResponse(m models.Account) Response {
	return Response{
		ID:            m.ID,
		AccountName:   m.AccountName,
		Industry:      m.Industry,
		AccountRating: enums.Ratings.Display(m.AccountRating),
		Revenue:       m.Revenue,
		EmployeeCount: enums.EmployeeBuckets.Display(m.EmployeeCount),
		Street:        m.Street,
		City:          m.City,
		State:         m.State,
		PostalCode:    m.PostalCode,
		Country:       m.Country,
		Website:       m.Website,
		Owner:         m.Owner,
		Status:        enums.AccountStatuses.Display(m.Status),
		CreatedBy:     m.CreatedBy,
		UpdatedBy:     m.UpdatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func newDetailResponse(m models.Account) DetailResponse {
	detail := DetailResponse{
		Response:   NewResponse(m),
		Contacts:   make([]contacts.Response, 0, len(m.Contacts)),
		Deals:      make([]deals.Response, 0, len(m.Deals)),
		Activities: make([]activities.Response, 0, len(m.Activities)),
	}
	for _, c := range m.Contacts {
		detail.Contacts = append(detail.Contacts, contacts.NewResponse(c))
	}
	for _, d := range m.Deals {
		detail.Deals = append(detail.Deals, deals.NewResponse(d))
	}
	for _, a := range m.Activities {
		detail.Activities = append(detail.Activities, activities.NewResponse(a))
	}
	return detail
}
