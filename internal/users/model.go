package users

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type UpdateRequest struct {
	Name               *string `json:"name"`
	Title              *string `json:"title"`
	Department         *string `json:"department"`
	Role               *string `json:"role"`
	Phone              *string `json:"phone" validate:"omitempty,phone"`
	Timezone           *string `json:"timezone"`
	Language           *string `json:"language"`
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	WeeklyDigest       *bool   `json:"weeklyDigest"`
}

type Response struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Title              string    `json:"title,omitempty"`
	Department         string    `json:"department,omitempty"`
	Role               string    `json:"role,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Timezone           string    `json:"timezone,omitempty"`
	Language           string    `json:"language,omitempty"`
	EmailNotifications bool      `json:"emailNotifications"`
	PushNotifications  bool      `json:"pushNotifications"`
	WeeklyDigest       bool      `json:"weeklyDigest"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewResponse(m models.UserProfile) Response {
	return Response{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		Title:              m.Title,
		Department:         m.Department,
		Role:               enums.UserRoles.Display(m.Role),
		Phone:              m.Phone,
		Timezone:           m.Timezone,
		Language:           m.Language,
		EmailNotifications: m.EmailNotifications,
		PushNotifications:  m.PushNotifications,
		WeeklyDigest:       m.WeeklyDigest,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
