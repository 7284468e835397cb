// Package models holds the persisted CRM entities. Categorical fields store
// the canonical UPPER_SNAKE value from internal/enums; handlers render the
// display form.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountName   string    `gorm:"size:255;not null;index" json:"accountName"`
	Industry      string    `gorm:"size:128;not null" json:"industry"`
	AccountRating string    `gorm:"size:32" json:"accountRating"`
	Revenue       string    `gorm:"size:64" json:"revenue"`
	EmployeeCount string    `gorm:"size:32" json:"employeeCount"`
	Street        string    `gorm:"size:255" json:"street"`
	City          string    `gorm:"size:128" json:"city"`
	State         string    `gorm:"size:128" json:"state"`
	PostalCode    string    `gorm:"size:32" json:"postalCode"`
	Country       string    `gorm:"size:128" json:"country"`
	Website       string    `gorm:"size:255" json:"website"`
	Owner         string    `gorm:"size:128" json:"owner"`
	Status        string    `gorm:"size:32" json:"status"`
	CreatedBy     string    `gorm:"size:128" json:"createdBy"`
	UpdatedBy     string    `gorm:"size:128" json:"updatedBy"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Contacts   []Contact     `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"contacts,omitempty"`
	Deals      []ActiveDeal  `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"deals,omitempty"`
	Activities []ActivityLog `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"activities,omitempty"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type Contact struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  string     `gorm:"size:128;index" json:"firstName"`
	LastName   string     `gorm:"size:128;index" json:"lastName"`
	Title      string     `gorm:"size:128" json:"title"`
	Email      string     `gorm:"size:255;index" json:"email"`
	Phone      string     `gorm:"size:32" json:"phone"`
	Mobile     string     `gorm:"size:32" json:"mobile"`
	Street     string     `gorm:"size:255" json:"street"`
	City       string     `gorm:"size:128" json:"city"`
	State      string     `gorm:"size:128" json:"state"`
	PostalCode string     `gorm:"size:32" json:"postalCode"`
	Country    string     `gorm:"size:128" json:"country"`
	Source     string     `gorm:"size:32" json:"source"`
	Status     string     `gorm:"size:32" json:"status"`
	Owner      string     `gorm:"size:128" json:"owner"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index" json:"accountId"`
	CreatedBy  string     `gorm:"size:128" json:"createdBy"`
	UpdatedBy  string     `gorm:"size:128" json:"updatedBy"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ActiveDeal struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DealName     string     `gorm:"size:255;not null;index" json:"dealName"`
	Owner        string     `gorm:"size:128" json:"owner"`
	BusinessLine string     `gorm:"size:32" json:"businessLine"`
	ClosingDate  *time.Time `json:"closingDate"`
	Probability  int        `json:"probability"`
	DealValue    float64    `json:"dealValue"`
	Stage        string     `gorm:"size:32" json:"stage"`
	Geo          string     `gorm:"size:32" json:"geo"`
	Entity       string     `gorm:"size:32" json:"entity"`
	AccountID    *uuid.UUID `gorm:"type:uuid;index" json:"accountId"`
	ContactID    *uuid.UUID `gorm:"type:uuid;index" json:"contactId"`
	CreatedBy    string     `gorm:"size:128" json:"createdBy"`
	UpdatedBy    string     `gorm:"size:128" json:"updatedBy"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Contact *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL" json:"contact,omitempty"`
}

func (d *ActiveDeal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type Lead struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  string    `gorm:"size:128;index" json:"firstName"`
	LastName   string    `gorm:"size:128;index" json:"lastName"`
	Company    string    `gorm:"size:255;index" json:"company"`
	Title      string    `gorm:"size:128" json:"title"`
	Phone      string    `gorm:"size:32" json:"phone"`
	Email      string    `gorm:"size:255;index" json:"email"`
	LeadSource string    `gorm:"size:32" json:"leadSource"`
	Status     string    `gorm:"size:32" json:"status"`
	Rating     string    `gorm:"size:32" json:"rating"`
	Owner      string    `gorm:"size:128" json:"owner"`
	CreatedBy  string    `gorm:"size:128" json:"createdBy"`
	UpdatedBy  string    `gorm:"size:128" json:"updatedBy"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type ActivityLog struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityType       string     `gorm:"size:32;not null;index" json:"activityType"`
	OutcomeDisposition string     `gorm:"size:32" json:"outcomeDisposition"`
	DateTime           time.Time  `gorm:"index" json:"dateTime"`
	Notes              string     `gorm:"type:text" json:"notes"`
	ContactID          *uuid.UUID `gorm:"type:uuid;index" json:"contactId"`
	AccountID          *uuid.UUID `gorm:"type:uuid;index" json:"accountId"`
	CreatedBy          string     `gorm:"size:128" json:"createdBy"`
	UpdatedBy          string     `gorm:"size:128" json:"updatedBy"`
	CreatedAt          time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Contact *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL" json:"contact,omitempty"`
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type UserProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"size:128" json:"name"`
	Email              string    `gorm:"size:255;uniqueIndex" json:"email"`
	Title              string    `gorm:"size:128" json:"title"`
	Department         string    `gorm:"size:128" json:"department"`
	Role               string    `gorm:"size:32" json:"role"`
	Phone              string    `gorm:"size:32" json:"phone"`
	Timezone           string    `gorm:"size:64" json:"timezone"`
	Language           string    `gorm:"size:16" json:"language"`
	EmailNotifications bool      `json:"emailNotifications"`
	PushNotifications  bool      `json:"pushNotifications"`
	WeeklyDigest       bool      `json:"weeklyDigest"`
	CreatedBy          string    `gorm:"size:128" json:"createdBy"`
	UpdatedBy          string    `gorm:"size:128" json:"updatedBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
