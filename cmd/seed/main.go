package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crm-backend/internal/config"
	"crm-backend/internal/db"
	"crm-backend/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)
	seededBy := "seed"

	acme := models.Account{
		ID:            uuid.MustParse("0d2f1f3e-8a41-4a7b-9a86-0b6a7f1c9f01"),
		AccountName:   "Acme Manufacturing",
		Industry:      "Manufacturing",
		AccountRating: "HOT",
		Revenue:       "25M",
		EmployeeCount: "EMP_201_500",
		City:          "Chicago",
		State:         "IL",
		Country:       "United States",
		Website:       "https://acme.example.com",
		Owner:         "Dana Rio",
		Status:        "ACTIVE",
		CreatedBy:     seededBy,
		UpdatedBy:     seededBy,
	}
	globex := models.Account{
		ID:            uuid.MustParse("4b6f0c8a-55f2-4f19-9a6d-2f3a9c1e8d02"),
		AccountName:   "Globex Software",
		Industry:      "Technology",
		AccountRating: "WARM",
		Revenue:       "8M",
		EmployeeCount: "EMP_51_200",
		City:          "Berlin",
		Country:       "Germany",
		Website:       "https://globex.example.com",
		Owner:         "Morgan Price",
		Status:        "PROSPECT",
		CreatedBy:     seededBy,
		UpdatedBy:     seededBy,
	}
	if err := upsert(gdb, &acme, &globex); err != nil {
		log.Fatalf("seed accounts: %v", err)
	}

	contacts := []models.Contact{
		{
			ID:        uuid.MustParse("7a1e2b3c-11d4-4e5f-8a6b-9c0d1e2f3a03"),
			FirstName: "Jordan",
			LastName:  "Lee",
			Title:     "VP Operations",
			Email:     "jordan.lee@acme.example.com",
			Phone:     "+13125550142",
			Source:    "REFERRAL",
			Status:    "ACTIVE",
			Owner:     "Dana Rio",
			AccountID: &acme.ID,
			CreatedBy: seededBy,
			UpdatedBy: seededBy,
		},
		{
			ID:        uuid.MustParse("9c8b7a6d-22e5-4f60-9b7c-0d1e2f3a4b04"),
			FirstName: "Sam",
			LastName:  "Okafor",
			Title:     "CTO",
			Email:     "sam.okafor@globex.example.com",
			Source:    "EVENT",
			Status:    "ACTIVE",
			Owner:     "Morgan Price",
			AccountID: &globex.ID,
			CreatedBy: seededBy,
			UpdatedBy: seededBy,
		},
	}
	if err := upsert(gdb, &contacts); err != nil {
		log.Fatalf("seed contacts: %v", err)
	}

	closing := now.AddDate(0, 2, 0)
	deals := []models.ActiveDeal{
		{
			ID:           uuid.MustParse("1f2e3d4c-33f6-4a71-8c8d-1e2f3a4b5c05"),
			DealName:     "Acme plant automation",
			Owner:        "Dana Rio",
			BusinessLine: "PRODUCT_SALES",
			ClosingDate:  &closing,
			Probability:  60,
			DealValue:    180000,
			Stage:        "PROPOSAL",
			Geo:          "NORTH_AMERICA",
			Entity:       "US_INC",
			AccountID:    &acme.ID,
			ContactID:    &contacts[0].ID,
			CreatedBy:    seededBy,
			UpdatedBy:    seededBy,
		},
		{
			ID:           uuid.MustParse("2a3b4c5d-44a7-4b82-9d9e-2f3a4b5c6d06"),
			DealName:     "Globex platform support renewal",
			Owner:        "Morgan Price",
			BusinessLine: "SUPPORT_RENEWAL",
			Probability:  30,
			DealValue:    42000,
			Stage:        "QUALIFICATION",
			Geo:          "EMEA",
			Entity:       "EU_GMBH",
			AccountID:    &globex.ID,
			ContactID:    &contacts[1].ID,
			CreatedBy:    seededBy,
			UpdatedBy:    seededBy,
		},
	}
	if err := upsert(gdb, &deals); err != nil {
		log.Fatalf("seed deals: %v", err)
	}

	leads := []models.Lead{
		{
			ID:         uuid.MustParse("3c4d5e6f-55b8-4c93-8eaf-3a4b5c6d7e07"),
			FirstName:  "Priya",
			LastName:   "Natarajan",
			Company:    "Initech",
			Title:      "Head of Procurement",
			Email:      "priya@initech.example.com",
			LeadSource: "WEB",
			Status:     "NEW",
			Rating:     "WARM",
			Owner:      "Dana Rio",
			CreatedBy:  seededBy,
			UpdatedBy:  seededBy,
		},
		{
			ID:         uuid.MustParse("4d5e6f70-66c9-4da4-9fb0-4b5c6d7e8f08"),
			FirstName:  "Luis",
			LastName:   "Herrera",
			Company:    "Umbrella Logistics",
			Email:      "luis@umbrella.example.com",
			LeadSource: "COLD_CALL",
			Status:     "CONTACTED",
			Rating:     "COLD",
			Owner:      "Morgan Price",
			CreatedBy:  seededBy,
			UpdatedBy:  seededBy,
		},
	}
	if err := upsert(gdb, &leads); err != nil {
		log.Fatalf("seed leads: %v", err)
	}

	activities := []models.ActivityLog{
		{
			ID:                 uuid.MustParse("5e6f7081-77da-4eb5-80c1-5c6d7e8f9a09"),
			ActivityType:       "MEETING",
			OutcomeDisposition: "COMPLETED",
			DateTime:           now.AddDate(0, 0, -3),
			Notes:              "On-site walkthrough of the assembly line.",
			ContactID:          &contacts[0].ID,
			AccountID:          &acme.ID,
			CreatedBy:          seededBy,
			UpdatedBy:          seededBy,
		},
		{
			ID:           uuid.MustParse("6f708192-88eb-4fc6-91d2-6d7e8f9a0b0a"),
			ActivityType: "CALL",
			DateTime:     now.AddDate(0, 0, -1),
			Notes:        "Renewal pricing discussion, follow-up scheduled.",
			ContactID:    &contacts[1].ID,
			AccountID:    &globex.ID,
			CreatedBy:    seededBy,
			UpdatedBy:    seededBy,
		},
	}
	if err := upsert(gdb, &activities); err != nil {
		log.Fatalf("seed activities: %v", err)
	}

	profile := models.UserProfile{
		ID:                 uuid.MustParse("708192a3-99fc-4ad7-a2e3-7e8f9a0b1c0b"),
		Name:               "Dana Rio",
		Email:              "dana@example.com",
		Title:              "Account Executive",
		Department:         "Sales",
		Role:               "SALES_REP",
		Timezone:           "America/Chicago",
		Language:           "en",
		EmailNotifications: true,
		WeeklyDigest:       true,
		CreatedBy:          seededBy,
		UpdatedBy:          seededBy,
	}
	if err := upsert(gdb, &profile); err != nil {
		log.Fatalf("seed profile: %v", err)
	}

	log.Println("seed completed")
}

// upsert inserts records with fixed ids and leaves existing rows alone, so
// the command can run repeatedly.
func upsert(gdb *gorm.DB, values ...interface{}) error {
	for _, v := range values {
		if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(v).Error; err != nil {
			return err
		}
	}
	return nil
}
