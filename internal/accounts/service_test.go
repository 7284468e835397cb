package accounts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type fakeRepo struct {
	items map[uuid.UUID]models.Account
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]models.Account)}
}

func (f *fakeRepo) List(ctx context.Context, search string, limit, offset int) ([]models.Account, int64, error) {
	out := make([]models.Account, 0, len(f.items))
	for _, item := range f.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.AccountName), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(item.Industry), strings.ToLower(search)) {
			continue
		}
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	item, ok := f.items[id]
	if !ok {
		return models.Account{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeRepo) Create(ctx context.Context, item *models.Account) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Account, error) {
	item, ok := f.items[id]
	if !ok {
		return models.Account{}, gorm.ErrRecordNotFound
	}
	if v, ok := updates["account_name"].(string); ok {
		item.AccountName = v
	}
	if v, ok := updates["status"].(string); ok {
		item.Status = v
	}
	if v, ok := updates["employee_count"].(string); ok {
		item.EmployeeCount = v
	}
	if v, ok := updates["updated_by"].(string); ok {
		item.UpdatedBy = v
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func TestCreateCanonicalizesEnums(t *testing.T) {
	svc := NewService(newFakeRepo())
	item, err := svc.Create(context.Background(), CreateRequest{
		AccountName:   "Acme",
		Industry:      "Technology",
		AccountRating: "Hot",
		EmployeeCount: "1-10",
		Status:        "Active",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.AccountRating != "HOT" {
		t.Fatalf("unexpected rating %q", item.AccountRating)
	}
	if item.EmployeeCount != "EMP_1_10" {
		t.Fatalf("unexpected employee count %q", item.EmployeeCount)
	}
	if item.Status != "ACTIVE" {
		t.Fatalf("unexpected status %q", item.Status)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Create(context.Background(), CreateRequest{
		AccountName: "Acme",
		Industry:    "Technology",
		Status:      "Dormant",
	})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestCreateStampsActor(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := auth.WithActor(context.Background(), auth.Actor{Name: "Jordan Lee", Email: "jordan@example.com"})
	item, err := svc.Create(ctx, CreateRequest{AccountName: "Acme", Industry: "Technology"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.CreatedBy != "jordan@example.com" || item.UpdatedBy != "jordan@example.com" {
		t.Fatalf("expected actor stamp, got createdBy=%q updatedBy=%q", item.CreatedBy, item.UpdatedBy)
	}
}

func TestUpdatePartialLeavesOtherFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), CreateRequest{
		AccountName: "Acme",
		Industry:    "Technology",
		Status:      "Prospect",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	status := "active"
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != "ACTIVE" {
		t.Fatalf("unexpected status %q", updated.Status)
	}
	if updated.AccountName != "Acme" {
		t.Fatalf("accountName changed unexpectedly: %q", updated.AccountName)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	name := "Acme"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateRequest{AccountName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResponseRendersDisplayForms(t *testing.T) {
	resp := NewResponse(models.Account{
		AccountName:   "Acme",
		AccountRating: "HOT",
		EmployeeCount: "EMP_1_10",
		Status:        "ACTIVE",
	})
	if resp.AccountRating != "Hot" {
		t.Fatalf("unexpected rating %q", resp.AccountRating)
	}
	if resp.EmployeeCount != "1-10" {
		t.Fatalf("unexpected employee count %q", resp.EmployeeCount)
	}
	if resp.Status != "Active" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}
