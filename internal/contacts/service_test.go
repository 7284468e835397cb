package contacts

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type fakeRepo struct {
	items map[uuid.UUID]models.Contact
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]models.Contact)}
}

func (f *fakeRepo) List(ctx context.Context, search string, limit, offset int) ([]models.Contact, int64, error) {
	out := make([]models.Contact, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error) {
	item, ok := f.items[id]
	if !ok {
		return models.Contact{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeRepo) Create(ctx context.Context, item *models.Contact) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Contact, error) {
	item, ok := f.items[id]
	if !ok {
		return models.Contact{}, gorm.ErrRecordNotFound
	}
	if v, ok := updates["first_name"].(string); ok {
		item.FirstName = v
	}
	if v, ok := updates["last_name"].(string); ok {
		item.LastName = v
	}
	if v, ok := updates["email"].(string); ok {
		item.Email = v
	}
	if v, ok := updates["status"].(string); ok {
		item.Status = v
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

func TestCreateSplitsCombinedName(t *testing.T) {
	svc := NewService(newFakeRepo())
	item, err := svc.Create(context.Background(), CreateRequest{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.FirstName != "Jane" || item.LastName != "Doe" {
		t.Fatalf("unexpected name split %q %q", item.FirstName, item.LastName)
	}
}

func TestCreateExplicitNamesWin(t *testing.T) {
	svc := NewService(newFakeRepo())
	item, err := svc.Create(context.Background(), CreateRequest{
		FirstName: "Janet",
		LastName:  "Doerr",
		Name:      "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.FirstName != "Janet" || item.LastName != "Doerr" {
		t.Fatalf("expected explicit names, got %q %q", item.FirstName, item.LastName)
	}
}

func TestCreateEmailAddressAlias(t *testing.T) {
	svc := NewService(newFakeRepo())
	item, err := svc.Create(context.Background(), CreateRequest{
		Name:         "Jane Doe",
		EmailAddress: "jane@acme.test",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Email != "jane@acme.test" {
		t.Fatalf("unexpected email %q", item.Email)
	}
}

func TestCreateCanonicalizesEnums(t *testing.T) {
	svc := NewService(newFakeRepo())
	item, err := svc.Create(context.Background(), CreateRequest{
		Name:   "Jane Doe",
		Source: "Cold Call",
		Status: "Do Not Contact",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Source != "COLD_CALL" {
		t.Fatalf("unexpected source %q", item.Source)
	}
	if item.Status != "DO_NOT_CONTACT" {
		t.Fatalf("unexpected status %q", item.Status)
	}
}

func TestCreateRejectsUnknownSource(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Create(context.Background(), CreateRequest{Name: "Jane Doe", Source: "Carrier Pigeon"})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestCreateRejectsBadAccountID(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Create(context.Background(), CreateRequest{Name: "Jane Doe", AccountID: "not-a-uuid"})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestCreateStampsActor(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := auth.WithActor(context.Background(), auth.Actor{Name: "Rep One", Email: "rep@acme.test"})
	item, err := svc.Create(ctx, CreateRequest{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.CreatedBy != "rep@acme.test" || item.UpdatedBy != "rep@acme.test" {
		t.Fatalf("unexpected audit fields %q %q", item.CreatedBy, item.UpdatedBy)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	name := "Jane"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateRequest{FirstName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSplitsNameWhenOnlyNameGiven(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), CreateRequest{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "John Smith"
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.FirstName != "John" || updated.LastName != "Smith" {
		t.Fatalf("unexpected names %q %q", updated.FirstName, updated.LastName)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
