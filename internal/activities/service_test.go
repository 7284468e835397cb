package activities

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/enums"
	"crm-backend/internal/models"
)

type fakeRepo struct {
	items map[uuid.UUID]models.ActivityLog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]models.ActivityLog)}
}

func (f *fakeRepo) List(ctx context.Context, search string, limit, offset int) ([]models.ActivityLog, int64, error) {
	out := make([]models.ActivityLog, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (models.ActivityLog, error) {
	item, ok := f.items[id]
	if !ok {
		return models.ActivityLog{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeRepo) Create(ctx context.Context, item *models.ActivityLog) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.ActivityLog, error) {
	item, ok := f.items[id]
	if !ok {
		return models.ActivityLog{}, gorm.ErrRecordNotFound
	}
	if v, ok := updates["activity_type"].(string); ok {
		item.ActivityType = v
	}
	if v, ok := updates["outcome_disposition"].(string); ok {
		item.OutcomeDisposition = v
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

func newTestService() *Service {
	return NewService(newFakeRepo(), time.UTC)
}

func TestCreateRequiresActivityType(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(context.Background(), CreateRequest{})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected missing activityType error, got %v", err)
	}
}

func TestCreateCanonicalizesType(t *testing.T) {
	svc := newTestService()
	item, err := svc.Create(context.Background(), CreateRequest{
		ActivityType:       "Meeting",
		OutcomeDisposition: "Left Message",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.ActivityType != "MEETING" {
		t.Fatalf("unexpected type %q", item.ActivityType)
	}
	if item.OutcomeDisposition != "LEFT_MESSAGE" {
		t.Fatalf("unexpected outcome %q", item.OutcomeDisposition)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(context.Background(), CreateRequest{ActivityType: "Seance"})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestCreateDefaultsDateTime(t *testing.T) {
	svc := newTestService()
	before := time.Now().Add(-time.Minute)
	item, err := svc.Create(context.Background(), CreateRequest{ActivityType: "Call"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.DateTime.Before(before) {
		t.Fatalf("expected recent default dateTime, got %v", item.DateTime)
	}
}

func TestCreateParsesDateTime(t *testing.T) {
	svc := newTestService()
	item, err := svc.Create(context.Background(), CreateRequest{
		ActivityType: "Call",
		DateTime:     "2024-05-01T09:30:00Z",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.DateTime.Hour() != 9 || item.DateTime.Minute() != 30 {
		t.Fatalf("unexpected dateTime %v", item.DateTime)
	}
}

func TestUpdateCannotClearActivityType(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)
	created, err := svc.Create(context.Background(), CreateRequest{ActivityType: "Call"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	empty := ""
	_, err = svc.Update(context.Background(), created.ID, UpdateRequest{ActivityType: &empty})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected missing activityType error, got %v", err)
	}
}

func TestResponseRendersDisplayForms(t *testing.T) {
	resp := NewResponse(models.ActivityLog{
		ActivityType:       "CALL",
		OutcomeDisposition: "NO_ANSWER",
	})
	if resp.ActivityType != "Call" {
		t.Fatalf("unexpected type %q", resp.ActivityType)
	}
	if resp.OutcomeDisposition != "No Answer" {
		t.Fatalf("unexpected outcome %q", resp.OutcomeDisposition)
	}
}
