package reports

import (
	"context"
	"errors"
	"testing"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
)

type fixedCounter int64

func (c fixedCounter) Count(ctx context.Context) (int64, error) {
	return int64(c), nil
}

type failingCounter struct{}

func (failingCounter) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("connection reset")
}

func newTestCounters() Counters {
	return Counters{
		Accounts:   fixedCounter(3),
		Contacts:   fixedCounter(7),
		Deals:      fixedCounter(2),
		Leads:      fixedCounter(5),
		Activities: fixedCounter(11),
	}
}

func TestGenerateCountsAllEntities(t *testing.T) {
	svc := NewService(newTestCounters())
	report, err := svc.Generate(context.Background(), Request{ReportType: "pipeline", Period: "2024-Q2"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	want := Metrics{Accounts: 3, Contacts: 7, ActiveDeals: 2, Leads: 5, ActivityLogs: 11}
	if report.Metrics != want {
		t.Fatalf("unexpected metrics: %+v", report.Metrics)
	}
	if report.ReportType != "pipeline" || report.Period != "2024-Q2" {
		t.Fatalf("unexpected echo: %+v", report)
	}
	if report.GeneratedAt.IsZero() {
		t.Fatalf("expected generatedAt to be set")
	}
}

func TestGenerateEchoesFiltersWithoutApplyingThem(t *testing.T) {
	svc := NewService(newTestCounters())
	report, err := svc.Generate(context.Background(), Request{
		SalesRep:     "Dana Rio",
		Geo:          "emea",
		BusinessLine: "Product Sales",
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if report.SalesRep != "Dana Rio" {
		t.Fatalf("unexpected salesRep %q", report.SalesRep)
	}
	if report.Geo != "EMEA" {
		t.Fatalf("unexpected geo %q", report.Geo)
	}
	if report.BusinessLine != "Product Sales" {
		t.Fatalf("unexpected businessLine %q", report.BusinessLine)
	}
	if report.Metrics.Accounts != 3 {
		t.Fatalf("filters must not change totals, got %+v", report.Metrics)
	}
}

func TestGenerateRejectsUnknownGeo(t *testing.T) {
	svc := NewService(newTestCounters())
	_, err := svc.Generate(context.Background(), Request{Geo: "Atlantis"})
	if !errors.Is(err, enums.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestGenerateDefaultsReportType(t *testing.T) {
	svc := NewService(newTestCounters())
	report, err := svc.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if report.ReportType != "summary" {
		t.Fatalf("unexpected default type %q", report.ReportType)
	}
}

func TestGenerateStampsActor(t *testing.T) {
	svc := NewService(newTestCounters())
	ctx := auth.WithActor(context.Background(), auth.Actor{Name: "Dana Rio", Email: "dana@example.com"})
	report, err := svc.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if report.GeneratedBy != "dana@example.com" {
		t.Fatalf("unexpected generatedBy %q", report.GeneratedBy)
	}
}

func TestGeneratePropagatesCountError(t *testing.T) {
	counters := newTestCounters()
	counters.Deals = failingCounter{}
	svc := NewService(counters)
	if _, err := svc.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error from failing counter")
	}
}
