package reports

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/auth"
	"crm-backend/internal/enums"
)

// Counter reports the total number of records for one entity.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Counters struct {
	Accounts   Counter
	Contacts   Counter
	Deals      Counter
	Leads      Counter
	Activities Counter
}

type Service struct {
	counters Counters
}

func NewService(counters Counters) *Service {
	return &Service{counters: counters}
}

// Generate runs the entity counts as independent queries. The totals are
// not a transactional snapshot.
func (s *Service) Generate(ctx context.Context, req Request) (Report, error) {
	geo, err := enums.Geos.Canonical(req.Geo)
	if err != nil {
		return Report{}, err
	}
	businessLine, err := enums.BusinessLines.Canonical(req.BusinessLine)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:           uuid.New(),
		ReportType:   strings.TrimSpace(req.ReportType),
		Period:       strings.TrimSpace(req.Period),
		SalesRep:     strings.TrimSpace(req.SalesRep),
		Geo:          enums.Geos.Display(geo),
		BusinessLine: enums.BusinessLines.Display(businessLine),
		GeneratedAt:  time.Now().UTC(),
		GeneratedBy:  auth.ActorFromContext(ctx).Stamp(),
	}
	if report.ReportType == "" {
		report.ReportType = "summary"
	}

	if report.Metrics.Accounts, err = s.counters.Accounts.Count(ctx); err != nil {
		return Report{}, err
	}
	if report.Metrics.Contacts, err = s.counters.Contacts.Count(ctx); err != nil {
		return Report{}, err
	}
	if report.Metrics.ActiveDeals, err = s.counters.Deals.Count(ctx); err != nil {
		return Report{}, err
	}
	if report.Metrics.Leads, err = s.counters.Leads.Count(ctx); err != nil {
		return Report{}, err
	}
	if report.Metrics.ActivityLogs, err = s.counters.Activities.Count(ctx); err != nil {
		return Report{}, err
	}

	return report, nil
}
