package reports

import (
	"time"

	"github.com/google/uuid"
)

type Request struct {
	ReportType   string `json:"reportType"`
	Period       string `json:"period"`
	SalesRep     string `json:"salesRep"`
	Geo          string `json:"geo"`
	BusinessLine string `json:"businessLine"`
}

type Metrics struct {
	Accounts     int64 `json:"accounts"`
	Contacts     int64 `json:"contacts"`
	ActiveDeals  int64 `json:"activeDeals"`
	Leads        int64 `json:"leads"`
	ActivityLogs int64 `json:"activityLogs"`
}

// Report echoes the requested filters alongside unfiltered totals. The
// filters do not narrow the counts yet.
type Report struct {
	ID           uuid.UUID `json:"id"`
	ReportType   string    `json:"reportType"`
	Period       string    `json:"period"`
	SalesRep     string    `json:"salesRep,omitempty"`
	Geo          string    `json:"geo,omitempty"`
	BusinessLine string    `json:"businessLine,omitempty"`
	Metrics      Metrics   `json:"metrics"`
	GeneratedAt  time.Time `json:"generatedAt"`
	GeneratedBy  string    `json:"generatedBy"`
}
