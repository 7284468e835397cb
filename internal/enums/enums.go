// Package enums defines the closed categorical vocabularies used by CRM
// records. Values are stored in canonical UPPER_SNAKE form and presented in a
// human-readable display form ("ACTIVE_DEAL" <-> "Active Deal"). Unknown
// values are rejected at the boundary rather than passed through.
package enums

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownValue = errors.New("unknown value")

// Set is one categorical field's vocabulary with a total bidirectional
// canonical/display mapping.
type Set struct {
	field     string
	order     []string
	display   map[string]string
	canonical map[string]string
}

func newSet(field string, canonicals []string, overrides map[string]string) *Set {
	s := &Set{
		field:     field,
		order:     canonicals,
		display:   make(map[string]string, len(canonicals)),
		canonical: make(map[string]string, len(canonicals)*2),
	}
	for _, c := range canonicals {
		d, ok := overrides[c]
		if !ok {
			d = displayOf(c)
		}
		s.display[c] = d
		s.canonical[normalize(c)] = c
		s.canonical[normalize(d)] = c
	}
	return s
}

// Canonical resolves input given in either display or canonical form,
// case-insensitively. Empty input stays empty.
func (s *Set) Canonical(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if c, ok := s.canonical[normalize(input)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%s: %w %q", s.field, ErrUnknownValue, input)
}

// Display converts a stored canonical value to its display form. Values
// outside the set (legacy rows) are returned unchanged.
func (s *Set) Display(canonical string) string {
	if canonical == "" {
		return ""
	}
	if d, ok := s.display[canonical]; ok {
		return d
	}
	return canonical
}

func (s *Set) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) Field() string {
	return s.field
}

func normalize(v string) string {
	fields := strings.Fields(strings.ReplaceAll(v, "_", " "))
	return strings.ToUpper(strings.Join(fields, "_"))
}

func displayOf(canonical string) string {
	parts := strings.Split(canonical, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

var sourceValues = []string{"WEB", "REFERRAL", "COLD_CALL", "EVENT", "PARTNER", "EMAIL_CAMPAIGN"}

var (
	AccountStatuses = newSet("status", []string{"ACTIVE", "INACTIVE", "PROSPECT", "CHURNED"}, nil)
	Ratings         = newSet("rating", []string{"HOT", "WARM", "COLD"}, nil)

	EmployeeBuckets = newSet("employeeCount",
		[]string{"EMP_1_10", "EMP_11_50", "EMP_51_200", "EMP_201_500", "EMP_500_PLUS"},
		map[string]string{
			"EMP_1_10":     "1-10",
			"EMP_11_50":    "11-50",
			"EMP_51_200":   "51-200",
			"EMP_201_500":  "201-500",
			"EMP_500_PLUS": "500+",
		})

	ContactSources  = newSet("source", sourceValues, nil)
	ContactStatuses = newSet("status", []string{"ACTIVE", "INACTIVE", "DO_NOT_CONTACT"}, nil)

	LeadSources  = newSet("leadSource", sourceValues, nil)
	LeadStatuses = newSet("status", []string{"NEW", "CONTACTED", "QUALIFIED", "CONVERTED", "LOST"}, nil)

	DealStages = newSet("stage", []string{
		"PROSPECTING", "QUALIFICATION", "PROPOSAL", "NEGOTIATION", "CLOSED_WON", "CLOSED_LOST",
	}, nil)

	Geos = newSet("geo", []string{"NORTH_AMERICA", "EMEA", "APAC", "LATAM"},
		map[string]string{"EMEA": "EMEA", "APAC": "APAC", "LATAM": "LATAM"})

	LegalEntities = newSet("entity", []string{"US_INC", "UK_LTD", "EU_GMBH", "APAC_PTE"},
		map[string]string{
			"US_INC":   "US Inc",
			"UK_LTD":   "UK Ltd",
			"EU_GMBH":  "EU GmbH",
			"APAC_PTE": "APAC Pte",
		})

	BusinessLines = newSet("businessLine", []string{
		"PRODUCT_SALES", "PROFESSIONAL_SERVICES", "MANAGED_SERVICES", "SUPPORT_RENEWAL",
	}, nil)

	ActivityTypes = newSet("activityType", []string{"CALL", "EMAIL", "MEETING", "DEMO", "NOTE", "TASK"}, nil)
	Outcomes      = newSet("outcomeDisposition", []string{"COMPLETED", "NO_ANSWER", "LEFT_MESSAGE", "RESCHEDULED", "CANCELLED"}, nil)

	UserRoles = newSet("role", []string{"ADMIN", "MANAGER", "SALES_REP", "VIEWER"}, nil)
)
