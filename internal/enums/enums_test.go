package enums

import (
	"errors"
	"testing"
)

func TestCanonicalFromDisplay(t *testing.T) {
	got, err := DealStages.Canonical("Closed Won")
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got != "CLOSED_WON" {
		t.Fatalf("expected CLOSED_WON, got %q", got)
	}
}

func TestCanonicalFromCanonical(t *testing.T) {
	got, err := AccountStatuses.Canonical("ACTIVE")
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %q", got)
	}
}

func TestCanonicalCaseInsensitive(t *testing.T) {
	got, err := Ratings.Canonical("warm")
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got != "WARM" {
		t.Fatalf("expected WARM, got %q", got)
	}
}

func TestCanonicalUnknownRejected(t *testing.T) {
	_, err := AccountStatuses.Canonical("Frozen")
	if !errors.Is(err, ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestCanonicalEmptyPropagates(t *testing.T) {
	got, err := Geos.Canonical("  ")
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	sets := []*Set{
		AccountStatuses, Ratings, EmployeeBuckets, ContactSources, ContactStatuses,
		LeadSources, LeadStatuses, DealStages, Geos, LegalEntities, BusinessLines,
		ActivityTypes, Outcomes, UserRoles,
	}
	for _, s := range sets {
		for _, c := range s.Values() {
			back, err := s.Canonical(s.Display(c))
			if err != nil {
				t.Fatalf("%s: round trip of %q: %v", s.Field(), c, err)
			}
			if back != c {
				t.Fatalf("%s: round trip of %q gave %q", s.Field(), c, back)
			}
		}
	}
}

func TestDisplayOverrides(t *testing.T) {
	if got := EmployeeBuckets.Display("EMP_1_10"); got != "1-10" {
		t.Fatalf("expected 1-10, got %q", got)
	}
	got, err := EmployeeBuckets.Canonical("1-10")
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got != "EMP_1_10" {
		t.Fatalf("expected EMP_1_10, got %q", got)
	}
}

func TestDisplayUnknownPassesThrough(t *testing.T) {
	if got := DealStages.Display("LEGACY_STAGE"); got != "LEGACY_STAGE" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestDisplayMultiWord(t *testing.T) {
	if got := DealStages.Display("CLOSED_WON"); got != "Closed Won" {
		t.Fatalf("expected %q, got %q", "Closed Won", got)
	}
	if got := Geos.Display("NORTH_AMERICA"); got != "North America" {
		t.Fatalf("expected %q, got %q", "North America", got)
	}
}
