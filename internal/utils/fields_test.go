package utils

import (
	"testing"
	"time"
)

func TestSplitNameTwoParts(t *testing.T) {
	first, last := SplitName("Jane Doe")
	if first != "Jane" || last != "Doe" {
		t.Fatalf("unexpected split %q %q", first, last)
	}
}

func TestSplitNameSingleWord(t *testing.T) {
	first, last := SplitName("Cher")
	if first != "Cher" || last != "" {
		t.Fatalf("unexpected split %q %q", first, last)
	}
}

func TestSplitNameMultiWordLast(t *testing.T) {
	first, last := SplitName("Ana de Armas")
	if first != "Ana" || last != "de Armas" {
		t.Fatalf("unexpected split %q %q", first, last)
	}
}

func TestSplitNameEmpty(t *testing.T) {
	first, last := SplitName("   ")
	if first != "" || last != "" {
		t.Fatalf("unexpected split %q %q", first, last)
	}
}

func TestParseDateDateOnly(t *testing.T) {
	got := ParseDate("2024-06-30", time.UTC)
	if got == nil {
		t.Fatalf("expected parsed date")
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 30 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got := ParseDate("2024-06-30T14:30:00Z", time.UTC)
	if got == nil {
		t.Fatalf("expected parsed timestamp")
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateInvalidIsAbsent(t *testing.T) {
	if got := ParseDate("2024-13-45", time.UTC); got != nil {
		t.Fatalf("expected nil for invalid date, got %v", got)
	}
	if got := ParseDate("not a date", time.UTC); got != nil {
		t.Fatalf("expected nil for garbage, got %v", got)
	}
}

func TestParseDateEmptyIsAbsent(t *testing.T) {
	if got := ParseDate("  ", time.UTC); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}
}
