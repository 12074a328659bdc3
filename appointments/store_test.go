package appointments

import "testing"

func TestNormalizeDateField(t *testing.T) {
	got, err := NormalizeDateField("2025-06-15 10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-06-15 10:30" {
		t.Errorf("expected canonical form unchanged, got %q", got)
	}

	// Date-only input is padded to midnight
	got, err = NormalizeDateField("2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-06-15 00:00" {
		t.Errorf("expected midnight padding, got %q", got)
	}
}

func TestNormalizeDateFieldRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "tomorrow", "15.06.2025 10:30"} {
		if _, err := NormalizeDateField(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}
