package mailer

import (
	"strings"
	"testing"
)

func TestRenderReminderBody(t *testing.T) {
	body, err := RenderBody(TemplateReminder, map[string]string{
		"Name":         "Dana",
		"Appointments": "1. First Fitting - 2025-06-15 10:30\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "Hello Dana") {
		t.Errorf("body missing greeting: %q", body)
	}
	if !strings.Contains(body, "First Fitting - 2025-06-15 10:30") {
		t.Errorf("body missing appointment line: %q", body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := RenderBody("no-such-template", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
