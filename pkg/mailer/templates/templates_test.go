package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/job-portal-api/config"
)

func TestRenderAllTemplates(t *testing.T) {
	cfg := &config.Config{AppName: "Jobs", PortalURL: "http://portal.test"}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cases := map[string]map[string]any{
		Welcome:             NewWelcomeData(cfg, "Rita", "rita@x.com", "Recruiter"),
		ApplicationReceived: NewApplicationReceivedData(cfg, "Rita", "rita@x.com", "Sam", "Go Developer", "Acme", at),
		ApplicationStatus:   NewApplicationStatusData(cfg, "Sam", "sam@x.com", "Go Developer", "Acme", "rejected", at),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			subject, text, html, err := Render(name, data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if subject == "" || text == "" || !strings.Contains(html, "http://portal.test") {
				t.Fatalf("incomplete render: subject=%q text=%q", subject, text)
			}
		})
	}
}

func TestDefaultFn(t *testing.T) {
	if got := defaultFn("x", "  "); got != "x" {
		t.Errorf("blank string: %v", got)
	}
	if got := defaultFn("x", 0); got != "x" {
		t.Errorf("zero int: %v", got)
	}
	if got := defaultFn("x", "y"); got != "y" {
		t.Errorf("set string: %v", got)
	}
}

func TestTitleFn(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"accepted": "Accepted",
		"élan":     "Élan",
		"ñandú":    "Ñandú",
		"1st":      "1st",
	}
	for in, want := range tests {
		if got := titleFn(in); got != want {
			t.Errorf("titleFn(%q) = %q, want %q", in, got, want)
		}
	}
}
