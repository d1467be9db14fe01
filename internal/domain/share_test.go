package domain

import (
	"strings"
	"testing"
)

func TestBuildShareURL(t *testing.T) {
	t.Parallel()

	order := Order{ID: "order_Abc123", ProductName: "Nothing"}
	const base = "https://nothing.example.com"

	tests := []struct {
		name     string
		platform Platform
		wantHost string
	}{
		{"facebook", PlatformFacebook, "facebook.com"},
		{"twitter", PlatformTwitter, "twitter.com"},
		{"linkedin", PlatformLinkedIn, "linkedin.com"},
		{"whatsapp", PlatformWhatsApp, "wa.me"},
		{"instagram", PlatformInstagram, "instagram.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuildShareURL(base, tt.platform, order)
			if got == "" {
				t.Fatalf("expected non-empty url")
			}
			if !strings.Contains(got, tt.wantHost) {
				t.Fatalf("expected url to contain %q, got %q", tt.wantHost, got)
			}
			if !strings.Contains(got, "order_Abc123") {
				t.Fatalf("expected url to reference the order, got %q", got)
			}
		})
	}
}

func TestBuildShareURL_UnknownPlatformFallsBackToFacebook(t *testing.T) {
	t.Parallel()

	order := Order{ID: "order_Abc123", ProductName: "Nothing"}
	const base = "https://nothing.example.com"

	want := BuildShareURL(base, PlatformFacebook, order)
	got := BuildShareURL(base, Platform("myspace"), order)
	if got != want {
		t.Fatalf("expected fallback to facebook url %q, got %q", want, got)
	}
}

func TestBuildShareURL_BadBaseURLReturnsEmpty(t *testing.T) {
	t.Parallel()

	order := Order{ID: "order_Abc123", ProductName: "Nothing"}

	for _, base := range []string{"", "://broken", "not-a-url", "/relative/only"} {
		if got := BuildShareURL(base, PlatformFacebook, order); got != "" {
			t.Fatalf("expected empty url for base %q, got %q", base, got)
		}
	}
}
