package config

import (
	"testing"
	"time"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Fatalf("GetString existing key: got %q", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetString missing key: got %q", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "" {
		t.Fatalf("GetString empty value should win over fallback: got %q", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Fatalf("GetString nil config: got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	if got := GetInt(c, "TIMEOUT", 180); got != 30 {
		t.Fatalf("GetInt existing key: got %d", got)
	}
	if got := GetInt(c, "BAD", 180); got != 180 {
		t.Fatalf("GetInt unparseable value: got %d", got)
	}
	if got := GetInt(c, "MISSING", 180); got != 180 {
		t.Fatalf("GetInt missing key: got %d", got)
	}
}

func TestGetMinutes(t *testing.T) {
	c := map[string]string{"TOKEN_TTL_MINUTES": "90", "BAD": "soon"}

	if got := GetMinutes(c, "TOKEN_TTL_MINUTES", time.Hour); got != 90*time.Minute {
		t.Fatalf("GetMinutes existing key: got %v", got)
	}
	if got := GetMinutes(c, "BAD", time.Hour); got != time.Hour {
		t.Fatalf("GetMinutes unparseable value: got %v", got)
	}
	if got := GetMinutes(nil, "TOKEN_TTL_MINUTES", time.Hour); got != time.Hour {
		t.Fatalf("GetMinutes nil config: got %v", got)
	}
}
