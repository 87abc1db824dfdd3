package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "load rose theme", themeName: "rose", wantName: "rose"},
		{name: "case insensitive", themeName: "LATTE", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("got theme %q, want %q", theme.Name, tt.wantName)
			}
			if theme.Bg == "" || theme.Fg == "" || theme.Marker == "" || theme.Today == "" {
				t.Errorf("theme %q has empty core colors: %+v", theme.Name, theme)
			}
		})
	}
}

func TestAvailableThemesLoad(t *testing.T) {
	for _, name := range Available() {
		if !IsAvailable(name) {
			t.Errorf("%s should be available", name)
		}
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("loading %s: %v", name, err)
		}
		if theme.Name != name {
			t.Errorf("embedded file for %s declares name %q", name, theme.Name)
		}
	}
	if IsAvailable("nope") {
		t.Error("nope should not be available")
	}
}

func TestApplyDefaults(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff00ff"}
	th.applyDefaults()
	if th.Marker != "#ff00ff" || th.Today != "#ff00ff" || th.BgSelection != "#ff00ff" {
		t.Errorf("accent fallbacks not applied: %+v", th)
	}
	if th.FgMuted != "#ffffff" || th.BgHighlight != "#000000" {
		t.Errorf("base fallbacks not applied: %+v", th)
	}
}
