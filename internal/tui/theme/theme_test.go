package theme

import "testing"

func TestLoad(t *testing.T) {
	t.Run("known themes", func(t *testing.T) {
		for _, name := range Names() {
			th, err := Load(name)
			if err != nil {
				t.Errorf("Load(%q) returned error: %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Load(%q) returned theme %q", name, th.Name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Errorf("theme %q has empty colors", name)
			}
		}
	})

	t.Run("empty defaults to mocha", func(t *testing.T) {
		th, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if th.Name != "mocha" {
			t.Errorf("got %q, want mocha", th.Name)
		}
	})

	t.Run("unknown falls back to mocha with error", func(t *testing.T) {
		th, err := Load("solarized")
		if err == nil {
			t.Error("expected a fallback error")
		}
		if th.Name != "mocha" {
			t.Errorf("got %q, want mocha fallback", th.Name)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		th, err := Load("LATTE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if th.Name != "latte" {
			t.Errorf("got %q, want latte", th.Name)
		}
	})
}
