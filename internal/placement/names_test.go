package placement

import (
	"strings"
	"testing"

	"samplesort/internal/textutil"
)

func never(string) bool { return false }

func TestDisambiguatorIsStable(t *testing.T) {
	a := Disambiguator("Kick.wav")
	if a != Disambiguator("Kick.wav") {
		t.Fatal("disambiguator must be deterministic")
	}
	if len(a) != DisambiguatorLength {
		t.Fatalf("len = %d, want %d", len(a), DisambiguatorLength)
	}
	if a == Disambiguator("kick.wav") {
		t.Fatal("different names should disambiguate differently")
	}
}

func TestResolveName(t *testing.T) {
	digest := Disambiguator("Kick.wav")
	tests := []struct {
		name      string
		candidate string
		allowed   int
		taken     map[string]bool
		want      string
	}{
		{name: "free", candidate: "Kick.wav", allowed: 100, want: "Kick.wav"},
		{name: "taken", candidate: "Kick.wav", allowed: 100, taken: map[string]bool{"Kick.wav": true}, want: "Kick_" + digest + ".wav"},
		{name: "tight", candidate: "Kick.wav", allowed: 13, taken: map[string]bool{"Kick.wav": true}, want: "K_" + digest + ".wav"},
		{name: "digest only", candidate: "Kick.wav", allowed: 11, taken: map[string]bool{"Kick.wav": true}, want: digest + ".wav"},
		{name: "no room for extension", candidate: "Kick.wav", allowed: 3, want: digest[:3]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveName(tt.candidate, "Kick.wav", tt.allowed, func(n string) bool { return tt.taken[n] })
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("ResolveName = %q, want %q", got, tt.want)
			}
			if textutil.Len(got) > tt.allowed {
				t.Fatalf("%q exceeds %d characters", got, tt.allowed)
			}
		})
	}
}

func TestResolveNameShorterPrefixesOnRepeatCollision(t *testing.T) {
	digest := Disambiguator("Kick.wav")
	taken := map[string]bool{"Kick.wav": true, "Kick_" + digest + ".wav": true}
	got, err := ResolveName("Kick.wav", "Kick.wav", 100, func(n string) bool { return taken[n] })
	if err != nil {
		t.Fatal(err)
	}
	if got != "Kic_"+digest+".wav" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveNameFallsBackToCounter(t *testing.T) {
	got, err := ResolveName("Kick.wav", "Kick.wav", 100, func(n string) bool {
		return !strings.HasPrefix(n, Disambiguator("Kick.wav")+"1")
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != Disambiguator("Kick.wav")+"1.wav" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveNameEmptyBaseIsDisambiguated(t *testing.T) {
	got, err := ResolveName(".wav", ".wav", 100, never)
	if err != nil {
		t.Fatal(err)
	}
	if got != Disambiguator(".wav")+".wav" {
		t.Fatalf("got %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, value := range []string{"move", "Copy", " symlink "} {
		if _, err := ParseMode(value); err != nil {
			t.Fatalf("ParseMode(%q): %v", value, err)
		}
	}
	if mode, _ := ParseMode(""); mode != DefaultMode {
		t.Fatalf("empty mode = %s, want %s", mode, DefaultMode)
	}
}
