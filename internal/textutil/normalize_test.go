package textutil

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amen Break", "Amen_Break"},
		{"  --lead..synth__01 ", "lead_synth_01"},
		{"already_clean", "already_clean"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"___", ""},
	}
	for _, tt := range tests {
		if got := Collapse(tt.in); got != tt.want {
			t.Errorf("Collapse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDropFiller(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The_Dusty_Loop_v2", "Dusty"},
		{"Splice_Pack_Vol_3_Kick", "3_Kick"},
		{"Warm_Sample_Mix_Take_4", "Warm_4"},
		{"loop_sample", "loop_sample"},
		{"VERSION3_Snare", "Snare"},
	}
	for _, tt := range tests {
		if got := DropFiller(tt.in); got != tt.want {
			t.Errorf("DropFiller(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMedialVowels(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amen_Break", "Amn_Brk"},
		{"Analog_Pad", "Anlg_Pd"},
		{"Ay", "Ay"},
		{"Yummy_Eerie", "Ymmy_Ere"},
		{"a_e", "a_e"},
	}
	for _, tt := range tests {
		if got := StripMedialVowels(tt.in); got != tt.want {
			t.Errorf("StripMedialVowels(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	if got := Truncate("héllo", 2); got != "hé" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("Truncate with zero limit = %q", got)
	}
	if got := Len("héllo"); got != 5 {
		t.Fatalf("Len = %d", got)
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Café Délà Ñu"); got != "Cafe Dela Nu" {
		t.Fatalf("Fold = %q", got)
	}
}
