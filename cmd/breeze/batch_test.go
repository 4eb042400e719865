package main

import "testing"

func TestUseProgressUIModes(t *testing.T) {
	cases := []struct {
		flag string
		want bool
	}{
		{"on", true},
		{"ON", true},
		{" off ", false},
	}
	for _, tc := range cases {
		got, err := useProgressUI(tc.flag)
		if err != nil {
			t.Fatalf("useProgressUI(%q) error: %v", tc.flag, err)
		}
		if got != tc.want {
			t.Fatalf("useProgressUI(%q) = %v, want %v", tc.flag, got, tc.want)
		}
	}
	if _, err := useProgressUI("fancy"); err == nil {
		t.Fatalf("unknown --ui mode must be rejected")
	}
}

func TestUseProgressUIAutoFollowsTerminal(t *testing.T) {
	// the test process has no TTY on stdout, so auto resolves to plain mode
	for _, flag := range []string{"", "auto"} {
		got, err := useProgressUI(flag)
		if err != nil {
			t.Fatalf("useProgressUI(%q) error: %v", flag, err)
		}
		if got {
			t.Fatalf("useProgressUI(%q) chose the TUI without a terminal", flag)
		}
	}
}
