package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsLine(t *testing.T) {
	output := "first line\nsecond line\nthird"

	if !ContainsLine(output, "second") {
		t.Error("expected to find 'second'")
	}
	if ContainsLine(output, "fourth") {
		t.Error("did not expect to find 'fourth'")
	}
}

func TestFindLine(t *testing.T) {
	output := "alpha\nbeta gamma\ndelta"

	if got := FindLine(output, "gamma"); got != "beta gamma" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine for missing = %q", got)
	}
}

func TestExecuteCmd(t *testing.T) {
	if got := ExecuteCmd(nil); got != nil {
		t.Errorf("ExecuteCmd(nil) = %v", got)
	}

	cmd := func() tea.Msg { return "done" }
	if got := ExecuteCmd(cmd); got != "done" {
		t.Errorf("ExecuteCmd = %v, want done", got)
	}
}

func TestKeyMsg(t *testing.T) {
	if msg := KeyMsg("enter"); msg.Type != tea.KeyEnter {
		t.Errorf("enter type = %v", msg.Type)
	}
	if msg := KeyMsg("x"); msg.String() != "x" {
		t.Errorf("rune key = %q", msg.String())
	}
}
