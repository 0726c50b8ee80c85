package ui

import (
	"testing"

	"github.com/five82/roster/internal/state"
)

func TestThemeNamesAndCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestStatusColor(t *testing.T) {
	th := GetTheme("Nightfox")
	cases := []struct {
		status state.FetchStatus
		want   string
	}{
		{state.Idle, th.Muted},
		{state.Loading, th.Info},
		{state.Succeeded, th.Success},
		{state.Failed, th.Danger},
	}
	for _, tc := range cases {
		if got := th.StatusColor(tc.status); got != tc.want {
			t.Fatalf("StatusColor(%s) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
