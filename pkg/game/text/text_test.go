package text

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	if got := Get("SCORE"); got != "SCORE" {
		t.Errorf("Get(SCORE) = %q, want SCORE", got)
	}
	if got := Get("LEVEL_START", 3); got != "Level 3" {
		t.Errorf("Get(LEVEL_START, 3) = %q, want %q", got, "Level 3")
	}
	if got := Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Get(NOT_A_KEY) = %q, want the key back", got)
	}
}

func TestGet_ArgumentsAreNotFormats(t *testing.T) {
	tests := []struct {
		key  string
		args []interface{}
		want string
	}{
		{"SCREENSHOT_SAVED", nil, "Screenshot saved to %s"},
		{"SCREENSHOT_SAVED", []interface{}{"shot-100%d.png"}, "Screenshot saved to shot-100%d.png"},
		{"NOT_%s_A_KEY", nil, "NOT_%s_A_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Get(tt.key, tt.args...); got != tt.want {
				t.Errorf("Get(%q, %v) = %q, want %q", tt.key, tt.args, got, tt.want)
			}
		})
	}
}

func TestHelpPages(t *testing.T) {
	for n := 0; n < HelpPages; n++ {
		page := HelpPage(n)
		if page == "" || strings.HasPrefix(page, "HELP_PAGE_") {
			t.Errorf("HelpPage(%d) missing from catalogue", n)
		}
	}
	if HelpPage(HelpPages) != "" {
		t.Errorf("HelpPage(%d) = non-empty, want empty", HelpPages)
	}
}
