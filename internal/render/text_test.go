package render

import (
	"strings"
	"testing"
	"time"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "Hello World", "Hello World"},
		{"tab preserved", "a\tb", "a\tb"},
		{"newline removed", "line1\nline2", "line1line2"},
		{"escape removed", "\x1b[31mred", "[31mred"},
		{"delete removed", "a\x7fb", "ab"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"unicode kept", "日本語 ♪", "日本語 ♪"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
		{"wide characters", "日本語です", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hi", 5, "hi   "},
		{"hello world", 8, "hello..."},
		{"日本", 6, "日本  "},
	}
	for _, tt := range tests {
		if got := TruncateAndPad(tt.input, tt.width); got != tt.want {
			t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	got := Columns([]int{3, 6, 5}, "1", "Long title here", "Artist name")
	want := "1    Lon...  Ar..."
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}

	got = Columns([]int{2}, "ab", "extra")
	if got != "ab  extra" {
		t.Errorf("Columns() with unsized cell = %q, want %q", got, "ab  extra")
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(4); got != strings.Repeat("─", 4) {
		t.Errorf("Separator(4) = %q", got)
	}
	if got := Separator(0); got != "" {
		t.Errorf("Separator(0) = %q, want empty", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "--:--"},
		{-time.Second, "--:--"},
		{5 * time.Second, "0:05"},
		{3*time.Minute + 35*time.Second, "3:35"},
		{59*time.Minute + 59*time.Second + 600*time.Millisecond, "1:00:00"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2:03:04"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
