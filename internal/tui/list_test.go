package tui

import (
	"testing"
	"time"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		got := relativeTime(tt.t, now)
		if got != tt.want {
			t.Errorf("relativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}

func TestRelativeTimeOld(t *testing.T) {
	old := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := relativeTime(old, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if got != "Jun 15" {
		t.Errorf("relativeTime(old date) = %q, want %q", got, "Jun 15")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		n, cursor, height  int
		wantStart, wantEnd int
	}{
		{10, 0, 15, 0, 3},
		{10, 4, 15, 2, 5},
		{10, 9, 15, 7, 10},
		{2, 0, 15, 0, 2},
		{5, 0, 1, 0, 1},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.n, tt.cursor, tt.height, 5)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("visibleRange(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tt.n, tt.cursor, tt.height, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps", 10)
	want := "the quick\nbrown fox\njumps"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if wrapText("   ", 10) != "" {
		t.Error("blank input should wrap to nothing")
	}
}
