package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantWidth     int
		wantTable     int
	}{
		{"narrow clamps up", 40, 30, MinViewportWidth, 18},
		{"wide clamps down", 300, 50, MaxViewportWidth, 38},
		{"unknown height", 100, 0, 100, DefaultHeight - chromeHeight},
		{"short terminal", 100, 10, 100, MinTableHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.width, tt.height)
			if l.ViewportWidth != tt.wantWidth {
				t.Errorf("ViewportWidth = %d, want %d", l.ViewportWidth, tt.wantWidth)
			}
			if l.InnerWidth != tt.wantWidth-BorderPadding {
				t.Errorf("InnerWidth = %d, want %d", l.InnerWidth, tt.wantWidth-BorderPadding)
			}
			if l.TableHeight != tt.wantTable {
				t.Errorf("TableHeight = %d, want %d", l.TableHeight, tt.wantTable)
			}
		})
	}
}

func TestCalculateColumns(t *testing.T) {
	cols := CalculateColumns(ManifestColumns(), 100)
	if len(cols) != 5 {
		t.Fatalf("got %d columns, want 5", len(cols))
	}
	// 100 - 5 - 22 - 15 = 58 split 55:45
	want := []int{ColWidthPin, 31, ColWidthWindow, ColWidthStatus, 26}
	for i, c := range cols {
		if c.Width != want[i] {
			t.Errorf("column %q width = %d, want %d", c.Title, c.Width, want[i])
		}
	}

	// tiny widths fall back to minimums
	for _, c := range CalculateColumns(ManifestColumns(), 10) {
		if c.Title == "Mission" && c.Width < 16 {
			t.Errorf("Mission width = %d, want >= 16", c.Width)
		}
	}
}

func TestHandleNavigationKeys(t *testing.T) {
	tests := []struct {
		key    string
		cursor int
		max    int
		want   int
	}{
		{"down", 0, 3, 1},
		{"j", 2, 3, 2},
		{"up", 1, 3, 0},
		{"k", 0, 3, 0},
		{"", 5, 3, 2},
		{"down", 0, 0, 0},
		{"x", 1, 3, 1},
	}
	for _, tt := range tests {
		if got := HandleNavigationKeys(tt.key, tt.cursor, tt.max); got != tt.want {
			t.Errorf("HandleNavigationKeys(%q, %d, %d) = %d, want %d", tt.key, tt.cursor, tt.max, got, tt.want)
		}
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"80", 80, false},
		{" 72.5% ", 72.5, false},
		{"100%", 100, false},
		{"", 0, true},
		{"%", 0, true},
		{"ready", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScore(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScore(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseScore(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadinessFraction(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{60, 0.6},
		{100, 1},
		{0, 0},
		{150, 1},
	}
	for _, tt := range tests {
		if got := ReadinessFraction(tt.score); got != tt.want {
			t.Errorf("ReadinessFraction(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestReadinessDelta(t *testing.T) {
	tests := map[string]int{"left": -1, "h": -1, "right": 1, "l": 1, "shift+left": -5, "H": -5, "shift+right": 5, "L": 5}
	for key, want := range tests {
		got, ok := readinessDelta(key)
		if !ok || got != want {
			t.Errorf("readinessDelta(%q) = %d, %v; want %d", key, got, ok, want)
		}
	}
	if _, ok := readinessDelta("up"); ok {
		t.Error("readinessDelta(up) should not match")
	}
}

func TestBuildTwoBoxViewWidth(t *testing.T) {
	layout := NewLayout(100, 30)
	view := BuildTwoBoxView("hello", "help", layout)
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w != layout.ViewportWidth {
			t.Errorf("line %d width = %d, want %d", i, w, layout.ViewportWidth)
		}
	}
}

func TestPageStateStatusExpires(t *testing.T) {
	p := NewPageState(DefaultLayout())
	p.SetStatus("Pinned Crew-12", time.Millisecond)
	if !p.HasStatus() {
		t.Fatal("HasStatus() = false right after SetStatus")
	}
	time.Sleep(5 * time.Millisecond)
	p.ClearExpiredStatus()
	if p.HasStatus() {
		t.Errorf("status %q should have expired", p.StatusMsg)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("Transporter-16 rideshare", 10); ansi.StringWidth(got) > 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncateToWidth() = %q", got)
	}
	if got := truncateToWidth("short", 10); got != "short" {
		t.Errorf("truncateToWidth(short) = %q", got)
	}
	if got := truncateToWidth("x", 0); got != "" {
		t.Errorf("truncateToWidth(x, 0) = %q", got)
	}
}
