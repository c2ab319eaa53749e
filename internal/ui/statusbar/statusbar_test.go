package statusbar

import (
	"strings"
	"testing"

	"github.com/riordanpawley/salesboard/internal/types"
	"github.com/riordanpawley/salesboard/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, 160, style)

	result := sb.Render()

	// Should contain mode badge
	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}

	// Should contain normal mode hints
	if !strings.Contains(result, "n: new") {
		t.Errorf("Expected status bar to contain create hint, got: %s", result)
	}
	if !strings.Contains(result, "d: delete") {
		t.Errorf("Expected status bar to contain delete hint, got: %s", result)
	}
	if !strings.Contains(result, "Space: status") {
		t.Errorf("Expected status bar to contain status hint, got: %s", result)
	}
}

func TestStatusBar_RenderSearchMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeSearch, 160, style)

	result := sb.Render()

	if !strings.Contains(result, "SEARCH") {
		t.Errorf("Expected status bar to contain 'SEARCH', got: %s", result)
	}
	if !strings.Contains(result, "Type to search") {
		t.Errorf("Expected status bar to contain search hint, got: %s", result)
	}
}

func TestStatusBar_RenderFormMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeForm, 160, style)

	result := sb.Render()

	if !strings.Contains(result, "FORM") {
		t.Errorf("Expected status bar to contain 'FORM', got: %s", result)
	}
	if !strings.Contains(result, "Ctrl+S: save") {
		t.Errorf("Expected status bar to contain save hint, got: %s", result)
	}
}

func TestStatusBar_WithInfo(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, 200, style).WithInfo("12 tasks · roi ↓")

	result := sb.Render()

	if !strings.Contains(result, "12 tasks") {
		t.Errorf("Expected status bar to contain info segment, got: %s", result)
	}
	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to keep mode badge, got: %s", result)
	}
}

func TestStatusBar_FillsWidth(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, 100, style)

	if sb.Render() == "" {
		t.Error("Expected non-empty status bar")
	}
}

func TestGetHints_AllModes(t *testing.T) {
	tests := []struct {
		mode     types.Mode
		expected string
	}{
		{types.ModeNormal, "n: new  e: edit  d: delete  Space: status  s: sort  ?: help  q: quit"},
		{types.ModeSearch, "Type to search  Enter: confirm  Esc: clear"},
		{types.ModeForm, "Tab: next field  Ctrl+S: save  Esc: cancel"},
		{types.Mode(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := GetHints(tt.mode)
			if result != tt.expected {
				t.Errorf("GetHints(%v) = %q, want %q", tt.mode, result, tt.expected)
			}
		})
	}
}
