package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	if theme.Secondary == nil || theme.Success == nil || theme.Muted == nil {
		t.Errorf("DefaultTheme() has a nil color: %+v", theme)
	}
}

func TestIsAccessible(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("ACCESSIBLE", "")
	if IsAccessible() {
		t.Error("IsAccessible() = true with no env set")
	}
	t.Setenv("ACCESSIBLE", "1")
	if !IsAccessible() {
		t.Error("IsAccessible() = false with ACCESSIBLE=1")
	}
}

func TestSectionBannerContainsTitle(t *testing.T) {
	theme := DefaultTheme()
	if got := theme.SectionBanner("dict.go"); !strings.Contains(got, "dict.go") {
		t.Errorf("SectionBanner() = %q, want it to contain the title", got)
	}
}

func TestNewViewer(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("dict.go", "5 bytes", "package fix44\n", &theme)
	if v.title != "dict.go" {
		t.Errorf("viewer title = %q, want %q", v.title, "dict.go")
	}
	if v.ready {
		t.Error("viewer should not be ready before it is sized")
	}
}

func TestViewerSetSize(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("dict.go", "", strings.Repeat("0x00, ", 500), &theme)
	v.SetSize(80, 24)
	if !v.ready {
		t.Fatal("viewer should be ready after SetSize")
	}
	if got := v.viewport.Height(); got != 24-viewerHeaderLines-viewerFooterLines {
		t.Errorf("viewport height = %d, want %d", got, 24-viewerHeaderLines-viewerFooterLines)
	}

	v.SetSize(100, 40)
	if got := v.viewport.Height(); got != 40-viewerHeaderLines-viewerFooterLines {
		t.Errorf("viewport height after resize = %d", got)
	}
}

func TestViewerWindowSizeMsg(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("dict.go", "", "content", &theme)
	model, _ := v.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !model.(*ViewerModel).ready {
		t.Error("viewer should be ready after a WindowSizeMsg")
	}
}

func TestViewerQuitKey(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("dict.go", "", "content", &theme)
	v.SetSize(80, 24)

	_, cmd := v.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a quit command after pressing q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the preview")
	}
}

func TestViewerCopyKey(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("Copy Test", "", "clipboard content", &theme)
	v.SetSize(80, 24)

	msg := tea.KeyPressMsg{Code: 'y', Text: "y"}
	model, cmd := v.Update(msg)
	viewer := model.(*ViewerModel)
	if !viewer.copied {
		t.Error("copied should be true after pressing y")
	}
	if cmd == nil {
		t.Error("expected a command (clipboard + tick) after pressing y")
	}

	model, _ = viewer.Update(viewerCopiedMsg{})
	viewer = model.(*ViewerModel)
	if viewer.copied {
		t.Error("copied should be false after viewerCopiedMsg")
	}
}

func TestViewerViewShowsSummary(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("dict.go", "go target, 5 bytes", "package fix44", &theme)
	v.SetSize(80, 24)
	view := v.View()
	if !view.AltScreen {
		t.Error("preview should use the alternate screen")
	}
	if !strings.Contains(view.Content, "go target, 5 bytes") {
		t.Errorf("view should contain the summary line:\n%s", view.Content)
	}
}

func TestRenderScrollbar(t *testing.T) {
	theme := DefaultTheme()
	if got := renderScrollbar(10, 5, 10, 0, &theme); got != "" {
		t.Errorf("content that fits should have no scrollbar, got %q", got)
	}
	bar := renderScrollbar(10, 100, 10, 0.5, &theme)
	if lines := strings.Count(bar, "\n") + 1; lines != 10 {
		t.Errorf("scrollbar has %d rows, want 10", lines)
	}
}
