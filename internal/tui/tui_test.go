package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prenomnom/dux/internal/model"
)

func node(path, name string, kind model.Kind, size int64, children ...*model.ScanNode) *model.ScanNode {
	return &model.ScanNode{Path: path, Name: name, Kind: kind, SizeBytes: size, DiskUsage: size, Children: children}
}

func file(path, name string, size int64) *model.ScanNode {
	return node(path, name, model.File, size)
}

func dir(path, name string, children ...*model.ScanNode) *model.ScanNode {
	var total int64
	for _, c := range children {
		total += c.DiskUsage
	}
	return node(path, name, model.Directory, total, children...)
}

func sampleTree() *model.ScanNode {
	nm := dir("/root/project/node_modules", "node_modules", file("/root/project/node_modules/a.js", "a.js", 2048))
	project := dir("/root/project", "project", nm, file("/root/project/main.go", "main.go", 256))
	return dir("/root", "root", project)
}

func TestNodeItem_TitleMarksDirectories(t *testing.T) {
	d := dir("/a", "a")
	f := file("/b", "b", 10)

	if !strings.Contains(nodeItem{node: d}.Title(), "📁") {
		t.Error("directory title should carry the folder marker")
	}
	if !strings.Contains(nodeItem{node: f}.Title(), "📄") {
		t.Error("file title should carry the file marker")
	}
}

func TestNodeItem_TitleIncludesCategoryBadge(t *testing.T) {
	item := nodeItem{node: file("/a/.cache", ".cache", 10), category: model.Cache.String()}
	if !strings.Contains(item.Title(), "cache") {
		t.Errorf("expected category badge in title, got %q", item.Title())
	}
}

func TestNodeItem_Description(t *testing.T) {
	item := nodeItem{node: file("/a", "a", 1024*1024)}
	if !strings.Contains(item.Description(), "MB") {
		t.Errorf("expected formatted size in description, got %q", item.Description())
	}
}

func TestNodeItem_FilterValue(t *testing.T) {
	item := nodeItem{node: file("/a/b.txt", "b.txt", 1)}
	if item.FilterValue() != "b.txt" {
		t.Errorf("FilterValue() = %q, want %q", item.FilterValue(), "b.txt")
	}
}

func TestNewModel_BuildsListFromRootChildren(t *testing.T) {
	root := sampleTree()
	m := NewModel(root, model.InsightBundle{})

	if len(m.list.Items()) != 1 {
		t.Fatalf("expected 1 top-level child (project), got %d", len(m.list.Items()))
	}
	if m.current != root {
		t.Error("current should start at root")
	}
	if len(m.stack) != 0 {
		t.Error("stack should start empty")
	}
}

func TestNewModel_DecoratesCategoriesFromBundle(t *testing.T) {
	root := sampleTree()
	bundle := model.InsightBundle{Insights: []model.Insight{
		{Path: "/root/project/node_modules", Category: model.BuildArtifact},
	}}

	m := NewModel(root, bundle)
	if m.categories["/root/project/node_modules"] != model.BuildArtifact {
		t.Error("expected node_modules to be tagged BuildArtifact")
	}
}

func TestModel_Update_Quit(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := newModel.(Model)

	if !got.quitting {
		t.Error("model should be quitting after 'q' press")
	}
	if cmd == nil {
		t.Error("should return tea.Quit command")
	}
}

func TestModel_Update_CtrlC(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := newModel.(Model)

	if !got.quitting {
		t.Error("model should be quitting after Ctrl+C")
	}
}

func TestModel_Update_OpenDescendsIntoDirectory(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := newModel.(Model)

	if got.current.Name != "project" {
		t.Errorf("expected to descend into project, got %q", got.current.Name)
	}
	if len(got.stack) != 1 {
		t.Errorf("expected one ancestor on the stack, got %d", len(got.stack))
	}
}

func TestModel_Update_BackReturnsToParent(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	descended, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = descended.(Model)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	got := back.(Model)

	if got.current.Name != "root" {
		t.Errorf("expected to return to root, got %q", got.current.Name)
	}
	if len(got.stack) != 0 {
		t.Error("stack should be empty again after returning to root")
	}
}

func TestModel_Update_BackAtRootIsNoop(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	got := newModel.(Model)

	if got.current.Name != "root" {
		t.Error("backspace at root should not change current node")
	}
}

func TestModel_Update_EnterOnFileIsNoop(t *testing.T) {
	root := dir("/root", "root", file("/root/a.bin", "a.bin", 10))
	m := NewModel(root, model.InsightBundle{})

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := newModel.(Model)

	if got.current != root {
		t.Error("entering on a file item should not descend")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	got := newModel.(Model)

	if got.width != 100 || got.height != 50 {
		t.Errorf("expected dimensions to be recorded, got %dx%d", got.width, got.height)
	}
}

func TestModel_View_Quitting(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})
	m.quitting = true

	if m.View() != "" {
		t.Error("view should be empty when quitting")
	}
}

func TestModel_View_ShowsBreadcrumbAndHelp(t *testing.T) {
	m := NewModel(sampleTree(), model.InsightBundle{})

	view := m.View()
	if !strings.Contains(view, "dux") {
		t.Error("expected header to mention dux")
	}
	if !strings.Contains(view, "navigate") {
		t.Error("expected help text")
	}
	if !strings.Contains(view, "/root") {
		t.Error("expected status bar to show current path")
	}
}

func TestNewKeyMap(t *testing.T) {
	km := newKeyMap()

	bindings := []struct {
		name    string
		binding interface{}
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"Open", km.Open},
		{"Back", km.Back},
		{"Enter", km.Enter},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			_ = b.binding
		})
	}
}

func TestModel_LargeNumberOfChildren(t *testing.T) {
	var children []*model.ScanNode
	for i := 0; i < 100; i++ {
		children = append(children, file("/root/f"+string(rune('a'+i%26)), "f", int64(i)))
	}
	root := dir("/root", "root", children...)

	m := NewModel(root, model.InsightBundle{})
	_ = m.View()
}
