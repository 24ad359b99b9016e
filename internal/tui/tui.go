// Package tui implements an ncdu-style interactive tree browser over a
// scanned directory: drill into directories, see sizes and insight
// category badges, and back out again.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prenomnom/dux/internal/model"
	"github.com/prenomnom/dux/pkg/utils"
)

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#06B6D4")
	successColor   = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	mutedColor     = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	headerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			Align(lipgloss.Center).
			MarginBottom(1)

	statusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1).
			MarginTop(1)
)

// nodeItem adapts a *model.ScanNode to list.Item.
type nodeItem struct {
	node     *model.ScanNode
	category string
}

func (i nodeItem) Title() string {
	marker := "📄"
	if i.node.IsDir() {
		marker = "📁"
	}
	badge := ""
	if i.category != "" {
		badge = " " + badgeStyle(i.category).Render("["+i.category+"]")
	}
	return fmt.Sprintf("%s %s%s", marker, i.node.Name, badge)
}

func (i nodeItem) Description() string {
	return utils.FormatBytes(i.node.DiskUsage)
}

func (i nodeItem) FilterValue() string {
	return i.node.Name
}

func badgeStyle(category string) lipgloss.Style {
	switch category {
	case model.Temp.String():
		return lipgloss.NewStyle().Foreground(warningColor)
	case model.Cache.String():
		return lipgloss.NewStyle().Foreground(secondaryColor)
	case model.BuildArtifact.String():
		return lipgloss.NewStyle().Foreground(successColor)
	default:
		return mutedStyle
	}
}

// Model is the Bubble Tea model backing the tree browser.
type Model struct {
	root       *model.ScanNode
	categories map[string]model.Category
	stack      []*model.ScanNode // ancestors of current, root first
	current    *model.ScanNode
	list       list.Model
	quitting   bool
	width      int
	height     int
}

// NewModel builds a browser rooted at root, decorating entries whose path
// appears in bundle with a category badge.
func NewModel(root *model.ScanNode, bundle model.InsightBundle) Model {
	categories := make(map[string]model.Category, len(bundle.Insights))
	for _, ins := range bundle.Insights {
		categories[ins.Path] = ins.Category
	}

	m := Model{root: root, categories: categories, current: root}
	m.list = newListForNode(root, categories)
	return m
}

func newListForNode(node *model.ScanNode, categories map[string]model.Category) list.Model {
	items := make([]list.Item, len(node.Children))
	for i, c := range node.Children {
		badge := ""
		if cat, ok := categories[c.Path]; ok {
			badge = cat.String()
		}
		items[i] = nodeItem{node: c, category: badge}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(primaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(secondaryColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = node.Path
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	return l
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter", "right", "l":
			if sel, ok := m.list.SelectedItem().(nodeItem); ok && sel.node.IsDir() && len(sel.node.Children) > 0 {
				m.stack = append(m.stack, m.current)
				m.current = sel.node
				m.list = newListForNode(m.current, m.categories)
				m.list.SetSize(m.width-4, m.height-10)
			}
			return m, nil
		case "backspace", "left", "h":
			if len(m.stack) > 0 {
				m.current = m.stack[len(m.stack)-1]
				m.stack = m.stack[:len(m.stack)-1]
				m.list = newListForNode(m.current, m.categories)
				m.list.SetSize(m.width-4, m.height-10)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("dux"),
		subtitleStyle.Render("Tree browser"),
	)
	b.WriteString(headerBox.Render(header))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")

	status := fmt.Sprintf(" %s • %s • depth %d ", m.current.Path, utils.FormatBytes(m.current.DiskUsage), len(m.stack))
	b.WriteString(statusBar.Render(status))
	b.WriteString("\n")

	help := "↑/↓: navigate • enter/→: open • ←/backspace: up • /: filter • q: quit"
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// Run starts the TUI over the given scanned tree.
func Run(root *model.ScanNode, bundle model.InsightBundle) error {
	m := NewModel(root, bundle)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// keyMap documents the custom bindings used by the browser.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Back  key.Binding
	Quit  key.Binding
	Enter key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "backspace"),
			key.WithHelp("←/h", "up a level"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
