// Package reporter formats scan results for the terminal: a header box,
// per-category insight tables, and top-N node listings. It is a
// collaborator of the core (see SPEC_FULL.md §6), never the core itself —
// display-only formatting (bytes-to-human, table layout) lives here.
package reporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/prenomnom/dux/internal/model"
	"github.com/prenomnom/dux/pkg/utils"
)

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#06B6D4")
	successColor   = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	dangerColor    = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	successStyle  = lipgloss.NewStyle().Foreground(successColor)
	warningStyle  = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle    = lipgloss.NewStyle().Foreground(dangerColor)
	infoStyle     = lipgloss.NewStyle().Foreground(secondaryColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)

	headerBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			Align(lipgloss.Center)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableFooterStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
)

// Reporter handles all output formatting and display.
type Reporter struct {
	verbose  bool
	progress progress.Model
}

// NewReporter creates a new Reporter.
func NewReporter(verbose bool) *Reporter {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	return &Reporter{verbose: verbose, progress: p}
}

// PrintHeader prints the application header.
func (r *Reporter) PrintHeader() {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("dux"),
		subtitleStyle.Render("Disk usage analysis and insight reporting"),
	)
	fmt.Println()
	fmt.Println(headerBox.Render(content))
	fmt.Println()
}

// PrintScanSummary prints the top-level scan statistics.
func (r *Reporter) PrintScanSummary(snapshot *model.ScanSnapshot) {
	fmt.Println(warningStyle.Render("\n📊 Scan Summary:\n"))
	fmt.Printf("  %s %s\n", mutedStyle.Render("Root:"), snapshot.Root.Path)
	fmt.Printf("  %s %s\n", mutedStyle.Render("Total size:"), successStyle.Render(utils.FormatBytes(snapshot.Root.SizeBytes)))
	fmt.Printf("  %s %s\n", mutedStyle.Render("Files:"), utils.FormatCount(int(snapshot.Stats.Files)))
	fmt.Printf("  %s %s\n", mutedStyle.Render("Directories:"), utils.FormatCount(int(snapshot.Stats.Directories)))
	if snapshot.Stats.AccessErrors > 0 {
		fmt.Printf("  %s %s\n", errorStyle.Render("Access errors:"), utils.FormatCount(int(snapshot.Stats.AccessErrors)))
	}
	fmt.Println()
}

// PrintInsightBundle prints a per-category table of exact totals and, when
// the reporter is verbose, the bundle's retained insights as one flat list.
func (r *Reporter) PrintInsightBundle(bundle model.InsightBundle) {
	fmt.Println(warningStyle.Render("🔍 Insight Categories:\n"))

	fmt.Printf("%s%s%s%s\n",
		tableHeaderStyle.Width(16).Render("CATEGORY"),
		tableHeaderStyle.Width(10).Align(lipgloss.Right).Render("COUNT"),
		tableHeaderStyle.Width(12).Align(lipgloss.Right).Render("SIZE"),
		tableHeaderStyle.Width(12).Align(lipgloss.Right).Render("DISK USAGE"),
	)
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 50)))

	var totalSize, totalUsage int64
	var totalCount int
	for _, c := range model.Categories {
		totals, ok := bundle.ByCategory[c]
		if !ok {
			continue
		}
		fmt.Printf("%s%s%s%s\n",
			tableCellStyle.Width(16).Render(c.String()),
			tableCellStyle.Width(10).Align(lipgloss.Right).Render(utils.FormatCount(totals.Count)),
			tableCellStyle.Width(12).Align(lipgloss.Right).Render(utils.FormatBytes(totals.SizeBytes)),
			tableCellStyle.Width(12).Align(lipgloss.Right).Render(utils.FormatBytes(totals.DiskUsage)),
		)
		totalSize += totals.SizeBytes
		totalUsage += totals.DiskUsage
		totalCount += totals.Count
	}
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 50)))
	fmt.Printf("%s%s%s%s\n",
		tableFooterStyle.Width(16).Render("Total"),
		tableFooterStyle.Width(10).Align(lipgloss.Right).Render(utils.FormatCount(totalCount)),
		tableFooterStyle.Width(12).Align(lipgloss.Right).Render(utils.FormatBytes(totalSize)),
		tableFooterStyle.Width(12).Align(lipgloss.Right).Render(utils.FormatBytes(totalUsage)),
	)
	fmt.Println()

	if r.verbose {
		r.printTopInsights(bundle)
	}
}

func (r *Reporter) printTopInsights(bundle model.InsightBundle) {
	fmt.Println(warningStyle.Render("📋 Top Insights:\n"))
	for _, ins := range bundle.Insights {
		fmt.Printf("  [%s] %s - %s (%s)\n",
			categoryLabel(ins.Category),
			successStyle.Render(utils.FormatBytes(ins.DiskUsage)),
			mutedStyle.Render(ins.Path),
			ins.Summary,
		)
	}
	fmt.Println()
}

func categoryLabel(c model.Category) string {
	switch c {
	case model.Temp:
		return warningStyle.Render("temp")
	case model.Cache:
		return infoStyle.Render("cache")
	case model.BuildArtifact:
		return successStyle.Render("build")
	default:
		return mutedStyle.Render("?")
	}
}

// PrintTopNodes prints the result of a top_nodes query.
func (r *Reporter) PrintTopNodes(nodes []*model.ScanNode) {
	fmt.Println(warningStyle.Render("🏆 Largest Nodes:\n"))
	for i, n := range nodes {
		kind := "file"
		if n.IsDir() {
			kind = "dir"
		}
		fmt.Printf("  %2d. %s  %s (%s)\n",
			i+1,
			successStyle.Render(utils.FormatBytes(n.DiskUsage)),
			n.Path,
			mutedStyle.Render(kind),
		)
	}
	fmt.Println()
}

// PrintProgress prints a progress indicator.
func (r *Reporter) PrintProgress(currentPath string, files, directories int64) {
	fmt.Printf("\r%s %s %s files, %s dirs",
		r.progress.ViewAs(0),
		mutedStyle.Render(currentPath),
		utils.FormatCount(int(files)),
		utils.FormatCount(int(directories)),
	)
}

// PrintWarning prints a warning message.
func (r *Reporter) PrintWarning(message string) {
	fmt.Println(warningStyle.Render("⚠️  " + message))
}

// PrintError prints an error message.
func (r *Reporter) PrintError(message string) {
	fmt.Println(errorStyle.Render("❌ " + message))
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(message string) {
	fmt.Println(successStyle.Render("✅ " + message))
}

// PrintInfo prints an info message.
func (r *Reporter) PrintInfo(message string) {
	fmt.Println(infoStyle.Render("ℹ️  " + message))
}
