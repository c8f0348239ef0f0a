package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	scopeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the scan progress spinner.
func (p *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.program = tea.NewProgram(newScanProgressModel(), tea.WithOutput(p.output))
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		_, _ = p.program.Run()
	}()

	return nil
}

// Close stops the progress display if it is still running.
func (p *TUI) Close(_ context.Context) {
	p.stopProgress()
}

// stopProgress quits the spinner program and waits for it to finish so
// later prints do not interleave with its output.
func (p *TUI) stopProgress() {
	if p.program == nil {
		return
	}

	p.program.Send(progressDoneMsg{})
	<-p.done
	p.program = nil
}

// DisplayScanInfo feeds the scan parameters to the progress display.
func (p *TUI) DisplayScanInfo(ctx context.Context, scope *m.Scope, workers int) {
	if ctx.Err() != nil || p.program == nil {
		return
	}

	p.program.Send(scanInfoMsg{scope: scope.String(), workers: workers})
}

// DisplayEntryScanned reports one finished entry to the progress display.
// Safe to call from concurrent scan workers; Bubble Tea serializes Send.
func (p *TUI) DisplayEntryScanned(ctx context.Context, entry m.Entry) {
	if ctx.Err() != nil || p.program == nil {
		return
	}

	p.program.Send(entryScannedMsg{entry: string(entry)})
}

// DisplayOwnership shows the flattened entry ownership, paginated when it
// does not fit the terminal.
func (p *TUI) DisplayOwnership(ctx context.Context, ownership *m.EntryOwnership) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.stopProgress()

	lines := make([]string, 0, ownership.Len())
	for _, entry := range ownership.Entries() {
		lines = append(lines, fmt.Sprintf("%s  %s", entry, scopeStyle.Render(ownership.Owner(entry).String())))
	}

	footer := footerStyle.Render(fmt.Sprintf("%d entries", ownership.Len()))

	return p.renderList("Classpath entries", lines, footer)
}

// DisplayInventory shows the scan summary and the discovered resources,
// paginated when they do not fit the terminal.
func (p *TUI) DisplayInventory(ctx context.Context, inventory *m.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.stopProgress()

	lines := make([]string, 0, inventory.Len())

	for _, resource := range inventory.Resources() {
		name := resource.Name
		if resource.IsClass() {
			name = titleStyle.Render(name)
		}

		lines = append(lines, fmt.Sprintf("%s  %s", name, scopeStyle.Render(resource.Scope.String())))
	}

	footer := footerStyle.Render(fmt.Sprintf(
		"%d resources, %d classes", inventory.Len(), len(inventory.Classes())))

	return p.renderList("Scan results", lines, footer)
}

// DisplayClasses shows class records, paginated when they do not fit the
// terminal.
func (p *TUI) DisplayClasses(ctx context.Context, classes []m.ClassResource) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.stopProgress()

	lines := make([]string, 0, len(classes))
	for _, class := range classes {
		lines = append(lines, fmt.Sprintf("%s  %s", class.ClassName(), scopeStyle.Render(class.Scope.String())))
	}

	footer := footerStyle.Render(fmt.Sprintf("%d classes", len(classes)))

	return p.renderList("Classes", lines, footer)
}

// renderList prints short lists directly and opens a scrollable alt-screen
// pager for long ones.
func (p *TUI) renderList(title string, lines []string, footer string) error {
	model := newListModel(title, lines, footer)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// Messages driving the progress model.
type (
	scanInfoMsg struct {
		scope   string
		workers int
	}
	entryScannedMsg struct{ entry string }
	progressDoneMsg struct{}
)

// scanProgressModel shows a spinner with a live count of scanned entries.
type scanProgressModel struct {
	spinner spinner.Model
	scope   string
	workers int
	scanned int
	last    string
	done    bool
}

func newScanProgressModel() scanProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return scanProgressModel{spinner: s}
}

func (pm scanProgressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm scanProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanInfoMsg:
		pm.scope = msg.scope
		pm.workers = msg.workers

		return pm, nil

	case entryScannedMsg:
		pm.scanned++
		pm.last = msg.entry

		return pm, nil

	case progressDoneMsg:
		pm.done = true
		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.done = true
			return pm, tea.Quit
		}

		return pm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm scanProgressModel) View() string {
	if pm.done {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s scanning %s", pm.spinner.View(), scopeStyle.Render(pm.scope))

	if pm.workers > 1 {
		fmt.Fprintf(&b, " (%d workers)", pm.workers)
	}

	fmt.Fprintf(&b, " | %d entries scanned", pm.scanned)

	if pm.last != "" {
		fmt.Fprintf(&b, "\n%s", dimStyle.Render(pm.last))
	}

	b.WriteString("\n")

	return b.String()
}

// listModel is a scrollable list with a title and footer, paginated when
// taller than the terminal.
type listModel struct {
	title    string
	lines    []string
	footer   string
	width    int
	height   int
	offset   int
	quitting bool
}

func newListModel(title string, lines []string, footer string) listModel {
	return listModel{title: title, lines: lines, footer: footer}
}

func (lm listModel) Init() tea.Cmd {
	return nil
}

// chromeLines is the number of non-list lines in the view: title, blank,
// footer and help.
const chromeLines = 4

func (lm listModel) itemsPerPage() int {
	if lm.height <= chromeLines {
		return len(lm.lines)
	}

	return lm.height - chromeLines
}

func (lm listModel) maxOffset() int {
	max := len(lm.lines) - lm.itemsPerPage()
	if max < 0 {
		return 0
	}

	return max
}

func (lm listModel) needsPagination() bool {
	return lm.height > 0 && len(lm.lines) > lm.itemsPerPage()
}

func (lm listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.height = msg.Height
		lm.width = msg.Width

		return lm, nil

	case tea.KeyMsg:
		return lm.handleKeyPress(msg)
	}

	return lm, nil
}

func (lm listModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		lm.quitting = true
		return lm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		lm.quitting = true
		return lm, tea.Quit

	case "down", "j":
		lm.offset = min(lm.offset+1, lm.maxOffset())
		return lm, nil

	case "up", "k":
		lm.offset = max(lm.offset-1, 0)
		return lm, nil

	case "g", "home":
		lm.offset = 0
		return lm, nil

	case "G", "end":
		lm.offset = lm.maxOffset()
		return lm, nil

	case "d", "pgdown":
		lm.offset = min(lm.offset+lm.itemsPerPage(), lm.maxOffset())
		return lm, nil

	case "u", "pgup":
		lm.offset = max(lm.offset-lm.itemsPerPage(), 0)
		return lm, nil
	}

	return lm, nil
}

func (lm listModel) View() string {
	if lm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(lm.title))
	b.WriteString("\n\n")

	visible := lm.lines

	paginated := lm.needsPagination()
	if paginated {
		end := min(lm.offset+lm.itemsPerPage(), len(lm.lines))
		visible = lm.lines[lm.offset:end]
	}

	for _, line := range visible {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lm.footer)
	b.WriteString("\n")

	if paginated {
		b.WriteString(dimStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
