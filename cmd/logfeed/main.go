// Command logfeed scrolls a 100k-record log with variable-height rows.
// Records with detail lines are taller than plain ones; the layout
// measures heights lazily, so startup touches only the first screen.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"vlist"
)

const recordCount = 100_000

var (
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

type record struct {
	level   string
	message string
	detail  []string
}

func makeRecord(i int) record {
	r := record{level: "INFO", message: fmt.Sprintf("request %d handled", i)}
	switch {
	case i%97 == 0:
		r.level = "ERROR"
		r.message = fmt.Sprintf("request %d failed", i)
		r.detail = []string{
			"    upstream: connection reset",
			"    retries exhausted after 3 attempts",
			"    giving up",
		}
	case i%13 == 0:
		r.level = "WARN"
		r.message = fmt.Sprintf("request %d slow (412ms)", i)
		r.detail = []string{"    threshold: 250ms"}
	}
	return r
}

// height is the record's row count: one line plus its detail lines.
func (r record) height() int {
	return 1 + len(r.detail)
}

func (r record) lines(width int) []string {
	style := infoStyle
	switch r.level {
	case "WARN":
		style = warnStyle
	case "ERROR":
		style = errorStyle
	}
	out := make([]string, 0, r.height())
	out = append(out, style.Render(fmt.Sprintf("%-5s %s", r.level, r.message)))
	for _, d := range r.detail {
		out = append(out, detailStyle.Render(d))
	}
	return out
}

type model struct {
	records []record
	layout  *vlist.VariableLayout

	offset int
	width  int
	height int
}

func newModel() model {
	records := make([]record, recordCount)
	for i := range records {
		records[i] = makeRecord(i)
	}
	m := model{records: records}
	m.layout = vlist.NewVariableLayout(len(records), func(i int) int {
		return records[i].height()
	}).EstimatedItemSize(1)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) viewportH() int {
	return max(1, m.height-1) // last line is the status bar
}

func (m model) clamp(offset int) int {
	return max(0, min(m.layout.EstimatedTotalSize()-m.viewportH(), offset))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = m.clamp(m.offset)
	case tea.KeyMsg:
		h := m.viewportH()
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.offset = m.clamp(m.offset + 1)
		case "k", "up":
			m.offset = m.clamp(m.offset - 1)
		case "d", "ctrl+d":
			m.offset = m.clamp(m.offset + h/2)
		case "u", "ctrl+u":
			m.offset = m.clamp(m.offset - h/2)
		case "f", "pgdown":
			m.offset = m.clamp(m.offset + h)
		case "b", "pgup":
			m.offset = m.clamp(m.offset - h)
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.clamp(m.layout.OffsetForAlignment(
				len(m.records)-1, vlist.AlignEnd, m.offset, h))
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	h := m.viewportH()
	rows := make([]string, h)

	start, stop := vlist.VisibleRange(m.layout, m.offset, h, 0)
	for i := start; i <= stop; i++ {
		meta := m.layout.Metadata(i)
		for j, line := range m.records[i].lines(m.width) {
			y := meta.Offset + j - m.offset
			if y >= 0 && y < h {
				rows[y] = line
			}
		}
	}

	status := fmt.Sprintf(" %d/%d  item %d  j/k d/u f/b g/G q ",
		m.offset, max(0, m.layout.EstimatedTotalSize()-h), start)
	bar := statusStyle.Width(m.width).Render(status)

	return strings.Join(rows, "\n") + "\n" + bar
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("logfeed requires a terminal")
	}
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
