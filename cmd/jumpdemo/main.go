// Command jumpdemo jumps to arbitrary items in a 10k-row list with the
// four alignment modes. Type an index, press enter, and the viewport
// scrolls exactly as far as the chosen alignment requires.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"vlist"
)

const itemCount = 10_000

var (
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	fillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

var alignNames = map[vlist.Align]string{
	vlist.AlignAuto:   "auto",
	vlist.AlignStart:  "start",
	vlist.AlignCenter: "center",
	vlist.AlignEnd:    "end",
}

type model struct {
	layout *vlist.VariableLayout

	offset int
	target int
	align  vlist.Align
	input  string
	width  int
	height int
}

// itemHeight gives rows a repeating 1..4 height pattern so alignment
// differences are visible.
func itemHeight(i int) int {
	return i%4 + 1
}

func newModel() model {
	return model{
		layout: vlist.NewVariableLayout(itemCount, itemHeight).EstimatedItemSize(2),
		target: -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) viewportH() int {
	return max(1, m.height-1)
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
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.align = (m.align + 1) % 4
		case "j", "down":
			m.offset = m.clamp(m.offset + 1)
		case "k", "up":
			m.offset = m.clamp(m.offset - 1)
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case "enter":
			if idx, err := strconv.Atoi(m.input); err == nil {
				idx = max(0, min(itemCount-1, idx))
				m.target = idx
				m.offset = m.clamp(m.layout.OffsetForAlignment(
					idx, m.align, m.offset, m.viewportH()))
			}
			m.input = ""
		default:
			if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
				m.input += key
			}
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
		style, fill := rowStyle, fillStyle
		if i == m.target {
			style, fill = targetStyle, targetStyle
		}
		for j := 0; j < meta.Size; j++ {
			y := meta.Offset + j - m.offset
			if y < 0 || y >= h {
				continue
			}
			if j == 0 {
				rows[y] = style.Render(fmt.Sprintf("item %d (h=%d)", i, meta.Size))
			} else {
				rows[y] = fill.Render("  ·")
			}
		}
	}

	status := fmt.Sprintf(" align:%s  jump:%s_  a:mode enter:jump j/k q ",
		alignNames[m.align], m.input)
	bar := statusStyle.Width(m.width).Render(status)

	return strings.Join(rows, "\n") + "\n" + bar
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("jumpdemo requires a terminal")
	}
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
