package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/actsim/internal/acto"
	"github.com/san-kum/actsim/internal/solver"
)

const (
	graphWidth  = 72
	graphHeight = 12
	frameRate   = 30
	// cap the total number of rendered frames so long runs still
	// finish in a watchable time
	targetFrames = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var fieldNames = []string{"rho (density)", "a (activity)", "V (velocity)"}

type tickMsg time.Time

// Model drives a simulation session frame by frame and renders the
// selected field profile as an ascii graph.
type Model struct {
	sess          *solver.Session
	stepsPerFrame int
	field         int
	paused        bool
	err           error
}

func NewModel(p acto.Params) (Model, error) {
	sess, err := solver.NewSession(p)
	if err != nil {
		return Model{}, err
	}
	spf := sess.TotalSteps() / targetFrames
	if spf < 1 {
		spf = 1
	}
	return Model{sess: sess, stepsPerFrame: spf}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "tab":
			m.field = (m.field + 1) % len(fieldNames)
		}
		return m, nil

	case tickMsg:
		if m.err != nil || m.sess.Done() {
			return m, nil
		}
		if !m.paused {
			for i := 0; i < m.stepsPerFrame && !m.sess.Done(); i++ {
				if err := m.sess.Step(); err != nil {
					m.err = err
					break
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("actsim live") + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("run aborted: %v", m.err)) + "\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	s := m.sess.State()
	var data acto.Field
	switch m.field {
	case 0:
		data = s.Rho
	case 1:
		data = s.A
	default:
		data = s.V
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fieldNames[m.field]+" over x in [-1, 1]"),
	)
	b.WriteString(graphStyle.Render(graph) + "\n\n")

	drift := 0.0
	if m.sess.InitialMass() != 0 {
		drift = math.Abs(m.sess.Mass()-m.sess.InitialMass()) / m.sess.InitialMass()
	}
	stats := [][2]string{
		{"t", fmt.Sprintf("%.4f", m.sess.Time())},
		{"step", fmt.Sprintf("%d / %d", m.sess.StepCount(), m.sess.TotalSteps())},
		{"mass", fmt.Sprintf("%.6f", m.sess.Mass())},
		{"drift", fmt.Sprintf("%.2e", drift)},
	}
	for _, kv := range stats {
		b.WriteString(labelStyle.Render(kv[0]) + valueStyle.Render(kv[1]) + "\n")
	}

	status := "running"
	if m.paused {
		status = "paused"
	} else if m.sess.Done() {
		status = "done"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space: pause  tab: field  q: quit", status)))

	return b.String()
}

// Run starts the live view for one parameter set and blocks until the
// user quits.
func Run(p acto.Params) error {
	m, err := NewModel(p)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
