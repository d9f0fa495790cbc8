package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
)

type sessionState int

const (
	stateLoading sessionState = iota
	stateCode
	stateComments
	stateGenerating
	stateReport
	stateFailed
)

type model struct {
	styles styles
	cfg    *config.Config
	log    *slog.Logger

	state   sessionState
	svc     *review.Service
	genName string

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	code     string
	comments []string
	errText  string

	width  int
	height int
}

func initialModel(cfg *config.Config, log *slog.Logger) *model {
	ta := textarea.New()
	ta.Placeholder = "Paste the code snippet here..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.ShowLineNumbers = true

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:   defaultStyles(),
		cfg:      cfg,
		log:      log,
		state:    stateLoading,
		textarea: ta,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initServiceCmd(m.cfg, m.log), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.state == stateCode {
				code := strings.TrimRight(m.textarea.Value(), "\n")
				if strings.TrimSpace(code) == "" {
					m.errText = "The code snippet cannot be empty."
					return m, nil
				}
				m.code = code
				m.errText = ""
				m.enterCommentEntry()
				return m, nil
			}
		case tea.KeyEnter:
			if m.state == stateComments {
				line := strings.TrimSpace(m.textarea.Value())
				if line == "" {
					if len(m.comments) == 0 {
						m.errText = "Add at least one review comment before generating."
						return m, nil
					}
					return m, m.startGeneration()
				}
				m.comments = append(m.comments, line)
				m.errText = ""
				m.textarea.Reset()
				return m, nil
			}
		}
		if m.state == stateReport || m.state == stateFailed {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "n":
				m.resetSession()
				return m, nil
			}
		}

	case serviceReadyMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.errText = msg.err.Error()
			return m, nil
		}
		m.svc = msg.svc
		m.genName = msg.genName
		m.state = stateCode
		return m, nil

	case reportReadyMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.errText = msg.err.Error()
			return m, nil
		}
		m.state = stateReport
		m.viewport = viewport.New(m.width-4, m.height-6)
		m.viewport.SetContent(msg.rendered)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 8)
		if m.state == stateReport {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 6
		}
	}

	return m, tea.Batch(taCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("EMPATHIC CODE REVIEWER"))
	b.WriteString("\n")

	switch m.state {
	case stateLoading:
		b.WriteString(fmt.Sprintf("\n  %s initializing review pipeline...\n", m.spinner.View()))

	case stateCode:
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("generator: %s", m.genName)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.prompt.Render("Step 1/2 — code snippet"))
		b.WriteString("\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("Ctrl+D to continue, Esc to quit"))

	case stateComments:
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("generator: %s", m.genName)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.prompt.Render("Step 2/2 — review comments"))
		b.WriteString("\n")
		for i, c := range m.comments {
			b.WriteString(m.styles.item.Render(fmt.Sprintf("  %d. %s", i+1, c)))
			b.WriteString("\n")
		}
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("Enter to add a comment, empty Enter to generate"))

	case stateGenerating:
		b.WriteString(fmt.Sprintf("\n  %s rewriting %d comment(s) with %s...\n", m.spinner.View(), len(m.comments), m.genName))

	case stateReport:
		b.WriteString(m.styles.frame.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("↑/↓ scroll │ n new session │ q quit"))

	case stateFailed:
		b.WriteString("\n")
		b.WriteString(m.styles.err.Render("⚠ " + m.errText))
		b.WriteString("\n\n")
		b.WriteString(m.styles.dim.Render("n new session │ q quit"))
	}

	if m.errText != "" && m.state != stateFailed {
		b.WriteString("\n")
		b.WriteString(m.styles.err.Render(m.errText))
	}

	return b.String() + "\n"
}

func (m *model) enterCommentEntry() {
	m.state = stateComments
	m.textarea.Reset()
	m.textarea.Placeholder = "Type a review comment and press Enter..."
	m.textarea.SetHeight(1)
	m.textarea.ShowLineNumbers = false
}

func (m *model) startGeneration() tea.Cmd {
	m.state = stateGenerating
	req := &core.ReviewRequest{
		CodeSnippet:    m.code,
		ReviewComments: m.comments,
	}
	return tea.Batch(m.spinner.Tick, generateCmd(m.svc, req, m.width-8))
}

func (m *model) resetSession() {
	m.state = stateCode
	m.code = ""
	m.comments = nil
	m.errText = ""
	m.textarea.Reset()
	m.textarea.Placeholder = "Paste the code snippet here..."
	m.textarea.SetHeight(12)
	m.textarea.ShowLineNumbers = true
	m.textarea.Focus()
}
