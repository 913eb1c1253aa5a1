// Package tui is the interactive terminal surface for asking questions.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharmaqa/internal/domain"
)

// AnswerPort is the TUI-facing subset of the answer pipeline.
type AnswerPort interface {
	Answer(ctx context.Context, question string) (*domain.Answer, error)
}

// Model is the Bubble Tea model for the question prompt.
type Model struct {
	answerer AnswerPort
	input    textinput.Model
	viewport viewport.Model
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(answerer AnswerPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a Dharmic question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{answerer: answerer, input: ti, viewport: vp, status: "Corpus loaded. Ask away."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := questionBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header + status + input box + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				ans, err := m.answerer.Answer(context.Background(), q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.viewport.SetContent("")
				} else {
					m.status = fmt.Sprintf("Answer for %q", q)
					m.viewport.SetContent(renderAnswer(ans))
				}
				m.input.SetValue("")
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the latest answer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Dharmic AI")
	answerBox := answerBoxStyle.Render(m.viewport.View())
	input := questionBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + answerBox + "\n" + input + "\n" + status
}

var (
	answerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Bold(true)
	refStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderAnswer(ans *domain.Answer) string {
	if ans.Type != domain.AnswerDharmic {
		return ans.Message
	}
	var b strings.Builder
	b.WriteString(ans.Summary + "\n\n")
	for _, line := range ans.Explanation {
		b.WriteString(line + "\n\n")
	}
	if len(ans.Verses) > 0 {
		b.WriteString(labelStyle.Render("Verses") + "\n")
		for _, v := range ans.Verses {
			b.WriteString(refStyle.Render(fmt.Sprintf("[%s] %s", v.Ref, v.Book)) + "\n")
			if v.Sanskrit != "" {
				b.WriteString(dimStyle.Render(v.Sanskrit) + "\n")
			}
			b.WriteString(v.Meaning + "\n\n")
		}
	}
	if len(ans.Sources) > 0 {
		b.WriteString(labelStyle.Render("Sources: ") + strings.Join(ans.Sources, ", ") + "\n")
	}
	b.WriteString(labelStyle.Render("Confidence: ") + string(ans.Confidence) + "\n\n")
	b.WriteString(dimStyle.Render(ans.Disclaimer))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
