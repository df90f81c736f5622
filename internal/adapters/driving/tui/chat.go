package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
)

// Chat is the Bubble Tea model for the tutoring session.
// It follows the Elm architecture: messages in, new state and commands out.
type Chat struct {
	ports Ports
	ctx   context.Context

	input    textinput.Model
	viewport viewport.Model

	transcript []string
	summary    string
	status     string
	thinking   bool
	ready      bool
}

// Ensure Chat implements tea.Model.
var _ tea.Model = (*Chat)(nil)

// answerMsg carries the result of an Ask call back into the update loop.
type answerMsg struct {
	question string
	answer   *driving.Answer
	err      error
}

// summaryMsg carries the refreshed student context for the header.
type summaryMsg struct {
	summary string
}

// NewChat creates a chat model over the given ports.
func NewChat(ports Ports) *Chat {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	return &Chat{
		ports:    ports,
		ctx:      context.Background(),
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready. Ask your tutor anything.",
	}
}

// WithContext sets the context used for service calls.
func (c *Chat) WithContext(ctx context.Context) {
	if ctx != nil {
		c.ctx = ctx
	}
}

// Init starts the cursor blink and loads the student context.
func (c *Chat) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, c.loadSummary())
}

// Update handles key, window, and answer events.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.ready = true
		_, hFrame := historyStyle.GetFrameSize()
		_, iFrame := inputStyle.GetFrameSize()
		reserved := 2 + 1 + iFrame + 1 // title + summary, status, input box, spacer
		vh := msg.Height - reserved - hFrame
		if vh < 3 {
			vh = 3
		}
		c.viewport.Width = maxInt(20, msg.Width-4)
		c.viewport.Height = vh
		c.refreshTranscript()
		return c, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return c, tea.Quit
		}
		switch msg.String() {
		case "esc":
			return c, tea.Quit
		case "enter":
			question := strings.TrimSpace(c.input.Value())
			if question != "" && !c.thinking {
				c.input.SetValue("")
				c.thinking = true
				c.status = "Thinking..."
				c.transcript = append(c.transcript, questionStyle.Render("You: ")+question)
				c.refreshTranscript()
				return c, c.ask(question)
			}
		case "up":
			c.viewport.ScrollUp(1)
			return c, nil
		case "down":
			c.viewport.ScrollDown(1)
			return c, nil
		}

	case answerMsg:
		c.thinking = false
		if msg.err != nil {
			c.transcript = append(c.transcript, errorStyle.Render("Error: "+msg.err.Error()))
			c.status = "Ask failed. Try again."
		} else {
			c.transcript = append(c.transcript, answerStyle.Render("Tutor: "+msg.answer.Text))
			if msg.answer.FlaggedTopic != "" {
				c.transcript = append(c.transcript,
					noticeStyle.Render(fmt.Sprintf("Noted: %q added to your weak topics.", msg.answer.FlaggedTopic)))
			}
			c.status = "Ready."
		}
		c.refreshTranscript()
		return c, c.loadSummary()

	case summaryMsg:
		c.summary = msg.summary
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the chat layout.
func (c *Chat) View() string {
	if !c.ready {
		return "Loading..."
	}

	title := titleStyle.Render("Tutor")
	summary := summaryStyle.Render(headerLine(c.summary))
	history := historyStyle.Render(c.viewport.View())
	input := inputStyle.Render(c.input.View())
	status := summaryStyle.Render(c.status)

	return title + "\n" + summary + "\n" + history + "\n" + input + "\n" + status
}

// ask runs the question through the tutor service off the update loop.
func (c *Chat) ask(question string) tea.Cmd {
	return func() tea.Msg {
		if c.ports.Tutor == nil {
			return answerMsg{question: question, err: fmt.Errorf("tutor service not configured")}
		}
		answer, err := c.ports.Tutor.Ask(c.ctx, question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// loadSummary refreshes the student context header.
func (c *Chat) loadSummary() tea.Cmd {
	return func() tea.Msg {
		if c.ports.Profile == nil {
			return summaryMsg{}
		}
		summary, err := c.ports.Profile.Summary(c.ctx)
		if err != nil {
			return summaryMsg{}
		}
		return summaryMsg{summary: summary}
	}
}

func (c *Chat) refreshTranscript() {
	if len(c.transcript) == 0 {
		c.viewport.SetContent("No questions yet. Your conversation will appear here.")
		return
	}
	c.viewport.SetContent(strings.Join(c.transcript, "\n\n"))
	c.viewport.GotoBottom()
}

// headerLine condenses the multi-line student summary into one header line.
func headerLine(summary string) string {
	if summary == "" {
		return "Student profile not loaded"
	}
	lines := strings.Split(strings.TrimSpace(summary), "\n")
	return strings.Join(lines, "  |  ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
