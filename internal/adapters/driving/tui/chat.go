package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driving"
)

// Config tunes the chat session.
type Config struct {
	// RequestsPerMinute rate-limits translation requests. Zero disables
	// the limit.
	RequestsPerMinute int

	// HistoryLimit bounds the number of retained exchanges. Zero means
	// DefaultHistoryLimit.
	HistoryLimit int
}

// DefaultHistoryLimit is the number of exchanges kept when the config
// does not override it.
const DefaultHistoryLimit = 50

// exchangeKind classifies a chat line for rendering.
type exchangeKind int

const (
	kindTranslation exchangeKind = iota
	kindNotice
	kindError
)

// exchange is one entry in the chat transcript.
type exchange struct {
	input  string
	output string
	kind   exchangeKind
}

// translationMsg carries an asynchronous translation result.
type translationMsg struct {
	input  string
	result domain.TranslationResult
	err    error
}

// Ensure Chat implements tea.Model.
var _ tea.Model = (*Chat)(nil)

// Chat is the interactive translation session model.
type Chat struct {
	translator driving.Translator
	ctx        context.Context
	styles     *Styles

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	limiter      *rate.Limiter
	history      []exchange
	historyLimit int

	waiting bool
	ready   bool
	width   int
	height  int
}

// NewChat creates the chat model.
func NewChat(ctx context.Context, translator driving.Translator, cfg Config) (*Chat, error) {
	if translator == nil {
		return nil, fmt.Errorf("chat: translator is required")
	}

	ta := textarea.New()
	ta.Placeholder = "Type something to translate..."
	ta.Prompt = "> "
	ta.SetHeight(1)
	ta.CharLimit = 500
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}
	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &Chat{
		translator:   translator,
		ctx:          ctx,
		styles:       DefaultStyles(),
		textarea:     ta,
		spinner:      sp,
		limiter:      rate.NewLimiter(limit, 3),
		historyLimit: historyLimit,
	}, nil
}

// Init implements tea.Model.
func (c *Chat) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.SetWindowTitle("boludo - Argentinian Spanish translator"),
	)
}

// Update implements tea.Model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.layout()
		return c, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return c, tea.Quit
		case tea.KeyEnter:
			return c, c.submit()
		}

	case translationMsg:
		c.waiting = false
		c.appendResult(msg)
		return c, nil

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	cmds = append(cmds, cmd)
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// submit sends the current input off for translation.
func (c *Chat) submit() tea.Cmd {
	input := strings.TrimSpace(c.textarea.Value())
	if input == "" || c.waiting {
		return nil
	}

	if !c.limiter.Allow() {
		c.appendExchange(exchange{
			output: "Tranquilo che, slow down a bit. Try again in a moment.",
			kind:   kindNotice,
		})
		return nil
	}

	c.textarea.Reset()
	c.waiting = true

	translate := func() tea.Msg {
		result, err := c.translator.Translate(c.ctx, domain.TranslationRequest{Text: input})
		return translationMsg{input: input, result: result, err: err}
	}
	return tea.Batch(c.spinner.Tick, translate)
}

// appendResult turns a translation message into a transcript entry.
func (c *Chat) appendResult(msg translationMsg) {
	if msg.err != nil {
		c.appendExchange(exchange{
			input:  msg.input,
			output: fmt.Sprintf("Translation failed: %v", msg.err),
			kind:   kindError,
		})
		return
	}

	switch msg.result.Outcome {
	case domain.OutcomeEmptyInput:
		// Blank input is filtered before submit; nothing to show.
	case domain.OutcomeUnsupportedLanguage:
		c.appendExchange(exchange{
			input:  msg.input,
			output: msg.result.Output,
			kind:   kindNotice,
		})
	default:
		c.appendExchange(exchange{
			input:  msg.input,
			output: msg.result.Output,
			kind:   kindTranslation,
		})
	}
}

// appendExchange adds an entry, trimming the transcript to the history
// limit, and scrolls to the bottom.
func (c *Chat) appendExchange(e exchange) {
	c.history = append(c.history, e)
	if len(c.history) > c.historyLimit {
		c.history = c.history[len(c.history)-c.historyLimit:]
	}
	c.viewport.SetContent(c.renderHistory())
	c.viewport.GotoBottom()
}

// layout resizes the components to the terminal.
func (c *Chat) layout() {
	const chromeHeight = 5 // title, input frame, help line
	vpHeight := c.height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !c.ready {
		c.viewport = viewport.New(c.width, vpHeight)
		c.viewport.SetContent(c.renderHistory())
		c.ready = true
	} else {
		c.viewport.Width = c.width
		c.viewport.Height = vpHeight
	}
	c.textarea.SetWidth(c.width - 4)
}

// renderHistory renders the transcript for the viewport.
func (c *Chat) renderHistory() string {
	if len(c.history) == 0 {
		return c.styles.Help.Render("No messages yet. Write in English or Spanish, get back porteño.")
	}

	var b strings.Builder
	for i, e := range c.history {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.input != "" {
			b.WriteString(c.styles.UserLabel.Render("You: "))
			b.WriteString(e.input)
			b.WriteString("\n")
		}
		switch e.kind {
		case kindNotice:
			b.WriteString(c.styles.Notice.Render(e.output))
		case kindError:
			b.WriteString(c.styles.Error.Render(e.output))
		default:
			b.WriteString(c.styles.BotLabel.Render("Che: "))
			b.WriteString(e.output)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View implements tea.Model.
func (c *Chat) View() string {
	if !c.ready {
		return "Loading..."
	}

	title := c.styles.Title.Render("🧉 boludo translator")
	if c.waiting {
		title += " " + c.spinner.View() + c.styles.Help.Render("translating...")
	}

	help := c.styles.Help.Render("enter: translate • esc: quit")

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s",
		title,
		c.viewport.View(),
		c.styles.InputBorder.Render(c.textarea.View()),
		help,
	)
}
