package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/contactform/internal/config"
	"github.com/idilsaglam/contactform/internal/form"
	"github.com/idilsaglam/contactform/internal/model"
	"github.com/idilsaglam/contactform/internal/ui"
)

const header = "Contact Form"

var placeholders = map[model.Field]string{
	model.FieldFirstName: "at least 5 characters",
	model.FieldLastName:  "required",
	model.FieldEmail:     "you@example.com",
	model.FieldMessage:   "optional",
}

// Options configure the form program.
type Options struct {
	Theme     ui.Theme
	CharLimit int
	Logger    *zap.Logger
	AltScreen bool

	// Input and Output override the terminal; tests use them.
	Input  io.Reader
	Output io.Writer
}

// Model is the Bubble Tea model for the contact form. One text input per
// field plus a submit button; focus == len(inputs) means the button.
type Model struct {
	state  *form.State
	inputs []textinput.Model
	focus  int

	keys  keyMap
	help  help.Model
	theme ui.Theme
	log   *zap.Logger
}

// New builds a form with the first input focused.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.NewTheme("")
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = config.DefaultCharLimit
	}

	m := Model{
		state: form.New(form.WithLogger(log)),
		keys:  defaultKeys(),
		help:  help.New(),
		theme: opts.Theme,
		log:   log,
	}
	m.inputs = make([]textinput.Model, len(model.Fields))
	for i, f := range model.Fields {
		ti := textinput.New()
		ti.Prompt = "  "
		ti.Placeholder = placeholders[f]
		ti.CharLimit = opts.CharLimit
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.inputs[0].Prompt = m.theme.Cursor
	return m
}

// State exposes the form state holder driven by this model.
func (m Model) State() *form.State { return m.state }

// Focused returns the focused field, or "" when the submit button has focus.
func (m Model) Focused() model.Field {
	if m.focus < len(m.inputs) {
		return model.Fields[m.focus]
	}
	return ""
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		for i := range m.inputs {
			if msg.Width > 10 {
				m.inputs[i].Width = msg.Width - 8
			}
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			return m.focusOn(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.focusOn(m.focus - 1)
		case key.Matches(msg, m.keys.Enter):
			if m.focus == len(m.inputs) {
				return m.submit()
			}
			return m.focusOn(m.focus + 1)
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if v := m.inputs[m.focus].Value(); v != before {
		if err := m.state.SetField(model.Fields[m.focus], v); err != nil {
			m.log.Error("set field", zap.Error(err))
		}
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if _, errs := m.state.Submit(); len(errs) > 0 {
		first := errs.Ordered()[0].Field
		for i, f := range model.Fields {
			if f == first {
				return m.focusOn(i)
			}
		}
		return m, nil
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m.focusOn(0)
}

// focusOn moves focus to index i, wrapping around the inputs and the button.
func (m Model) focusOn(i int) (tea.Model, tea.Cmd) {
	n := len(m.inputs) + 1
	i = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Prompt = m.theme.Cursor
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Prompt = "  "
		m.inputs[j].Blur()
	}
	m.focus = i
	return m, cmd
}

func (m Model) View() string {
	t := m.theme
	visible := m.state.Visible()

	var b strings.Builder
	b.WriteString(t.Title.Render(header))
	b.WriteString("\n\n")
	for i, f := range model.Fields {
		label := t.Label
		if i == m.focus {
			label = t.Focused
		}
		b.WriteString(label.Render(f.Label()))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := visible[f]; ok {
			b.WriteString("  ")
			b.WriteString(t.Fail(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := t.Button
	if m.focus == len(m.inputs) {
		button = t.ButtonFocused
	}
	b.WriteString(button.Render("Submit"))
	b.WriteString("\n")

	if rec := m.state.Submitted(); rec != nil {
		b.WriteString("\n")
		b.WriteString(SubmittedPanel(t, *rec))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return t.Panel([]string{b.String()})
}

// SubmittedPanel renders the echo of a submitted record. The message line is
// omitted when no message was given.
func SubmittedPanel(t ui.Theme, rec model.Contact) string {
	lines := []string{
		t.Title.Render("You submitted:"),
		fmt.Sprintf("First Name: %s", ui.Sanitize(rec.FirstName)),
		fmt.Sprintf("Last Name: %s", ui.Sanitize(rec.LastName)),
		fmt.Sprintf("Email: %s", ui.Sanitize(rec.Email)),
	}
	if rec.Message != "" {
		lines = append(lines, fmt.Sprintf("Message: %s", ui.Sanitize(rec.Message)))
	}
	return t.Panel(lines)
}

// Run starts the form and returns the last submitted record, if any.
func Run(opts Options) (*model.Contact, error) {
	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}

	final, err := tea.NewProgram(New(opts), popts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run form: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return fm.state.Submitted(), nil
}
