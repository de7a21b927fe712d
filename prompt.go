package subst

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type promptField int

const (
	fieldRoot promptField = iota
	fieldSearch
	fieldReplace
	fieldImport
)

var promptFields = []struct {
	field       promptField
	label       string
	placeholder string
}{
	{fieldRoot, "Enter the relative folder name of your React project:", "e.g., src or my-app/src"},
	{fieldSearch, "Enter the search string to replace", `e.g., ="#3762DD"`},
	{fieldReplace, "Enter the replace string", "e.g., ={colorNameMapper.ROYAL_BLUE}"},
	{fieldImport, "Enter the import statement", `e.g., import { colorNameMapper } from "~/constants/colorConstants"`},
}

// PromptModel asks for every empty field of a Request, one at a time.
type PromptModel struct {
	req       Request
	pending   []promptField
	input     textinput.Model
	cancelled bool
	done      bool
}

func NewPromptModel(req Request) PromptModel {
	m := PromptModel{req: req}
	for _, f := range promptFields {
		if m.value(f.field) == "" {
			m.pending = append(m.pending, f.field)
		}
	}
	m.input = textinput.New()
	m.resetInput()
	return m
}

func (m PromptModel) Request() Request { return m.req }
func (m PromptModel) Cancelled() bool  { return m.cancelled }
func (m PromptModel) Done() bool       { return m.done }

func (m PromptModel) Init() tea.Cmd {
	if len(m.pending) == 0 {
		return tea.Quit
	}
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			v := m.input.Value()
			if v == "" {
				m.cancelled = true
				return m, tea.Quit
			}
			m.set(m.pending[0], v)
			m.pending = m.pending[1:]
			if len(m.pending) == 0 {
				m.done = true
				return m, tea.Quit
			}
			m.resetInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done || m.cancelled || len(m.pending) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptLabelStyle.Render(labelFor(m.pending[0])) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(promptHelpStyle.Render("enter: confirm • esc: cancel") + "\n")
	return b.String()
}

func (m *PromptModel) resetInput() {
	m.input.Reset()
	if len(m.pending) == 0 {
		return
	}
	for _, f := range promptFields {
		if f.field == m.pending[0] {
			m.input.Placeholder = f.placeholder
		}
	}
	m.input.Focus()
}

func (m PromptModel) value(f promptField) string {
	switch f {
	case fieldRoot:
		return m.req.Root
	case fieldSearch:
		return m.req.Search
	case fieldReplace:
		return m.req.Replace
	default:
		return m.req.Import
	}
}

func (m *PromptModel) set(f promptField, v string) {
	switch f {
	case fieldRoot:
		m.req.Root = v
	case fieldSearch:
		m.req.Search = v
	case fieldReplace:
		m.req.Replace = v
	default:
		m.req.Import = v
	}
}

func labelFor(f promptField) string {
	for _, pf := range promptFields {
		if pf.field == f {
			return pf.label
		}
	}
	return ""
}

// PromptMissing interactively collects the empty fields of req. It returns
// ErrCancelled if the operator leaves a value empty or aborts.
func PromptMissing(req Request) (Request, error) {
	if req.Validate() == nil {
		return req, nil
	}

	final, err := tea.NewProgram(NewPromptModel(req)).Run()
	if err != nil {
		return req, err
	}
	m := final.(PromptModel)
	if m.Cancelled() {
		return req, ErrCancelled
	}
	return m.Request(), nil
}
