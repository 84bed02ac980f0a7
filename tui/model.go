package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewpaige1/flashdeck/study"
)

// stateMsg carries the state produced by a finished service call. It
// replaces whatever the model holds, even if the user moved on meanwhile.
type stateMsg struct {
	state study.State
}

type Model struct {
	ctrl  *study.Controller
	state study.State
	rng   *rand.Rand
	md    *markdown

	inputs []textinput.Model
	bulk   textarea.Model
	focus  int

	quitting bool
}

const (
	questionInput = iota
	answerInput
	categoryInput
)

func NewModel(ctrl *study.Controller, rng *rand.Rand) Model {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		t := textinput.New()
		t.CharLimit = 2000
		t.Width = 60
		switch i {
		case questionInput:
			t.Placeholder = "**What is the quadratic formula?**"
		case answerInput:
			t.Placeholder = `$x = \frac{-b \pm \sqrt{b^2-4ac}}{2a}$`
		case categoryInput:
			t.Placeholder = "Math (optional)"
		}
		inputs[i] = t
	}

	bulk := textarea.New()
	bulk.Placeholder = `[{"question": "2+2?", "answer": "4", "category": "Math"}]`
	bulk.SetWidth(70)
	bulk.SetHeight(10)
	bulk.CharLimit = 0

	return Model{
		ctrl:   ctrl,
		state:  study.NewState(),
		rng:    rng,
		md:     newMarkdown(),
		inputs: inputs,
		bulk:   bulk,
	}
}

// State exposes the current study state.
func (m Model) State() study.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.run(m.ctrl.Load)
}

// run executes a controller call against a snapshot of the current state.
func (m Model) run(op func(context.Context, study.State) study.State) tea.Cmd {
	snapshot := m.state
	return func() tea.Msg {
		return stateMsg{state: op(context.Background(), snapshot)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		if m.state.Mode == study.ModeBrowse {
			m.resetForms()
		}
		return m, nil

	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		width := min(msg.Width-h, 80)
		for i := range m.inputs {
			m.inputs[i].Width = width
		}
		m.bulk.SetWidth(width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state.Mode {
		case study.ModeAdd, study.ModeEdit:
			return m.updateForm(msg)
		case study.ModeBulk:
			return m.updateBulk(msg)
		case study.ModeConfirmDeleteAll:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = m.state.ClearNotice()

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "n":
		m.state = m.state.Next()
	case "left", "h", "p":
		m.state = m.state.Prev()
	case " ", "enter":
		m.state = m.state.Flip()
	case "s":
		m.state = m.state.Shuffle(m.rng)
	case "f":
		m.state = m.state.NextFilter()
	case "a":
		m.state = m.state.ToggleAdd()
		return m, m.focusInput(questionInput)
	case "e":
		m.state = m.state.OpenEdit()
		if m.state.Mode != study.ModeEdit {
			return m, nil
		}
		m.inputs[questionInput].SetValue(m.state.Draft.Question)
		m.inputs[answerInput].SetValue(m.state.Draft.Answer)
		m.inputs[categoryInput].SetValue(m.state.Draft.Category)
		return m, m.focusInput(questionInput)
	case "b":
		m.state = m.state.ToggleBulk()
		return m, m.bulk.Focus()
	case "d":
		return m, m.run(m.ctrl.DeleteCurrent)
	case "D":
		m.state = m.state.RequestDeleteAll()
	case "r":
		return m, m.run(m.ctrl.Load)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.state.CloseForms()
		m.resetForms()
		return m, nil
	case "tab", "down":
		return m, m.focusInput((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m, m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
	case "ctrl+s":
		m.state.Draft = study.Draft{
			Question: m.inputs[questionInput].Value(),
			Answer:   m.inputs[answerInput].Value(),
			Category: strings.TrimSpace(m.inputs[categoryInput].Value()),
		}
		if m.state.Mode == study.ModeEdit {
			return m, m.run(m.ctrl.Edit)
		}
		return m, m.run(m.ctrl.Add)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateBulk(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.state.CloseForms()
		m.resetForms()
		return m, nil
	case "ctrl+s":
		m.state.BulkInput = m.bulk.Value()
		return m, m.run(m.ctrl.BulkImport)
	}

	var cmd tea.Cmd
	m.bulk, cmd = m.bulk.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.run(func(ctx context.Context, s study.State) study.State {
			return m.ctrl.DeleteAll(ctx, s, func() bool { return true })
		})
	case "n", "N", "esc", "q":
		m.state = m.state.CancelDeleteAll()
	}
	return m, nil
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) resetForms() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.bulk.Blur()
	m.bulk.SetValue("")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.Loading {
		return docStyle.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("✨ Flashcards"))
	b.WriteString("\n\n")

	switch m.state.Mode {
	case study.ModeAdd, study.ModeEdit:
		b.WriteString(m.formView())
	case study.ModeBulk:
		b.WriteString(m.bulkView())
	default:
		b.WriteString(m.cardView())
	}

	if m.state.Notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.state.Notice) + "\n")
	}
	if m.state.Err != nil && m.state.Mode == study.ModeBrowse {
		b.WriteString("\n" + errorStyle.Render("Request failed: "+m.state.Err.Error()) + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) cardView() string {
	var b strings.Builder

	filter := m.state.Filter
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Category:"), filter)

	card, ok := m.state.Current()
	if !ok {
		if len(m.state.Cards) == 0 {
			b.WriteString("\nNo flashcards yet. Press a to add one or b to bulk import.\n")
		} else {
			b.WriteString("\nNo flashcard at this position. Press → to continue.\n")
		}
		b.WriteString("\n" + helpStyle.Render("a add • b bulk import • f filter • r reload • q quit"))
		return b.String()
	}

	body := m.md.Render(card.Question)
	if m.state.AnswerVisible {
		body += "\n\n" + answerStyle.Render(m.md.Render(card.Answer))
	} else {
		body += "\n\n" + labelStyle.Render("(space to reveal answer)")
	}
	b.WriteString(cardStyle.Render(body))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s  %s\n",
		labelStyle.Render(fmt.Sprintf("%d / %d", m.state.Position+1, len(m.state.Filtered()))),
		labelStyle.Render(card.Group()),
	)

	if m.state.Mode == study.ModeConfirmDeleteAll {
		b.WriteString("\n" + warnStyle.Render("Are you sure you want to delete ALL flashcards? This cannot be undone! [y/N]") + "\n")
		return b.String()
	}

	b.WriteString("\n" + helpStyle.Render("←/→ navigate • space flip • s shuffle • f filter • a add • e edit • b bulk • d delete • D delete all • q quit"))
	return b.String()
}

func (m Model) formView() string {
	var b strings.Builder
	title := "Add card"
	if m.state.Mode == study.ModeEdit {
		title = "Edit card"
	}
	b.WriteString(labelStyle.Render(title+" (Markdown & LaTeX supported)") + "\n\n")

	labels := []string{"Question", "Answer", "Category"}
	for i, input := range m.inputs {
		b.WriteString(labels[i] + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	b.WriteString(helpStyle.Render("tab next field • ctrl+s save • esc cancel"))
	return b.String()
}

func (m Model) bulkView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Paste a JSON array of flashcards") + "\n\n")
	b.WriteString(m.bulk.View() + "\n")

	if m.state.BulkError != "" {
		b.WriteString(errorStyle.Render(m.state.BulkError) + "\n")
	}

	b.WriteString(helpStyle.Render("ctrl+s import • esc cancel"))
	return b.String()
}
