// Package tui is the interactive front end: a list of people with views to
// hire, marry, add children, raise pay and convert money.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/N3moAhead/household/internal/db"
	"github.com/N3moAhead/household/internal/logger"
	"github.com/N3moAhead/household/internal/money"
	"github.com/N3moAhead/household/internal/person"
)

type Deps struct {
	Logger          *logger.Logger
	DefaultCurrency money.Currency
}

const listTitle = "Household"

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	headerStyle = lipgloss.NewStyle().Underline(true)
)

type sessionState int

const (
	viewList sessionState = iota
	viewDetail
	viewCreatePerson
	viewAssignJob
	viewRaise
	viewSelectPartner
	viewSelectChild
	viewFamilies
	viewConvert
)

type model struct {
	state    sessionState
	db       *db.Database
	log      *logger.Logger
	list     list.Model
	// ID of the currently viewed person
	selectedID string

	// create person: first name, last name, age
	personInputs []textinput.Model
	// assign job: title, pay
	jobInputs []textinput.Model
	raiseInput textinput.Model
	// convert: amount, from, to
	convertInputs []textinput.Model
	convertResult string

	status    string
	statusErr bool
}

func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	cur := deps.DefaultCurrency
	if cur == "" {
		cur = money.USD
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = listTitle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new person")),
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "families")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "convert")),
		}
	}

	return model{
		state: viewList,
		db:    db.New(),
		log:   log,
		list:  l,
		personInputs: []textinput.Model{
			newInput("First name", 0),
			newInput("Last name", 0),
			newInput("Age", 3),
		},
		jobInputs: []textinput.Model{
			newInput("Job title", 0),
			newInput("Pay: 15.50/h for hourly, 52000 for salary", 0),
		},
		raiseInput: newInput("Raise: 10% or 250", 0),
		convertInputs: []textinput.Model{
			newInput("Amount", 0),
			newInputValue("From", string(money.USD)),
			newInputValue("To", string(cur)),
		},
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	return ti
}

func newInputValue(placeholder, value string) textinput.Model {
	ti := newInput(placeholder, 3)
	ti.SetValue(value)
	return ti
}

// current resolves the viewed person from the database, nil when nothing
// is selected.
func (m model) current() *person.Person {
	return m.db.PersonByID(m.selectedID)
}

func (m model) Init() tea.Cmd {
	return nil
}

func peopleToItems(people []*person.Person) []list.Item {
	items := make([]list.Item, len(people))
	for i, p := range people {
		items[i] = p
	}
	return items
}
