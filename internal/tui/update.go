package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/N3moAhead/household/internal/family"
	"github.com/N3moAhead/household/internal/job"
	"github.com/N3moAhead/household/internal/money"
	"github.com/N3moAhead/household/internal/person"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(ws.Width-h, ws.Height-v)
	}

	switch m.state {
	case viewList:
		return m.updateList(msg)
	case viewDetail:
		return m.updateDetail(msg)
	case viewCreatePerson:
		return m.updateCreatePerson(msg)
	case viewAssignJob:
		return m.updateAssignJob(msg)
	case viewRaise:
		return m.updateRaise(msg)
	case viewSelectPartner, viewSelectChild:
		return m.updateSelect(msg)
	case viewFamilies:
		if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "esc" || k.String() == "q") {
			m.state = viewList
		}
		return m, nil
	case viewConvert:
		return m.updateConvert(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch k.String() {
		case "n":
			m.state = viewCreatePerson
			focusFirst(m.personInputs)
			m.clearStatus()
			return m, nil
		case "f":
			m.state = viewFamilies
			return m, nil
		case "c":
			m.state = viewConvert
			m.convertResult = ""
			for i := range m.convertInputs {
				m.convertInputs[i].Blur()
			}
			m.convertInputs[0].Focus()
			return m, nil
		case "enter":
			if p, ok := m.list.SelectedItem().(*person.Person); ok {
				m.selectedID = p.ID
				m.state = viewDetail
				m.clearStatus()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "esc", "q":
		m.state = viewList
		m.selectedID = ""
		m.clearStatus()
		return m, m.refreshList()
	case "j":
		m.state = viewAssignJob
		focusFirst(m.jobInputs)
		m.clearStatus()
	case "x":
		m.current().SetJob(nil)
		m.setStatus("job removed", false)
	case "r":
		if m.current().Job() == nil {
			m.setStatus(m.db.Name(m.selectedID)+" has no job", true)
			return m, nil
		}
		m.state = viewRaise
		m.raiseInput.Reset()
		m.raiseInput.Focus()
		m.clearStatus()
	case "m":
		m.state = viewSelectPartner
		m.list.Title = "Choose a partner for " + m.db.Name(m.selectedID)
		m.list.ResetSelected()
		m.clearStatus()
	case "k":
		if len(m.db.FamiliesOf(m.current())) == 0 {
			m.setStatus(m.db.Name(m.selectedID)+" has no family yet", true)
			return m, nil
		}
		m.state = viewSelectChild
		m.list.Title = "Choose a child for the family of " + m.db.Name(m.selectedID)
		m.list.ResetSelected()
		m.clearStatus()
	}
	return m, nil
}

func (m model) updateCreatePerson(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.state = viewList
			return m, nil
		case "tab":
			focusNext(m.personInputs)
			return m, nil
		case "enter":
			if focusedIndex(m.personInputs) < len(m.personInputs)-1 {
				focusNext(m.personInputs)
				return m, nil
			}
			first := strings.TrimSpace(m.personInputs[0].Value())
			last := strings.TrimSpace(m.personInputs[1].Value())
			age, err := parseAge(m.personInputs[2].Value())
			if err == nil && first == "" {
				err = fmt.Errorf("first name: %w", errEmpty)
			}
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			p := person.New(first, last, age)
			m.db.AddPerson(p)
			m.log.Info("person created", "id", p.ID, "age", age)
			m.state = viewList
			m.setStatus("added "+p.FullName(), false)
			return m, m.refreshList()
		}
	}
	return m, updateInputs(m.personInputs, msg)
}

func (m model) updateAssignJob(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.state = viewDetail
			return m, nil
		case "tab":
			focusNext(m.jobInputs)
			return m, nil
		case "enter":
			if focusedIndex(m.jobInputs) < len(m.jobInputs)-1 {
				focusNext(m.jobInputs)
				return m, nil
			}
			title := strings.TrimSpace(m.jobInputs[0].Value())
			c, err := parseCompensation(m.jobInputs[1].Value())
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.current().SetJob(job.New(title, c))
			m.state = viewDetail
			if m.current().Job() == nil {
				m.log.Debug("job refused by age gate", "id", m.selectedID, "age", m.current().Age)
				m.setStatus(fmt.Sprintf("%s is under %d and cannot hold a job", m.db.Name(m.selectedID), person.AdultAge), true)
			} else {
				m.setStatus("hired as "+title, false)
			}
			return m, nil
		}
	}
	return m, updateInputs(m.jobInputs, msg)
}

func (m model) updateRaise(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.state = viewDetail
			return m, nil
		case "enter":
			v, percent, err := parseRaise(m.raiseInput.Value())
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			j := m.current().Job()
			if percent {
				err = j.RaiseByPercent(v)
			} else {
				err = j.RaiseByAmount(v)
			}
			m.state = viewDetail
			if err != nil {
				m.log.Warn("raise failed", "id", m.selectedID, "error", err)
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus("pay is now "+j.Summary(), false)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.raiseInput, cmd = m.raiseInput.Update(msg)
	return m, cmd
}

func (m model) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch k.String() {
		case "esc":
			m.state = viewDetail
			m.list.Title = listTitle
			return m, nil
		case "enter":
			target, ok := m.list.SelectedItem().(*person.Person)
			if !ok {
				return m, nil
			}
			if m.state == viewSelectPartner {
				if target.ID == m.selectedID {
					return m, nil
				}
				m.marry(target)
			} else {
				m.addChild(target)
			}
			m.state = viewDetail
			m.list.Title = listTitle
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) marry(partner *person.Person) {
	f, err := m.db.Marry(m.current(), partner)
	if err != nil {
		m.log.Warn("family not formed", "id", m.selectedID, "partner", partner.ID, "error", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.log.Info("family formed", "members", f.Len())
	if m.current().Spouse() == nil || partner.Spouse() == nil {
		m.setStatus("family formed, but a spouse under 18 could not take the link", true)
		return
	}
	m.setStatus(fmt.Sprintf("%s and %s are now a family", m.db.Name(m.selectedID), partner.FullName()), false)
}

// addChild adds to the most recent family of the selected person.
func (m *model) addChild(child *person.Person) {
	fams := m.db.FamiliesOf(m.current())
	f := fams[len(fams)-1]
	if !f.HaveChild(child) {
		m.log.Info("child refused", "child", child.ID)
		m.setStatus(fmt.Sprintf("refused: nobody in the family is %d or older", family.ParentAge), true)
		return
	}
	m.setStatus(child.FullName()+" joined the family", false)
}

func (m model) updateConvert(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.state = viewList
			return m, nil
		case "tab":
			focusNext(m.convertInputs)
			return m, nil
		case "enter":
			m.convertResult = m.convert()
			return m, nil
		}
	}
	return m, updateInputs(m.convertInputs, msg)
}

func (m model) convert() string {
	amount, err := strconv.Atoi(strings.TrimSpace(m.convertInputs[0].Value()))
	if err != nil {
		return errorStyle.Render("amount must be a whole number")
	}
	from, err := money.ParseCurrency(m.convertInputs[1].Value())
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	to, err := money.ParseCurrency(m.convertInputs[2].Value())
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	in := money.New(amount, from)
	out, err := in.ConvertChecked(to)
	if err != nil {
		m.log.Warn("conversion failed", "amount", in.String(), "to", to, "error", err)
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("%s -> %s", in, out)
}

func (m *model) refreshList() tea.Cmd {
	return m.list.SetItems(peopleToItems(m.db.People))
}

func (m *model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
