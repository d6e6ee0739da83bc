package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/N3moAhead/household/internal/family"
)

func (m model) View() string {
	switch m.state {
	case viewList, viewSelectPartner, viewSelectChild:
		return docStyle.Render(m.list.View() + m.statusLine())

	case viewDetail:
		return docStyle.Render(m.detailView())

	case viewCreatePerson:
		return docStyle.Render(fmt.Sprintf(
			"New person\n\n%s\n\n%s%s",
			inputsView(m.personInputs),
			infoStyle.Render("tab: next field | enter: save | esc: cancel"),
			m.statusLine(),
		))

	case viewAssignJob:
		return docStyle.Render(fmt.Sprintf(
			"Job for %s\n\n%s\n\n%s%s",
			m.db.Name(m.selectedID),
			inputsView(m.jobInputs),
			infoStyle.Render("tab: next field | enter: save | esc: cancel"),
			m.statusLine(),
		))

	case viewRaise:
		return docStyle.Render(fmt.Sprintf(
			"Raise for %s (currently %s)\n\n%s\n\n%s%s",
			m.db.Name(m.selectedID),
			m.current().Job().Summary(),
			m.raiseInput.View(),
			infoStyle.Render("enter: apply | esc: cancel"),
			m.statusLine(),
		))

	case viewFamilies:
		return docStyle.Render(m.familiesView())

	case viewConvert:
		s := "Convert money (via USD)\n\n" + inputsView(m.convertInputs) + "\n\n"
		if m.convertResult != "" {
			s += m.convertResult + "\n\n"
		}
		s += infoStyle.Render("tab: next field | enter: convert | esc: back")
		return docStyle.Render(s)
	}
	return ""
}

func (m model) detailView() string {
	p := m.current()
	if p == nil {
		return "Error: no person selected"
	}
	s := titleStyle.Render(p.FullName()) + "\n"
	s += infoStyle.Render(p.String()) + "\n\n"

	if j := p.Job(); j != nil {
		s += fmt.Sprintf("Job: %s, %s\n", j.Title, j.Summary())
	} else {
		s += "Job: none\n"
	}
	if sp := p.Spouse(); sp != nil {
		s += "Spouse: " + sp.FullName() + "\n"
	} else {
		s += "Spouse: none\n"
	}

	s += "\n" + headerStyle.Render("Families:") + "\n"
	fams := m.db.FamiliesOf(p)
	if len(fams) == 0 {
		s += infoStyle.Render("No families yet.") + "\n"
	}
	for _, f := range fams {
		s += familyView(f)
	}

	s += "\n" + infoStyle.Render("ESC: back | j: job | x: remove job | r: raise | m: marry | k: have child")
	return s + m.statusLine()
}

func (m model) familiesView() string {
	s := titleStyle.Render("Families") + "\n\n"
	if len(m.db.Families) == 0 {
		s += infoStyle.Render("No families yet.") + "\n"
	}
	for _, f := range m.db.Families {
		s += familyView(f) + "\n"
	}
	return s + "\n" + infoStyle.Render("ESC: back")
}

func familyView(f *family.Family) string {
	var b strings.Builder
	for _, it := range f.Items() {
		b.WriteString("  " + it.Title() + "\n")
	}
	income, err := f.TotalIncome()
	if err != nil {
		b.WriteString("  " + errorStyle.Render(err.Error()) + "\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  household income: %d\n", income))
	return b.String()
}

func inputsView(inputs []textinput.Model) string {
	views := make([]string, len(inputs))
	for i := range inputs {
		views[i] = inputs[i].View()
	}
	return strings.Join(views, "\n")
}

func (m model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return "\n" + errorStyle.Render(m.status)
	}
	return "\n" + okStyle.Render(m.status)
}
