package scenario

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/N3moAhead/household/internal/db"
	"github.com/N3moAhead/household/internal/job"
	"github.com/N3moAhead/household/internal/logger"
	"github.com/N3moAhead/household/internal/money"
	"github.com/N3moAhead/household/internal/person"
)

type Report struct {
	People      []string
	Families    []FamilyResult
	Raises      []RaiseResult
	Conversions []ConversionResult
}

type FamilyResult struct {
	Name      string
	Members   int
	Income    int
	Refused   []string
	Err       error
	IncomeErr error // household income left the int range
}

type RaiseResult struct {
	Person string
	Before string
	After  string
	Err    error
}

type ConversionResult struct {
	From money.Money
	To   money.Money
	Err  error
}

// Run applies the scenario in order: people, families, raises,
// conversions. Domain refusals end up in the report, not in the error.
func Run(f *File, log *logger.Logger) (*Report, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	d := db.New()
	byKey := make(map[string]*person.Person, len(f.People))
	for _, ps := range f.People {
		p := person.New(ps.FirstName, ps.LastName, ps.Age)
		if ps.Job != nil {
			p.SetJob(buildJob(ps.Job))
			if p.Job() == nil {
				log.Debug("job refused by age gate", "person", ps.Key, "age", ps.Age)
			}
		}
		d.AddPerson(p)
		byKey[ps.Key] = p
	}

	rep := &Report{}
	familyIdx := make([]int, 0, len(f.Families))
	for _, fs := range f.Families {
		res := FamilyResult{Name: fs.Name}
		fam, err := d.Marry(byKey[fs.Spouses[0]], byKey[fs.Spouses[1]])
		if err != nil {
			log.Warn("family not formed", "family", fs.Name, "error", err)
			res.Err = err
			rep.Families = append(rep.Families, res)
			familyIdx = append(familyIdx, -1)
			continue
		}
		for _, ck := range fs.Children {
			if !fam.HaveChild(byKey[ck]) {
				log.Info("child refused", "family", fs.Name, "child", ck)
				res.Refused = append(res.Refused, byKey[ck].FullName())
			}
		}
		rep.Families = append(rep.Families, res)
		familyIdx = append(familyIdx, len(d.Families)-1)
	}

	for _, rs := range f.Raises {
		p := byKey[rs.Person]
		res := RaiseResult{Person: p.FullName()}
		j := p.Job()
		if j == nil {
			res.Err = fmt.Errorf("%s: %w", p.FullName(), ErrNoJob)
			rep.Raises = append(rep.Raises, res)
			continue
		}
		res.Before = j.Summary()
		var err error
		if rs.Amount != nil {
			err = j.RaiseByAmount(*rs.Amount)
		} else {
			err = j.RaiseByPercent(*rs.Percent)
		}
		if err != nil {
			log.Warn("raise failed", "person", rs.Person, "error", err)
			res.Err = err
		}
		res.After = j.Summary()
		rep.Raises = append(rep.Raises, res)
	}

	for _, cs := range f.Conversions {
		from := money.New(cs.Amount, currencyOf(cs.From))
		to, err := from.ConvertChecked(currencyOf(cs.To))
		if err != nil {
			log.Warn("conversion failed", "from", from.String(), "error", err)
		}
		rep.Conversions = append(rep.Conversions, ConversionResult{From: from, To: to, Err: err})
	}

	for i, idx := range familyIdx {
		if idx < 0 {
			continue
		}
		fam := d.Families[idx]
		rep.Families[i].Members = fam.Len()
		income, err := fam.TotalIncome()
		if err != nil {
			log.Warn("household income failed", "family", rep.Families[i].Name, "error", err)
		}
		rep.Families[i].Income = income
		rep.Families[i].IncomeErr = err
	}
	for _, p := range d.People {
		rep.People = append(rep.People, p.String())
	}

	log.Debug("scenario replayed", "people", len(d.People), "families", len(d.Families))
	return rep, nil
}

func buildJob(js *JobSpec) *job.Job {
	if js.Hourly != nil {
		return job.New(js.Title, job.Hourly{Rate: *js.Hourly})
	}
	return job.New(js.Title, job.Salary{Amount: *js.Salary})
}

// currencyOf normalises known codes and passes unknown ones through so
// Convert can apply its unchanged-value rule.
func currencyOf(s string) money.Currency {
	if c, err := money.ParseCurrency(s); err == nil {
		return c
	}
	return money.Currency(s)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

func (r *Report) Render(w io.Writer) error {
	var out string
	out += headingStyle.Render("People") + "\n"
	for _, p := range r.People {
		out += "  " + p + "\n"
	}

	if len(r.Families) > 0 {
		out += "\n" + headingStyle.Render("Families") + "\n"
		for _, f := range r.Families {
			if f.Err != nil {
				out += "  " + failStyle.Render(fmt.Sprintf("%s: %v", f.Name, f.Err)) + "\n"
				continue
			}
			if f.IncomeErr != nil {
				out += fmt.Sprintf("  %s: members=%d ", f.Name, f.Members) + failStyle.Render(f.IncomeErr.Error()) + "\n"
			} else {
				out += fmt.Sprintf("  %s: members=%d household_income=%d\n", f.Name, f.Members, f.Income)
			}
			for _, c := range f.Refused {
				out += "    " + failStyle.Render("refused child "+c) + "\n"
			}
		}
	}

	if len(r.Raises) > 0 {
		out += "\n" + headingStyle.Render("Raises") + "\n"
		for _, rr := range r.Raises {
			if rr.Err != nil {
				out += "  " + failStyle.Render(fmt.Sprintf("%s: %v", rr.Person, rr.Err)) + "\n"
				continue
			}
			out += fmt.Sprintf("  %s: %s -> %s\n", rr.Person, rr.Before, rr.After)
		}
	}

	if len(r.Conversions) > 0 {
		out += "\n" + headingStyle.Render("Conversions") + "\n"
		for _, c := range r.Conversions {
			if c.Err != nil {
				out += "  " + failStyle.Render(c.Err.Error()) + "\n"
				continue
			}
			out += fmt.Sprintf("  %s -> %s\n", c.From, c.To)
		}
	}

	_, err := io.WriteString(w, out)
	return err
}
