package person

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/N3moAhead/household/internal/job"
)

// AdultAge is the minimum age to hold a job or a spouse.
const AdultAge = 18

type Person struct {
	ID        string
	FirstName string
	LastName  string
	Age       int

	job    *job.Job
	spouse *Person
}

func New(firstName, lastName string, age int) *Person {
	return &Person{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}
}

func (p *Person) Job() *job.Job { return p.job }

// SetJob stores j only when the person is an adult at the time of the
// call; otherwise the job is cleared.
func (p *Person) SetJob(j *job.Job) {
	if p.Age >= AdultAge {
		p.job = j
	} else {
		p.job = nil
	}
}

func (p *Person) Spouse() *Person { return p.spouse }

// SetSpouse follows the same age gate as SetJob. It only sets this side
// of the relationship.
func (p *Person) SetSpouse(s *Person) {
	if p.Age >= AdultAge {
		p.spouse = s
	} else {
		p.spouse = nil
	}
}

func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Person) String() string {
	jobStr := "nil"
	if p.job != nil {
		jobStr = p.job.Summary()
	}
	spouseStr := "nil"
	if p.spouse != nil {
		spouseStr = p.spouse.FullName()
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		p.FirstName, p.LastName, p.Age, jobStr, spouseStr)
}

// Implement list.Item interface
func (p *Person) Title() string { return p.FullName() }
func (p *Person) Description() string {
	d := fmt.Sprintf("age %d", p.Age)
	if p.job != nil {
		d += " · " + p.job.Title + " " + p.job.Summary()
	}
	if p.spouse != nil {
		d += " · married to " + p.spouse.FullName()
	}
	return d
}
func (p *Person) FilterValue() string { return p.FullName() }
