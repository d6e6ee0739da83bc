package family

import (
	"errors"
	"fmt"

	"github.com/N3moAhead/household/internal/arith"
	"github.com/N3moAhead/household/internal/person"
)

const (
	// HouseholdHours is the yearly hour basis used for household income.
	HouseholdHours = 2000
	// ParentAge is the minimum age at least one member needs before a
	// child can be added.
	ParentAge = 21
)

var (
	ErrAlreadyMarried = errors.New("spouse already married")
	ErrNilMember      = errors.New("nil family member")
)

type Family struct {
	members []*person.Person
}

// New links the two spouses to each other through their own setters and
// seeds the member list with them in order. Underage spouses keep a nil
// spouse link but are still members.
func New(spouse1, spouse2 *person.Person) (*Family, error) {
	if spouse1 == nil || spouse2 == nil {
		return nil, ErrNilMember
	}
	if spouse1.Spouse() != nil || spouse2.Spouse() != nil {
		return nil, fmt.Errorf("new family of %s and %s: %w",
			spouse1.FullName(), spouse2.FullName(), ErrAlreadyMarried)
	}

	spouse1.SetSpouse(spouse2)
	spouse2.SetSpouse(spouse1)

	return &Family{members: []*person.Person{spouse1, spouse2}}, nil
}

// MustNew is like New but panics if the spouses cannot marry.
func MustNew(spouse1, spouse2 *person.Person) *Family {
	f, err := New(spouse1, spouse2)
	if err != nil {
		panic(err)
	}
	return f
}

// HaveChild appends child if any member is at least ParentAge. The child
// is not checked for existing membership.
func (f *Family) HaveChild(child *person.Person) bool {
	for _, m := range f.members {
		if m.Age >= ParentAge {
			f.members = append(f.members, child)
			return true
		}
	}
	return false
}

// HouseholdIncome sums every employed member's income over
// HouseholdHours. It panics when the sum does not fit an int;
// TotalIncome returns that error instead.
func (f *Family) HouseholdIncome() int {
	total, err := f.TotalIncome()
	if err != nil {
		panic(err)
	}
	return total
}

func (f *Family) TotalIncome() (int, error) {
	total := 0
	for _, m := range f.members {
		j := m.Job()
		if j == nil {
			continue
		}
		income, err := j.Income(HouseholdHours)
		if err != nil {
			return 0, err
		}
		if total, err = arith.Add(total, income); err != nil {
			return 0, fmt.Errorf("household income: %w", err)
		}
	}
	return total, nil
}

// Members returns a copy of the member list.
func (f *Family) Members() []*person.Person {
	out := make([]*person.Person, len(f.members))
	copy(out, f.members)
	return out
}

func (f *Family) Len() int { return len(f.members) }

func (f *Family) Contains(p *person.Person) bool {
	for _, m := range f.members {
		if m == p {
			return true
		}
	}
	return false
}
