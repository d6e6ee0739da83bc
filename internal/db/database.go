// Package db keeps the people and families of one session in memory.
// Nothing here is written to disk.
package db

import (
	"github.com/N3moAhead/household/internal/family"
	"github.com/N3moAhead/household/internal/person"
)

type Database struct {
	People   []*person.Person
	Families []*family.Family
}

func New() *Database {
	return &Database{People: []*person.Person{}, Families: []*family.Family{}}
}

func (d *Database) AddPerson(p *person.Person) {
	d.People = append(d.People, p)
}

func (d *Database) PersonByID(id string) *person.Person {
	for _, p := range d.People {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (d *Database) Name(id string) string {
	if p := d.PersonByID(id); p != nil {
		return p.FullName()
	}
	return "Unknown"
}

// Marry builds a family from two people and records it. On error nothing
// is recorded.
func (d *Database) Marry(a, b *person.Person) (*family.Family, error) {
	f, err := family.New(a, b)
	if err != nil {
		return nil, err
	}
	d.Families = append(d.Families, f)
	return f, nil
}

// FamiliesOf returns every family p belongs to, in creation order.
func (d *Database) FamiliesOf(p *person.Person) []*family.Family {
	var out []*family.Family
	for _, f := range d.Families {
		if f.Contains(p) {
			out = append(out, f)
		}
	}
	return out
}
