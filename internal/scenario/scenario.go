// Package scenario replays a YAML description of people, families, raises
// and conversions against the domain model.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalid = errors.New("invalid scenario")
	ErrNoJob   = errors.New("no job")
)

type File struct {
	People      []PersonSpec     `yaml:"people"`
	Families    []FamilySpec     `yaml:"families"`
	Raises      []RaiseSpec      `yaml:"raises"`
	Conversions []ConversionSpec `yaml:"conversions"`
}

type PersonSpec struct {
	Key       string   `yaml:"key"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Age       int      `yaml:"age"`
	Job       *JobSpec `yaml:"job"`
}

// JobSpec sets exactly one of Hourly or Salary.
type JobSpec struct {
	Title  string   `yaml:"title"`
	Hourly *float64 `yaml:"hourly"`
	Salary *uint64  `yaml:"salary"`
}

type FamilySpec struct {
	Name     string   `yaml:"name"`
	Spouses  []string `yaml:"spouses"`
	Children []string `yaml:"children"`
}

// RaiseSpec sets exactly one of Amount or Percent.
type RaiseSpec struct {
	Person  string   `yaml:"person"`
	Amount  *float64 `yaml:"amount"`
	Percent *float64 `yaml:"percent"`
}

type ConversionSpec struct {
	Amount int    `yaml:"amount"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	// one scenario per file
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: more than one YAML document", ErrInvalid)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks shape and references; it does not apply domain rules.
func (f *File) Validate() error {
	keys := make(map[string]bool, len(f.People))
	for i, p := range f.People {
		if p.Key == "" {
			return fmt.Errorf("%w: people[%d]: missing key", ErrInvalid, i)
		}
		if keys[p.Key] {
			return fmt.Errorf("%w: people[%d]: duplicate key %q", ErrInvalid, i, p.Key)
		}
		keys[p.Key] = true
		if p.Job != nil && (p.Job.Hourly == nil) == (p.Job.Salary == nil) {
			return fmt.Errorf("%w: person %q: job needs exactly one of hourly or salary", ErrInvalid, p.Key)
		}
	}

	for i, fam := range f.Families {
		if len(fam.Spouses) != 2 {
			return fmt.Errorf("%w: families[%d]: need exactly two spouses, got %d", ErrInvalid, i, len(fam.Spouses))
		}
		for _, k := range append(append([]string{}, fam.Spouses...), fam.Children...) {
			if !keys[k] {
				return fmt.Errorf("%w: families[%d]: unknown person %q", ErrInvalid, i, k)
			}
		}
	}

	for i, r := range f.Raises {
		if !keys[r.Person] {
			return fmt.Errorf("%w: raises[%d]: unknown person %q", ErrInvalid, i, r.Person)
		}
		if (r.Amount == nil) == (r.Percent == nil) {
			return fmt.Errorf("%w: raises[%d]: need exactly one of amount or percent", ErrInvalid, i)
		}
	}
	return nil
}
