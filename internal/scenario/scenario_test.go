package scenario

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N3moAhead/household/internal/arith"
	"github.com/N3moAhead/household/internal/family"
	"github.com/N3moAhead/household/internal/job"
	"github.com/N3moAhead/household/internal/logger"
	"github.com/N3moAhead/household/internal/money"
)

func TestLoadAndRun(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "neward.yaml"))
	require.NoError(t, err)
	require.Len(t, f.People, 4)

	rep, err := Run(f, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, rep.People, 4)
	assert.Equal(t,
		"[Person: firstName:Ted lastName:Neward age:45 job:Salary(1500) spouse:Charlotte Neward]",
		rep.People[0])
	assert.Equal(t,
		"[Person: firstName:Mike lastName:Neward age:15 job:nil spouse:nil]",
		rep.People[2])

	require.Len(t, rep.Families, 1)
	fam := rep.Families[0]
	require.NoError(t, fam.Err)
	assert.Equal(t, 4, fam.Members)
	assert.Equal(t, 1500, fam.Income)
	assert.Empty(t, fam.Refused)

	require.Len(t, rep.Raises, 2)
	assert.Equal(t, "Salary(1000)", rep.Raises[0].Before)
	assert.Equal(t, "Salary(1500)", rep.Raises[0].After)
	assert.ErrorIs(t, rep.Raises[1].Err, ErrNoJob)

	require.Len(t, rep.Conversions, 3)
	assert.Equal(t, money.New(5, money.GBP), rep.Conversions[0].To)
	assert.Equal(t, money.New(12, money.CAN), rep.Conversions[1].To)
	assert.Equal(t, money.New(10, money.USD), rep.Conversions[2].To)
}

func TestRunReportsDomainRefusals(t *testing.T) {
	src := `
people:
  - {key: a, first_name: Ann, last_name: Lee, age: 20}
  - {key: b, first_name: Bo, last_name: Lee, age: 19}
  - {key: c, first_name: Cy, last_name: Lee, age: 0}
  - {key: d, first_name: Di, last_name: Ray, age: 40, job: {title: Exec, salary: 100}}
families:
  - {name: young, spouses: [a, b], children: [c]}
  - {name: again, spouses: [a, d]}
raises:
  - {person: d, amount: -500}
`
	f, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	rep, err := Run(f, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, rep.Families, 2)
	assert.Equal(t, 2, rep.Families[0].Members)
	assert.Equal(t, []string{"Cy Lee"}, rep.Families[0].Refused)
	assert.ErrorIs(t, rep.Families[1].Err, family.ErrAlreadyMarried)

	require.Len(t, rep.Raises, 1)
	assert.ErrorIs(t, rep.Raises[0].Err, job.ErrSalaryOutOfRange)
	assert.Equal(t, "Salary(100)", rep.Raises[0].After)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "young: members=2 household_income=0")
	assert.Contains(t, out, "refused child Cy Lee")
	assert.Contains(t, out, "spouse already married")
	assert.Contains(t, out, "salary out of range")
}

func TestRunReportsRangeFailures(t *testing.T) {
	src := `
people:
  - {key: a, first_name: Ann, last_name: Lee, age: 30, job: {title: Exec, salary: 9223372036854775807}}
  - {key: b, first_name: Bo, last_name: Lee, age: 30, job: {title: Clerk, salary: 10}}
families:
  - {name: rich, spouses: [a, b]}
conversions:
  - {amount: 4611686018427387904, from: GBP, to: USD}
`
	f, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	rep, err := Run(f, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, rep.Families, 1)
	assert.ErrorIs(t, rep.Families[0].IncomeErr, arith.ErrOutOfRange)
	require.Len(t, rep.Conversions, 1)
	assert.ErrorIs(t, rep.Conversions[0].Err, arith.ErrOutOfRange)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	assert.Contains(t, buf.String(), "out of range")
	assert.NotContains(t, buf.String(), "household_income=")
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field":     "people:\n  - {key: a, nickname: x}\n",
		"missing key":       "people:\n  - {first_name: Ann}\n",
		"duplicate key":     "people:\n  - {key: a}\n  - {key: a}\n",
		"job without pay":   "people:\n  - {key: a, job: {title: x}}\n",
		"job with both pay": "people:\n  - {key: a, job: {title: x, hourly: 1, salary: 2}}\n",
		"one spouse":        "people:\n  - {key: a}\nfamilies:\n  - {spouses: [a]}\n",
		"unknown child":     "people:\n  - {key: a}\n  - {key: b}\nfamilies:\n  - {spouses: [a, b], children: [z]}\n",
		"raise both":        "people:\n  - {key: a}\nraises:\n  - {person: a, amount: 1, percent: 0.1}\n",
		"raise unknown":     "raises:\n  - {person: z, amount: 1}\n",
		"two documents":     "people:\n  - {key: a}\n---\npeople:\n  - {key: b}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.People)
}
