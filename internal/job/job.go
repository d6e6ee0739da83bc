package job

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/N3moAhead/household/internal/arith"
)

var ErrSalaryOutOfRange = fmt.Errorf("salary %w", arith.ErrOutOfRange)

// Compensation is either Hourly or Salary.
type Compensation interface {
	isCompensation()
}

type Hourly struct {
	Rate float64
}

type Salary struct {
	Amount uint64
}

func (Hourly) isCompensation() {}
func (Salary) isCompensation() {}

type Job struct {
	Title        string
	Compensation Compensation
}

func New(title string, c Compensation) *Job {
	return &Job{Title: title, Compensation: c}
}

// CalculateIncome returns the fixed salary, or the hourly rate times hours
// truncated toward zero. It panics when the income does not fit an int;
// Income returns that error instead.
func (j *Job) CalculateIncome(hours int) int {
	income, err := j.Income(hours)
	if err != nil {
		panic(err)
	}
	return income
}

func (j *Job) Income(hours int) (int, error) {
	var (
		income int
		err    error
	)
	switch c := j.Compensation.(type) {
	case Salary:
		income, err = arith.FromUint64(c.Amount)
	case Hourly:
		income, err = arith.Trunc(c.Rate * float64(hours))
	default:
		panic(fmt.Sprintf("job: unknown compensation %T", j.Compensation))
	}
	if err != nil {
		return 0, fmt.Errorf("income of %q: %w", j.Title, err)
	}
	return income, nil
}

// RaiseByAmount adds amount to the rate or salary. A salary that would
// leave the uint64 range is rejected and the job is left as it was.
func (j *Job) RaiseByAmount(amount float64) error {
	switch c := j.Compensation.(type) {
	case Hourly:
		j.Compensation = Hourly{Rate: c.Rate + amount}
	case Salary:
		s, err := toSalary(float64(c.Amount) + amount)
		if err != nil {
			return fmt.Errorf("raise %q by %v: %w", j.Title, amount, err)
		}
		j.Compensation = s
	default:
		panic(fmt.Sprintf("job: unknown compensation %T", j.Compensation))
	}
	return nil
}

// RaiseByPercent scales the rate or salary by (1 + percent). percent is a
// fraction: 0.1 is ten percent.
func (j *Job) RaiseByPercent(percent float64) error {
	switch c := j.Compensation.(type) {
	case Hourly:
		j.Compensation = Hourly{Rate: c.Rate * (1 + percent)}
	case Salary:
		s, err := toSalary(float64(c.Amount) * (1 + percent))
		if err != nil {
			return fmt.Errorf("raise %q by %v%%: %w", j.Title, percent*100, err)
		}
		j.Compensation = s
	default:
		panic(fmt.Sprintf("job: unknown compensation %T", j.Compensation))
	}
	return nil
}

// 2^64, the first float64 past the uint64 range.
const salaryLimit = 18446744073709551616.0

func toSalary(v float64) (Salary, error) {
	t := math.Trunc(v)
	if math.IsNaN(t) || t < 0 || t >= salaryLimit {
		return Salary{}, fmt.Errorf("%w: %v", ErrSalaryOutOfRange, v)
	}
	return Salary{Amount: uint64(t)}, nil
}

// Summary renders the compensation as Hourly(rate) or Salary(amount).
func (j *Job) Summary() string {
	return Describe(j.Compensation)
}

func Describe(c Compensation) string {
	switch c := c.(type) {
	case Hourly:
		return "Hourly(" + formatRate(c.Rate) + ")"
	case Salary:
		return "Salary(" + strconv.FormatUint(c.Amount, 10) + ")"
	default:
		return "nil"
	}
}

// formatRate keeps a trailing ".0" on whole rates: 10 prints as 10.0.
func formatRate(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if math.IsInf(r, 0) || math.IsNaN(r) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
