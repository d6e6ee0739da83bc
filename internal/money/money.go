package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/N3moAhead/household/internal/arith"
)

type Currency string

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	CAN Currency = "CAN"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Money is an amount in a currency. Operations return new values.
type Money struct {
	Amount   int
	Currency Currency
}

func New(amount int, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Currencies lists the codes Convert understands, pivot first.
func Currencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Currencies() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

// Convert routes through USD. An unknown source or target currency
// returns m unchanged. Fractions are truncated toward zero at each stage.
// It panics with an error wrapping arith.ErrOutOfRange when the amount
// leaves the int range; ConvertChecked returns that error instead.
func (m Money) Convert(target Currency) Money {
	return must(m.ConvertChecked(target))
}

func (m Money) ConvertChecked(target Currency) (Money, error) {
	var (
		usd int
		err error
	)
	switch m.Currency {
	case USD:
		usd = m.Amount
	case GBP:
		usd, err = arith.Mul(m.Amount, 2)
	case EUR:
		usd, err = arith.Trunc(float64(m.Amount) / 1.5)
	case CAN:
		usd, err = arith.Trunc(float64(m.Amount) / 1.25)
	default:
		return m, nil
	}
	if err != nil {
		return Money{}, fmt.Errorf("convert %s to USD: %w", m, err)
	}

	out := Money{Currency: target}
	switch target {
	case USD:
		out.Amount = usd
	case GBP:
		out.Amount = usd / 2
	case EUR:
		out.Amount, err = arith.Trunc(float64(usd) * 1.5)
	case CAN:
		out.Amount, err = arith.Trunc(float64(usd) * 1.25)
	default:
		return m, nil
	}
	if err != nil {
		return Money{}, fmt.Errorf("convert %s to %s: %w", m, target, err)
	}
	return out, nil
}

// Add sums both values in USD and expresses the result in other's currency.
func (m Money) Add(other Money) Money {
	return must(m.AddChecked(other))
}

func (m Money) AddChecked(other Money) (Money, error) {
	a, b, err := bothInUSD(m, other)
	if err != nil {
		return Money{}, err
	}
	total, err := arith.Add(a, b)
	if err != nil {
		return Money{}, fmt.Errorf("add %s to %s: %w", other, m, err)
	}
	return Money{Amount: total, Currency: USD}.ConvertChecked(other.Currency)
}

// Subtract computes m - other in USD and expresses the result in other's
// currency. The result may be negative.
func (m Money) Subtract(other Money) Money {
	return must(m.SubtractChecked(other))
}

func (m Money) SubtractChecked(other Money) (Money, error) {
	a, b, err := bothInUSD(m, other)
	if err != nil {
		return Money{}, err
	}
	diff, err := arith.Sub(a, b)
	if err != nil {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", other, m, err)
	}
	return Money{Amount: diff, Currency: USD}.ConvertChecked(other.Currency)
}

func bothInUSD(a, b Money) (int, int, error) {
	ua, err := a.ConvertChecked(USD)
	if err != nil {
		return 0, 0, err
	}
	ub, err := b.ConvertChecked(USD)
	if err != nil {
		return 0, 0, err
	}
	return ua.Amount, ub.Amount, nil
}

func must(m Money, err error) Money {
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
