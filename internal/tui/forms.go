package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/N3moAhead/household/internal/job"
)

var errEmpty = errors.New("value required")

func parseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("age: %w", errEmpty)
	}
	age, err := strconv.Atoi(s)
	if err != nil || age < 0 {
		return 0, fmt.Errorf("age: %q is not a whole number of years", s)
	}
	return age, nil
}

// parseCompensation reads "15.5/h" as hourly and a bare whole number as
// salary.
func parseCompensation(s string) (job.Compensation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("pay: %w", errEmpty)
	}
	if rate, ok := strings.CutSuffix(s, "/h"); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
		if err != nil {
			return nil, fmt.Errorf("pay: %q is not an hourly rate", s)
		}
		return job.Hourly{Rate: r}, nil
	}
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("pay: %q is not a salary", s)
	}
	return job.Salary{Amount: amount}, nil
}

// parseRaise reads "10%" as a percent raise (0.1) and anything else as an
// absolute amount.
func parseRaise(s string) (value float64, percent bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, fmt.Errorf("raise: %w", errEmpty)
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false, fmt.Errorf("raise: %q is not a percentage", s)
		}
		return v / 100, true, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("raise: %q is not an amount", s)
	}
	return v, false, nil
}

func focusFirst(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Reset()
		inputs[i].Blur()
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
}

// focusNext moves focus to the next input, wrapping after the last one.
func focusNext(inputs []textinput.Model) {
	for i := range inputs {
		if inputs[i].Focused() {
			inputs[i].Blur()
			inputs[(i+1)%len(inputs)].Focus()
			return
		}
	}
	inputs[0].Focus()
}

func focusedIndex(inputs []textinput.Model) int {
	for i := range inputs {
		if inputs[i].Focused() {
			return i
		}
	}
	return -1
}

func updateInputs(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}
