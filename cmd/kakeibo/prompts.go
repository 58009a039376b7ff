package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/terminal"
)

const dayFormat = "2006-01-02"

// maxPromptAttempts bounds re-prompting loops so closed or scripted
// input cannot spin forever.
const maxPromptAttempts = 5

var errTooManyAttempts = apperrors.New(apperrors.ErrCodeInvalidInput, "giving up after repeated invalid input")

// promptCategory runs the category menu, with a free-form entry
// behind the "other" choice.
func promptCategory(out *terminal.Writer) (ledger.Category, error) {
	builtins := ledger.Categories()
	items := make([]terminal.MenuItem, 0, len(builtins)+1)
	for i, c := range builtins {
		items = append(items, terminal.MenuItem{Key: strconv.Itoa(i + 1), Label: string(c)})
	}
	items = append(items, terminal.MenuItem{Key: "o", Label: "Other", Description: "enter a custom category"})

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		key := out.Menu("Category", items)
		if key == "" {
			continue
		}
		if key == "o" {
			cat, err := ledger.ParseCategory(out.Prompt("Custom category", ""))
			if err != nil {
				out.Error("%v", err)
				continue
			}
			return cat, nil
		}
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 1 || idx > len(builtins) {
			continue
		}
		return builtins[idx-1], nil
	}
	return "", errTooManyAttempts
}

// promptInfo collects the fields shared by every expense kind.
func promptInfo(out *terminal.Writer, now time.Time) (ledger.Info, error) {
	category, err := promptCategory(out)
	if err != nil {
		return ledger.Info{}, err
	}
	description := strings.TrimSpace(out.Prompt("Description", ""))
	date, err := promptDate(out, "Date", ledger.Day(now))
	if err != nil {
		return ledger.Info{}, err
	}
	return ledger.Info{Category: category, Description: description, Date: date}, nil
}

func promptDate(out *terminal.Writer, label string, def time.Time) (time.Time, error) {
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		s := strings.TrimSpace(out.Prompt(label+" (YYYY-MM-DD)", def.Format(dayFormat)))
		t, err := time.Parse(dayFormat, s)
		if err != nil {
			out.Error("not a date: %q", s)
			continue
		}
		return ledger.Day(t), nil
	}
	return time.Time{}, errTooManyAttempts
}

// promptOptionalDate accepts an empty answer and reports it as the
// zero time.
func promptOptionalDate(out *terminal.Writer, label string) (time.Time, error) {
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		s := strings.TrimSpace(out.Prompt(label+" (YYYY-MM-DD, empty for none)", ""))
		if s == "" {
			return time.Time{}, nil
		}
		t, err := time.Parse(dayFormat, s)
		if err != nil {
			out.Error("not a date: %q", s)
			continue
		}
		return ledger.Day(t), nil
	}
	return time.Time{}, errTooManyAttempts
}

// promptAmount asks until it gets a positive amount.
func promptAmount(out *terminal.Writer, label, currency string) (money.Cents, error) {
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		s := strings.TrimSpace(out.Prompt(fmt.Sprintf("%s (%s)", label, currency), ""))
		if s == "" {
			out.Error("an amount is required")
			continue
		}
		v, err := money.Parse(s)
		if err != nil {
			out.Error("%v", err)
			continue
		}
		if v <= 0 {
			out.Error("the amount must be positive")
			continue
		}
		return v, nil
	}
	return 0, errTooManyAttempts
}

func promptName(out *terminal.Writer, label string) (string, error) {
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		s := strings.TrimSpace(out.Prompt(label, ""))
		if s == "" {
			out.Error("a name is required")
			continue
		}
		return s, nil
	}
	return "", errTooManyAttempts
}

// promptPeople collects participant names until an empty answer.
func promptPeople(out *terminal.Writer) []string {
	out.Info("Who shared this expense with you? An empty name finishes the list.")
	var people []string
	for {
		name := strings.TrimSpace(out.Prompt(fmt.Sprintf("Participant %d", len(people)+1), ""))
		if name == "" {
			return people
		}
		if slices.Contains(people, name) {
			out.Warn("%s is already on the list", name)
			continue
		}
		people = append(people, name)
	}
}

// promptInterval asks for a repetition like "every 2 weeks".
func promptInterval(out *terminal.Writer) (ledger.Interval, error) {
	count := 0
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		s := strings.TrimSpace(out.Prompt("Repeats every (count)", "1"))
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			out.Error("the count must be a whole number of at least 1")
			continue
		}
		count = n
		break
	}
	if count == 0 {
		return ledger.Interval{}, errTooManyAttempts
	}

	items := []terminal.MenuItem{
		{Key: "d", Label: "Days"},
		{Key: "w", Label: "Weeks"},
		{Key: "m", Label: "Months"},
		{Key: "y", Label: "Years"},
	}
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		switch out.Menu("Unit", items) {
		case "d":
			return ledger.Interval{Count: count, Unit: ledger.UnitDays}, nil
		case "w":
			return ledger.Interval{Count: count, Unit: ledger.UnitWeeks}, nil
		case "m":
			return ledger.Interval{Count: count, Unit: ledger.UnitMonths}, nil
		case "y":
			return ledger.Interval{Count: count, Unit: ledger.UnitYears}, nil
		}
	}
	return ledger.Interval{}, errTooManyAttempts
}
