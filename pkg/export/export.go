// Package export renders the ledger to spreadsheet formats: a
// multi-sheet xlsx workbook or a flat csv dump.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// Format selects the output file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidInput, "format must be xlsx or csv").
		WithContext("format", s)
}

// Options control how amounts and the user are labeled.
type Options struct {
	// UserName labels the payer's rows in group sheets.
	UserName string
	// Sep is the decimal separator for csv amounts.
	Sep rune
}

func (o Options) userLabel() string {
	if o.UserName != "" {
		return o.UserName
	}
	return "you"
}

// Write renders the ledger to path and returns the number of data
// rows written.
func Write(l *ledger.Ledger, path string, format Format, opts Options) (int, error) {
	switch format {
	case FormatXLSX:
		return writeXLSX(l, path, opts)
	case FormatCSV:
		return writeCSV(l, path, opts)
	}
	return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "format must be xlsx or csv").
		WithContext("format", string(format))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// writeXLSX writes one sheet per record kind plus a balances sheet.
func writeXLSX(l *ledger.Ledger, path string, opts Options) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	rows := 0
	setRow := func(sheet string, row int, values ...any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			switch v := v.(type) {
			case money.Cents:
				if err := f.SetCellFloat(sheet, cell, float64(v)/100, 2, 64); err != nil {
					return err
				}
			default:
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
		return nil
	}

	err := func() error {
		if err := f.SetSheetName("Sheet1", "Singles"); err != nil {
			return err
		}
		for _, sheet := range []string{"Groups", "Recurring", "Debts", "Advancements", "Balances"} {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		if err := setRow("Singles", 1, "ID", "Date", "Category", "Description", "Amount"); err != nil {
			return err
		}
		for i, s := range l.Singles {
			if err := setRow("Singles", i+2, s.ID, formatDate(s.Info.Date), string(s.Info.Category), s.Info.Description, s.Amount); err != nil {
				return err
			}
			rows++
		}

		if err := setRow("Groups", 1, "ID", "Date", "Category", "Description", "Person", "Raw", "Share", "Paid"); err != nil {
			return err
		}
		row := 2
		for i := range l.Groups {
			g := &l.Groups[i]
			shares, err := g.ShareCents()
			if err != nil {
				return err
			}
			if err := setRow("Groups", row, g.ID, formatDate(g.Info.Date), string(g.Info.Category), g.Info.Description,
				opts.userLabel(), g.UserRaw, shares[0], g.Total); err != nil {
				return err
			}
			row++
			rows++
			for j, person := range g.People {
				if err := setRow("Groups", row, g.ID, formatDate(g.Info.Date), string(g.Info.Category), g.Info.Description,
					person, g.RawShares[j], shares[j+1], g.Paid[j]); err != nil {
					return err
				}
				row++
				rows++
			}
		}

		if err := setRow("Recurring", 1, "ID", "Start", "Category", "Description", "Amount", "Interval", "End"); err != nil {
			return err
		}
		for i, r := range l.Recurring {
			if err := setRow("Recurring", i+2, r.ID, formatDate(r.Info.Date), string(r.Info.Category), r.Info.Description,
				r.Amount, r.Every.String(), formatDate(r.End)); err != nil {
				return err
			}
			rows++
		}

		if err := setRow("Debts", 1, "ID", "Date", "Category", "Description", "Person", "Amount"); err != nil {
			return err
		}
		for i, d := range l.Debts {
			if err := setRow("Debts", i+2, d.ID, formatDate(d.Info.Date), string(d.Info.Category), d.Info.Description,
				d.Person, d.Amount); err != nil {
				return err
			}
			rows++
		}

		if err := setRow("Advancements", 1, "ID", "Date", "Person", "Description", "Amount"); err != nil {
			return err
		}
		for i, a := range l.Advancements {
			if err := setRow("Advancements", i+2, a.ID, formatDate(a.Date), a.Person, a.Description, a.Amount); err != nil {
				return err
			}
			rows++
		}

		if err := setRow("Balances", 1, "Person", "Owes"); err != nil {
			return err
		}
		balances := l.Balances()
		people := make([]string, 0, len(balances))
		for person := range balances {
			people = append(people, person)
		}
		sort.Strings(people)
		for i, person := range people {
			if err := setRow("Balances", i+2, person, balances[person]); err != nil {
				return err
			}
			rows++
		}

		return f.SaveAs(path)
	}()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "write xlsx export").
			WithContext("path", path)
	}
	return rows, nil
}

var csvHeader = []string{"Kind", "ID", "Date", "Category", "Description", "Person", "Amount"}

// writeCSV writes a flat dump with one row per record.
func writeCSV(l *ledger.Ledger, path string, opts Options) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "create csv export").
			WithContext("path", path)
	}

	sep := opts.Sep
	if sep == 0 {
		sep = '.'
	}
	amount := func(c money.Cents) string { return money.Format(c, sep) }

	w := csv.NewWriter(f)
	rows := 0
	write := func(record ...string) error {
		if err := w.Write(record); err != nil {
			return err
		}
		rows++
		return nil
	}

	err = func() error {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		for _, s := range l.Singles {
			if err := write("single", s.ID, formatDate(s.Info.Date), string(s.Info.Category), s.Info.Description, "", amount(s.Amount)); err != nil {
				return err
			}
		}
		for i := range l.Groups {
			g := &l.Groups[i]
			if err := write("group", g.ID, formatDate(g.Info.Date), string(g.Info.Category), g.Info.Description,
				strings.Join(g.People, "; "), amount(g.Total)); err != nil {
				return err
			}
		}
		for _, r := range l.Recurring {
			desc := r.Info.Description
			if desc != "" {
				desc += " "
			}
			desc += fmt.Sprintf("(%s)", r.Every)
			if err := write("recurring", r.ID, formatDate(r.Info.Date), string(r.Info.Category), desc, "", amount(r.Amount)); err != nil {
				return err
			}
		}
		for _, d := range l.Debts {
			if err := write("debt", d.ID, formatDate(d.Info.Date), string(d.Info.Category), d.Info.Description, d.Person, amount(d.Amount)); err != nil {
				return err
			}
		}
		for _, a := range l.Advancements {
			if err := write("advancement", a.ID, formatDate(a.Date), "", a.Description, a.Person, amount(a.Amount)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "write csv export").
			WithContext("path", path)
	}
	return rows, nil
}
