package grid

import (
	"testing"

	"github.com/odvcencio/kakeibo/pkg/money"
)

func TestRefAtKinds(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name string
		pos  Position
		kind RefKind
		ok   bool
	}{
		{"name is text", NamePos(), RefString, true},
		{"row label is text", RowLabelPos(1), RefString, true},
		{"cell is amount", CellPos(1, 0), RefAmount, true},
		{"total is amount", TotalPos(0), RefAmount, true},
		{"button has no content", ButtonPos(0), 0, false},
		{"out of range cell", CellPos(9, 9), 0, false},
		{"out of range row label", RowLabelPos(7), 0, false},
		{"out of range total", TotalPos(5), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := m.RefAt(tt.pos)
			if ok != tt.ok {
				t.Fatalf("RefAt(%v) ok = %v, want %v", tt.pos, ok, tt.ok)
			}
			if ok && ref.Kind() != tt.kind {
				t.Errorf("RefAt(%v) kind = %v, want %v", tt.pos, ref.Kind(), tt.kind)
			}
		})
	}
}

func TestRefText(t *testing.T) {
	m := testModel(t)

	ref, _ := m.RefAt(NamePos())
	if got := ref.Text('.'); got != "March" {
		t.Errorf("name text = %q", got)
	}
	ref, _ = m.RefAt(CellPos(0, 0))
	if got := ref.Text('.'); got != "1.00" {
		t.Errorf("cell text = %q, want 1.00", got)
	}
	if got := ref.Text(','); got != "1,00" {
		t.Errorf("cell text with comma = %q, want 1,00", got)
	}
}

func TestRefCommitText(t *testing.T) {
	m := testModel(t)

	ref, _ := m.RefAt(RowLabelPos(0))
	if err := ref.CommitText("Rent"); err != nil {
		t.Fatalf("CommitText on label: %v", err)
	}
	if label, _ := m.RowLabel(0); label != "Rent" {
		t.Errorf("label = %q", label)
	}

	ref, _ = m.RefAt(CellPos(1, 1))
	if err := ref.CommitText("9.75"); err != nil {
		t.Fatalf("CommitText on cell: %v", err)
	}
	if v, _ := m.Cell(1, 1); v != 975 {
		t.Errorf("cell = %d, want 975", v)
	}

	// A rejected parse must leave the old value in place.
	if err := ref.CommitText("not a number"); err == nil {
		t.Fatal("CommitText should fail on junk")
	}
	if v, _ := m.Cell(1, 1); v != 975 {
		t.Errorf("cell after failed commit = %d, want 975", v)
	}
}

func TestRefClear(t *testing.T) {
	m := testModel(t)

	ref, _ := m.RefAt(NamePos())
	ref.Clear()
	if m.Name() != "" {
		t.Errorf("name = %q after clear", m.Name())
	}

	ref, _ = m.RefAt(CellPos(0, 1))
	ref.Clear()
	if v, _ := m.Cell(0, 1); v != 0 {
		t.Errorf("cell = %d after clear", v)
	}
}

func TestClipboardTagMatching(t *testing.T) {
	m := testModel(t)

	nameRef, _ := m.RefAt(NamePos())
	cellRef, _ := m.RefAt(CellPos(0, 0))

	text := nameRef.Copy()
	amount := cellRef.Copy()

	if text.Kind() != RefString || amount.Kind() != RefAmount {
		t.Fatalf("copy kinds = %v, %v", text.Kind(), amount.Kind())
	}

	// Mismatched tags write nothing.
	if cellRef.Paste(text) {
		t.Error("amount cell accepted a text paste")
	}
	if v, _ := m.Cell(0, 0); v != 100 {
		t.Errorf("cell changed by rejected paste: %d", v)
	}
	if nameRef.Paste(amount) {
		t.Error("name accepted an amount paste")
	}
	if m.Name() != "March" {
		t.Errorf("name changed by rejected paste: %q", m.Name())
	}

	// Matching tags write through.
	otherCell, _ := m.RefAt(CellPos(1, 1))
	if !otherCell.Paste(amount) {
		t.Fatal("amount paste onto a cell failed")
	}
	if v, _ := m.Cell(1, 1); v != 100 {
		t.Errorf("pasted cell = %d, want 100", v)
	}

	labelRef, _ := m.RefAt(RowLabelPos(1))
	if !labelRef.Paste(StringValue("Food")) {
		t.Fatal("text paste onto a label failed")
	}
	if label, _ := m.RowLabel(1); label != "Food" {
		t.Errorf("label = %q, want Food", label)
	}
}

func TestClipboardValueConstructors(t *testing.T) {
	v := AmountValue(money.Cents(250))
	if v.Kind() != RefAmount {
		t.Errorf("AmountValue kind = %v", v.Kind())
	}
	s := StringValue("hi")
	if s.Kind() != RefString {
		t.Errorf("StringValue kind = %v", s.Kind())
	}
}
