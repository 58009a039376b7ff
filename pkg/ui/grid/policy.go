package grid

// CommitHook is notified after a value has been written through to
// the model, with the position that changed. Writes happen on commit,
// paste, and clear.
type CommitHook interface {
	CellCommitted(m *Model, pos Position)
}

// CommitHookFunc adapts a plain function to CommitHook.
type CommitHookFunc func(m *Model, pos Position)

// CellCommitted calls f.
func (f CommitHookFunc) CellCommitted(m *Model, pos Position) { f(m, pos) }

// Policy decides which positions accept edits, where the cursor
// starts, and what runs after a write. Build one with NewPolicy; a
// built Policy is immutable.
type Policy struct {
	fixedRows      int
	editableCols   map[int]struct{}
	editableTotals map[int]struct{}
	sep            rune
	hook           CommitHook
	start          Position
}

// PolicyBuilder accumulates policy settings. The zero configuration
// makes only the name and the row labels editable, uses '.' as the
// decimal separator, and starts the cursor on the name field.
type PolicyBuilder struct {
	p Policy
}

// NewPolicy returns a builder with the default configuration.
func NewPolicy() *PolicyBuilder {
	return &PolicyBuilder{p: Policy{
		editableCols:   map[int]struct{}{},
		editableTotals: map[int]struct{}{},
		sep:            '.',
		start:          NamePos(),
	}}
}

// FixedRows protects the labels of the first n rows from editing.
func (b *PolicyBuilder) FixedRows(n int) *PolicyBuilder {
	b.p.fixedRows = n
	return b
}

// EditableColumn marks the cells of the given columns editable, in
// every row.
func (b *PolicyBuilder) EditableColumn(cols ...int) *PolicyBuilder {
	for _, c := range cols {
		b.p.editableCols[c] = struct{}{}
	}
	return b
}

// EditableTotal marks the totals fields of the given columns
// editable.
func (b *PolicyBuilder) EditableTotal(cols ...int) *PolicyBuilder {
	for _, c := range cols {
		b.p.editableTotals[c] = struct{}{}
	}
	return b
}

// DecimalSep sets the separator used when amounts are formatted for
// display and editing.
func (b *PolicyBuilder) DecimalSep(sep rune) *PolicyBuilder {
	b.p.sep = sep
	return b
}

// OnCommit installs the hook invoked after successful writes.
func (b *PolicyBuilder) OnCommit(h CommitHook) *PolicyBuilder {
	b.p.hook = h
	return b
}

// StartAt sets the initial cursor position.
func (b *PolicyBuilder) StartAt(pos Position) *PolicyBuilder {
	b.p.start = pos
	return b
}

// Build returns the immutable policy and the initial cursor. The
// policy owns copies of the editable sets, so reusing the builder
// afterwards cannot change it.
func (b *PolicyBuilder) Build() (*Policy, Position) {
	p := b.p
	p.editableCols = make(map[int]struct{}, len(b.p.editableCols))
	for c := range b.p.editableCols {
		p.editableCols[c] = struct{}{}
	}
	p.editableTotals = make(map[int]struct{}, len(b.p.editableTotals))
	for c := range b.p.editableTotals {
		p.editableTotals[c] = struct{}{}
	}
	return &p, p.start
}

// IsEditable reports whether the element at pos accepts edits. The
// name field always does, buttons never do, row labels only below the
// fixed rows, and cells and totals fields only in columns the policy
// marked editable.
func (p *Policy) IsEditable(pos Position) bool {
	switch pos.Kind() {
	case KindName:
		return true
	case KindRowLabel:
		return pos.Row() >= p.fixedRows
	case KindCell:
		_, ok := p.editableCols[pos.Col()]
		return ok
	case KindTotal:
		_, ok := p.editableTotals[pos.Col()]
		return ok
	}
	return false
}

// DecimalSep returns the configured decimal separator.
func (p *Policy) DecimalSep() rune { return p.sep }

func (p *Policy) notify(m *Model, pos Position) {
	if p.hook != nil {
		p.hook.CellCommitted(m, pos)
	}
}
