package diag

// Bag is an ordered, append-only collection of diagnostics.
// Order of insertion is the order of discovery and is never changed.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag holding at most max diagnostics; max <= 0 means unlimited.
func NewBag(max int) *Bag {
	capacity := max
	if capacity <= 0 || capacity > 64 {
		capacity = 8
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
func (b *Bag) Items() []Diagnostic {
	if b == nil {
		return nil
	}
	return b.items
}

// Messages returns the diagnostics as plain strings, in discovery order.
func (b *Bag) Messages() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.items))
	for _, d := range b.items {
		out = append(out, d.Message)
	}
	return out
}

// Count returns how many diagnostics carry the given code.
func (b *Bag) Count(code Code) int {
	n := 0
	for i := range b.Items() {
		if b.items[i].Code == code {
			n++
		}
	}
	return n
}

// Merge appends diagnostics from other, growing the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 && len(b.items)+len(other.items) > b.max {
		b.max = len(b.items) + len(other.items)
	}
	b.items = append(b.items, other.items...)
}
