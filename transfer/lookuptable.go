// Package transfer implements discrete lookup tables and continuous color and opacity transfer functions as used by volume renderers. A gradient can be exported to and imported from these.
package transfer

// LookupTable is a discrete table of RGBA colors with components in [0,1].
type LookupTable struct {
	entries [][4]float64
}

// NewLookupTable returns a lookup table with n opaque black entries.
func NewLookupTable(n int) *LookupTable {
	t := &LookupTable{}
	t.SetNumberOfEntries(n)
	return t
}

// SetNumberOfEntries resizes the table. Existing entries are kept and new entries are opaque black.
func (t *LookupTable) SetNumberOfEntries(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(t.entries) {
		t.entries = t.entries[:n]
		return
	}
	for len(t.entries) < n {
		t.entries = append(t.entries, [4]float64{0.0, 0.0, 0.0, 1.0})
	}
}

// NumberOfEntries returns the number of entries.
func (t *LookupTable) NumberOfEntries() int {
	return len(t.entries)
}

// SetEntry sets the i-th entry. Out of range indices are ignored.
func (t *LookupTable) SetEntry(i int, r, g, b, a float64) {
	if i < 0 || len(t.entries) <= i {
		return
	}
	t.entries[i] = [4]float64{r, g, b, a}
}

// Entry returns the i-th entry, or transparent black for out of range indices.
func (t *LookupTable) Entry(i int) (float64, float64, float64, float64) {
	if i < 0 || len(t.entries) <= i {
		return 0.0, 0.0, 0.0, 0.0
	}
	e := t.entries[i]
	return e[0], e[1], e[2], e[3]
}
