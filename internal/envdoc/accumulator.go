package envdoc

// Row is one rendered table row, indexed by FieldSlot.
type Row [slotCount]string

// Get returns the cell for a slot, or "" for an unknown slot.
func (r Row) Get(slot FieldSlot) string {
	if !slot.valid() {
		return ""
	}
	return r[slot]
}

// Accumulator collects the cells of the row being built. Repeated values
// for the same slot are joined with a comma in the order they were added.
// The zero value is empty and ready to use.
type Accumulator struct {
	cells [slotCount]string
	set   [slotCount]bool
}

func (a *Accumulator) Add(slot FieldSlot, value string) {
	if !slot.valid() {
		return
	}
	if cur, ok := a.Get(slot); ok {
		value = cur + "," + value
	}
	a.cells[slot] = value
	a.set[slot] = true
}

func (a *Accumulator) Get(slot FieldSlot) (string, bool) {
	if !slot.valid() {
		return "", false
	}
	return a.cells[slot], a.set[slot]
}

func (a *Accumulator) Clear() {
	*a = Accumulator{}
}

// Row snapshots the current cells; unset slots are empty strings.
func (a *Accumulator) Row() Row {
	return Row(a.cells)
}
