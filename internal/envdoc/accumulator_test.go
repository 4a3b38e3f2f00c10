package envdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator_Add(t *testing.T) {
	for _, slot := range Slots() {
		var acc Accumulator
		acc.Add(slot, "a")
		acc.Add(slot, "b")

		got, ok := acc.Get(slot)
		assert.True(t, ok, slot.Title())
		assert.Equal(t, "a,b", got, slot.Title())
		assert.Equal(t, "a,b", acc.Row().Get(slot), slot.Title())
	}
}

func TestAccumulator_EmptyValueStillCounts(t *testing.T) {
	var acc Accumulator
	acc.Add(SlotType, "")
	acc.Add(SlotType, "int")

	got, _ := acc.Get(SlotType)
	assert.Equal(t, ",int", got)
}

func TestAccumulator_Clear(t *testing.T) {
	var acc Accumulator
	acc.Add(SlotDescription, "x, y")
	acc.Add(SlotDocs, "https://example.com")

	acc.Clear()
	assert.Equal(t, Row{}, acc.Row())
	_, ok := acc.Get(SlotDocs)
	assert.False(t, ok)

	acc.Add(SlotDescription, "fresh")
	got, _ := acc.Get(SlotDescription)
	assert.Equal(t, "fresh", got)
}

func TestAccumulator_IgnoresUnknownSlot(t *testing.T) {
	var acc Accumulator
	acc.Add(FieldSlot(42), "x")
	assert.Equal(t, Row{}, acc.Row())
	_, ok := acc.Get(FieldSlot(-1))
	assert.False(t, ok)
}
