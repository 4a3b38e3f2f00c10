package envdoc

// FieldSlot is one column of the generated table, in rendering order.
type FieldSlot int

const (
	SlotEnvVariable FieldSlot = iota
	SlotResponsible
	SlotType
	SlotSecret
	SlotPolicy
	SlotDefaultValue
	SlotDescription
	SlotDocs

	slotCount = int(SlotDocs) + 1
)

var slotTitles = [slotCount]string{
	"Key",
	"Responsible",
	"Type",
	"Secret",
	"Policy",
	"Default value",
	"Description",
	"Docs",
}

// Slots lists every column in rendering order.
func Slots() []FieldSlot {
	slots := make([]FieldSlot, slotCount)
	for i := range slots {
		slots[i] = FieldSlot(i)
	}
	return slots
}

// Title is the column heading used in the table header.
func (s FieldSlot) Title() string {
	if s < 0 || int(s) >= slotCount {
		return ""
	}
	return slotTitles[s]
}

func (s FieldSlot) valid() bool {
	return s >= 0 && int(s) < slotCount
}
