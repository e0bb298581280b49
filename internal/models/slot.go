package models

// Slot - одна из четырёх пар в день
type Slot uint8

const (
	SlotI Slot = iota + 1
	SlotII
	SlotIII
	SlotIV
)

// Цифра и римская запись - синонимы
var slotTokens = map[string]Slot{
	"1":   SlotI,
	"I":   SlotI,
	"2":   SlotII,
	"II":  SlotII,
	"3":   SlotIII,
	"III": SlotIII,
	"4":   SlotIV,
	"IV":  SlotIV,
}

// Slots возвращает все пары по порядку
func Slots() []Slot {
	return []Slot{SlotI, SlotII, SlotIII, SlotIV}
}

func ParseSlot(token string) (Slot, error) {
	if slot, ok := slotTokens[token]; ok {
		return slot, nil
	}
	return 0, &TokenError{Kind: "slot", Value: token}
}

func (s Slot) Valid() bool {
	return s >= SlotI && s <= SlotIV
}

func (s Slot) String() string {
	switch s {
	case SlotI:
		return "I"
	case SlotII:
		return "II"
	case SlotIII:
		return "III"
	case SlotIV:
		return "IV"
	}
	return "Slot(?)"
}
