package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MealSlot partitions a day's meals.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

func ParseMealSlot(s string) (MealSlot, error) {
	slot := MealSlot(strings.ToLower(strings.TrimSpace(s)))
	if !slot.Valid() {
		return "", fmt.Errorf("invalid meal slot [%s]", s)
	}
	return slot, nil
}

func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// Order is the slot's position within a day.
func (s MealSlot) Order() int {
	for i, slot := range MealSlots {
		if slot == s {
			return i
		}
	}
	return len(MealSlots)
}

func (s *MealSlot) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = ""
		return nil
	}
	slot, err := ParseMealSlot(raw)
	if err != nil {
		return err
	}
	*s = slot
	return nil
}
