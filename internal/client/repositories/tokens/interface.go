package tokens

import (
	"context"
	"errors"
	"fmt"
)

type Slot string

const (
	SlotAccess  Slot = "access"
	SlotRefresh Slot = "refresh"
)

var ErrUnknownSlot = errors.New("unknown token slot")

// Slots lists every valid slot.
var Slots = []Slot{SlotAccess, SlotRefresh}

func (s Slot) validate() error {
	switch s {
	case SlotAccess, SlotRefresh:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSlot, string(s))
	}
}

type Repository interface {
	Get(ctx context.Context, slot Slot) (string, error)
	Set(ctx context.Context, slot Slot, value string) error
	Clear(ctx context.Context, slot Slot) error
}
