package testutil

import (
	"context"
	"errors"
)

// FailingSlots is a SlotRepo whose operations can be forced to fail,
// for exercising the absorb-and-log persistence failure paths.
type FailingSlots struct {
	FailReads  bool
	FailWrites bool

	values map[string]string
}

// NewFailingSlots creates a FailingSlots with no forced failures.
func NewFailingSlots() *FailingSlots {
	return &FailingSlots{values: make(map[string]string)}
}

var errForced = errors.New("forced slot failure")

func (f *FailingSlots) Get(ctx context.Context, key string) (string, bool, error) {
	if f.FailReads {
		return "", false, errForced
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *FailingSlots) Set(ctx context.Context, key, value string) error {
	if f.FailWrites {
		return errForced
	}
	f.values[key] = value
	return nil
}

func (f *FailingSlots) Clear(ctx context.Context, key string) error {
	if f.FailWrites {
		return errForced
	}
	delete(f.values, key)
	return nil
}
