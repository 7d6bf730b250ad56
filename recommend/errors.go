package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt is returned before Build or Restore succeeds.
	ErrNotBuilt = errors.New("recommend: service not built")
	// ErrUnknownItem is returned for names that resolve to no catalog item.
	ErrUnknownItem = errors.New("recommend: unknown item")
	// ErrInvalidK is returned when k is outside [0, MaxK].
	ErrInvalidK = errors.New("recommend: invalid k")
)

// KError reports an out-of-range k.
type KError struct {
	K    int
	MaxK int
}

func (e *KError) Error() string {
	return fmt.Sprintf("recommend: k=%d outside [0, %d]", e.K, e.MaxK)
}

func (e *KError) Unwrap() error { return ErrInvalidK }
