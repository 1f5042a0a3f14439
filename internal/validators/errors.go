package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrEmptyLines       = errors.New("bill must have at least one line")
	ErrInvalidLine      = errors.New("invalid bill line")
	ErrNegativeTotal    = errors.New("total cannot be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter code")
)
