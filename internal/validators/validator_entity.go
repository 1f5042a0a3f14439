package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldLines      = "lines"
	FieldTotal      = "total"
	FieldCurrency   = "currency"
)

type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.Bill:
		return v.validateBill(ctx, value, fields...)
	case *models.Bill:
		return v.validateBill(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldPrice:
			if item.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateBill(_ context.Context, bill models.Bill, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldLines, FieldTotal, FieldCurrency}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(bill.ID) == "" {
				return ErrEmptyID
			}
		case FieldLines:
			if len(bill.Lines) == 0 {
				return ErrEmptyLines
			}
			for i, line := range bill.Lines {
				if err := validateBillLine(line); err != nil {
					return fmt.Errorf("validation error at line %d: %w", i, err)
				}
			}
		case FieldTotal:
			if bill.Total < 0 {
				return ErrNegativeTotal
			}
		case FieldCurrency:
			if bill.Currency != "" && len(bill.Currency) != 3 {
				return ErrInvalidCurrency
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateBillLine(line models.BillLine) error {
	switch {
	case strings.TrimSpace(line.ItemID) == "":
		return fmt.Errorf("%w: item_id is required", ErrInvalidLine)
	case line.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidLine)
	case line.UnitPrice < 0:
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalidLine)
	}
	return nil
}
