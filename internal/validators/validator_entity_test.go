// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

func validBill() models.Bill {
	return models.Bill{
		ID:       "bill-1",
		Lines:    []models.BillLine{{ItemID: "item-1", Quantity: 2, UnitPrice: 250}},
		Total:    500,
		Currency: "EUR",
	}
}

func TestNewEntityValidator(t *testing.T) {
	v := NewEntityValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Category{ID: "c", Name: "Drinks"}))
	assert.NoError(t, v.Validate(ctx, &models.Category{ID: "c", Name: "Drinks"}))
	assert.NoError(t, v.Validate(ctx, models.Item{ID: "i", Name: "Tea"}))
	assert.NoError(t, v.Validate(ctx, &models.Item{ID: "i", Name: "Tea"}))
	bill := validBill()
	assert.NoError(t, v.Validate(ctx, bill))
	assert.NoError(t, v.Validate(ctx, &bill))

	assert.ErrorIs(t, v.Validate(ctx, "category"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestValidateCategory(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Category{Name: "Drinks"}), ErrEmptyID)
	assert.ErrorIs(t, v.Validate(ctx, models.Category{ID: "c", Name: "  "}), ErrEmptyName)
	assert.NoError(t, v.Validate(ctx, models.Category{Name: "Drinks"}, FieldName))
	assert.ErrorIs(t, v.Validate(ctx, models.Category{ID: "c"}, FieldPrice), ErrUnknownField)
}

func TestValidateItem(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		item    models.Item
		wantErr error
	}{
		{name: "valid free item", item: models.Item{ID: "i", Name: "Water", Price: 0}},
		{name: "missing id", item: models.Item{Name: "Tea"}, wantErr: ErrEmptyID},
		{name: "missing name", item: models.Item{ID: "i"}, wantErr: ErrEmptyName},
		{name: "negative price", item: models.Item{ID: "i", Name: "Tea", Price: -1}, wantErr: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.item)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBill(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(b *models.Bill)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Bill) {}},
		{name: "no currency", mutate: func(b *models.Bill) { b.Currency = "" }},
		{name: "missing id", mutate: func(b *models.Bill) { b.ID = "" }, wantErr: ErrEmptyID},
		{name: "no lines", mutate: func(b *models.Bill) { b.Lines = nil }, wantErr: ErrEmptyLines},
		{name: "line without item", mutate: func(b *models.Bill) { b.Lines[0].ItemID = "" }, wantErr: ErrInvalidLine},
		{name: "zero quantity", mutate: func(b *models.Bill) { b.Lines[0].Quantity = 0 }, wantErr: ErrInvalidLine},
		{name: "negative unit price", mutate: func(b *models.Bill) { b.Lines[0].UnitPrice = -5 }, wantErr: ErrInvalidLine},
		{name: "negative total", mutate: func(b *models.Bill) { b.Total = -1 }, wantErr: ErrNegativeTotal},
		{name: "bad currency", mutate: func(b *models.Bill) { b.Currency = "EURO" }, wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := validBill()
			tt.mutate(&bill)

			err := v.Validate(ctx, bill)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBill_LineIndexInError(t *testing.T) {
	bill := validBill()
	bill.Lines = append(bill.Lines, models.BillLine{ItemID: "item-2", Quantity: -1})

	err := NewEntityValidator().Validate(context.Background(), bill, FieldLines)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
