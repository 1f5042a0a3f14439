// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// EntityKind identifies one of the POS data types subject to synchronization.
type EntityKind string

const (
	// KindCategory is a catalog category. Items reference categories.
	KindCategory EntityKind = "category"

	// KindItem is a catalog item. Bills reference items.
	KindItem EntityKind = "item"

	// KindBill is a bill (receipt) issued at the point of sale.
	KindBill EntityKind = "bill"
)

// SyncOrder is the fixed order in which entity kinds are reconciled during a
// full sync pass. Referenced kinds go first so the remote side never receives
// a bill before the items it references.
var SyncOrder = []EntityKind{KindCategory, KindItem, KindBill}

// BootstrapKinds are the kinds downloaded by the initial bootstrap. Bills are
// device-authored and never pulled down.
var BootstrapKinds = []EntityKind{KindCategory, KindItem}

// Valid reports whether k is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindCategory, KindItem, KindBill:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (k EntityKind) String() string {
	return string(k)
}

// ParseEntityKind converts s into an [EntityKind], returning an error for
// unknown values.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown entity kind %q", s)
	}
	return k, nil
}

// Entity is implemented by every typed payload that can be queued for upload.
type Entity interface {
	// Kind returns the entity kind the payload belongs to.
	Kind() EntityKind
	// EntityID returns the stable identifier of the entity within its kind.
	EntityID() string
}

// Category groups catalog items.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Kind implements [Entity].
func (Category) Kind() EntityKind { return KindCategory }

// EntityID implements [Entity].
func (c Category) EntityID() string { return c.ID }

// Item is a sellable catalog entry. Price is expressed in minor currency units.
type Item struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id,omitempty"`
	Name       string `json:"name"`
	SKU        string `json:"sku,omitempty"`
	Price      int64  `json:"price"`

	// ImagePath is the on-device location of a captured picture. The resolved
	// remote location is server-derived and lives on the local row instead.
	ImagePath string `json:"image_path,omitempty"`
}

// Kind implements [Entity].
func (Item) Kind() EntityKind { return KindItem }

// EntityID implements [Entity].
func (i Item) EntityID() string { return i.ID }

// BillLine is a single position on a bill.
type BillLine struct {
	ItemID    string `json:"item_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Bill is a receipt issued on the device. Amounts are in minor currency units.
type Bill struct {
	ID       string     `json:"id"`
	Number   string     `json:"number,omitempty"`
	Lines    []BillLine `json:"lines,omitempty"`
	Total    int64      `json:"total"`
	Currency string     `json:"currency,omitempty"`
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}

// Kind implements [Entity].
func (Bill) Kind() EntityKind { return KindBill }

// EntityID implements [Entity].
func (b Bill) EntityID() string { return b.ID }

// LineTotal sums quantity times unit price over all lines.
func (b Bill) LineTotal() int64 {
	var total int64
	for _, l := range b.Lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}
