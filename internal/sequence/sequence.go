// Package sequence issues the human-readable order numbers (S-0001, PO-0001,
// E-0001). Numbers come from a per-name counter row incremented atomically, so
// concurrent writers never receive the same value; within a single writer the
// series is gapless.
package sequence

import (
	"fmt"

	"gorm.io/gorm"
)

// Counter names
const (
	Sales          = "sales"
	PurchaseOrders = "purchase_orders"
	Expenses       = "expenses"
)

// Counter is one named sequence row.
type Counter struct {
	Name  string `gorm:"primaryKey;type:varchar(32)"`
	Value int64  `gorm:"not null;default:0"`
}

func (Counter) TableName() string {
	return "sequence_counters"
}

// Next increments and returns the counter for name. Run it on the same
// transaction as the document insert so an aborted order does not consume a
// number out from under its unique index.
func Next(tx *gorm.DB, name string) (int64, error) {
	var value int64
	err := tx.Raw(
		`INSERT INTO sequence_counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1
		 RETURNING value`, name,
	).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("sequence %s: %w", name, err)
	}
	return value, nil
}

// Format renders a counter value as a display number, e.g. Format("S", 7) == "S-0007".
func Format(prefix string, value int64) string {
	return fmt.Sprintf("%s-%04d", prefix, value)
}
