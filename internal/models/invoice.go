package models

import (
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
)

// Invoice amounts are in cents. CustomerID points at Customer.ID by
// convention only; the invoices table declares no foreign key.
type Invoice struct {
	ID         string        `gorm:"type:uuid;primaryKey"`
	CustomerID string        `gorm:"type:uuid;not null"`
	Amount     int           `gorm:"not null"`
	Status     InvoiceStatus `gorm:"size:255;not null"`
	Date       datatypes.Date
}
