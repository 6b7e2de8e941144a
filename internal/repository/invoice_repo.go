package repository

import (
	"time"

	"dashboard-seed-backend/internal/models"
)

type InvoiceRepository struct {
	db Execer
}

func NewInvoiceRepository(db Execer) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InsertIgnore leaves the id to the column default, so inv.ID is ignored.
func (r *InvoiceRepository) InsertIgnore(inv models.Invoice) (int64, error) {
	return insertIgnore(r.db, TableInvoices, "id",
		[]string{"customer_id", "amount", "status", "date"},
		inv.CustomerID, inv.Amount, string(inv.Status), time.Time(inv.Date).Format(time.DateOnly),
	)
}
