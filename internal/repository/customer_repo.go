package repository

import "dashboard-seed-backend/internal/models"

type CustomerRepository struct {
	db Execer
}

func NewCustomerRepository(db Execer) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) InsertIgnore(c models.Customer) (int64, error) {
	return insertIgnore(r.db, TableCustomers, "id",
		[]string{"id", "name", "email", "image_url"},
		c.ID, c.Name, c.Email, c.ImageURL,
	)
}
