package repository

import "dashboard-seed-backend/internal/models"

type UserRepository struct {
	db Execer
}

func NewUserRepository(db Execer) *UserRepository {
	return &UserRepository{db: db}
}

// InsertIgnore stores u as given; Password must already be hashed.
func (r *UserRepository) InsertIgnore(u models.User) (int64, error) {
	return insertIgnore(r.db, TableUsers, "id",
		[]string{"id", "name", "email", "password"},
		u.ID, u.Name, u.Email, u.Password,
	)
}
