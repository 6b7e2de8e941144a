package repository

import "dashboard-seed-backend/internal/models"

type RevenueRepository struct {
	db Execer
}

func NewRevenueRepository(db Execer) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func (r *RevenueRepository) InsertIgnore(rev models.Revenue) (int64, error) {
	return insertIgnore(r.db, TableRevenue, "month",
		[]string{"month", "revenue"},
		rev.Month, rev.Revenue,
	)
}
