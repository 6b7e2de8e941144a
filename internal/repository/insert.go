package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// gorm rebinds ? to the driver's placeholder style.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// insertIgnore runs an INSERT that skips rows whose key already exists and
// returns the number of rows written (0 or 1).
func insertIgnore(db Execer, table, conflict string, columns []string, values ...interface{}) (int64, error) {
	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (" + conflict + ") DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert into %s: %w", table, err)
	}

	res := db.Exec(query, args...)
	if res.Error != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, res.Error)
	}
	return res.RowsAffected, nil
}
