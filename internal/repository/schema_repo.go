package repository

import (
	"fmt"
)

type SchemaRepository struct {
	db      Execer
	dialect Dialect
}

func NewSchemaRepository(db Execer, dialect Dialect) *SchemaRepository {
	return &SchemaRepository{db: db, dialect: dialect}
}

// EnsureUUIDExtension is a no-op on engines without a uuid extension.
func (r *SchemaRepository) EnsureUUIDExtension() error {
	if r.dialect.UUIDExtension == "" {
		return nil
	}
	if err := r.db.Exec(r.dialect.UUIDExtension).Error; err != nil {
		return fmt.Errorf("ensure uuid extension: %w", err)
	}
	return nil
}

// Recreate drops table and creates it again, empty.
func (r *SchemaRepository) Recreate(table string) error {
	ddl, ok := r.dialect.CreateTable[table]
	if !ok {
		return fmt.Errorf("no %s definition for table %q", r.dialect.Name, table)
	}
	if err := r.db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
		return fmt.Errorf("drop table %s: %w", table, err)
	}
	if err := r.db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}
