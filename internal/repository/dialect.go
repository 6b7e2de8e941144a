package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Execer runs a parameterized statement. The root *gorm.DB and the *gorm.DB
// handed to Transaction callbacks, nested savepoints included, all satisfy it.
type Execer interface {
	Exec(sql string, values ...interface{}) *gorm.DB
}

const (
	TableUsers     = "users"
	TableCustomers = "customers"
	TableInvoices  = "invoices"
	TableRevenue   = "revenue"
)

// Dialect holds the DDL that differs between database engines.
type Dialect struct {
	Name string
	// UUIDExtension is empty when the engine needs no extension for
	// generated ids.
	UUIDExtension string
	CreateTable   map[string]string
}

var Postgres = Dialect{
	Name:          "postgres",
	UUIDExtension: `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	CreateTable: map[string]string{
		TableUsers: `CREATE TABLE IF NOT EXISTS users (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		TableCustomers: `CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`,
		TableInvoices: `CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)`,
		TableRevenue: `CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`,
	},
}

// SQLite has no uuid generator; ids default to 16 random bytes in hex.
var SQLite = Dialect{
	Name: "sqlite",
	CreateTable: map[string]string{
		TableUsers: `CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		TableCustomers: `CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`,
		TableInvoices: `CREATE TABLE IF NOT EXISTS invoices (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			customer_id TEXT NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)`,
		TableRevenue: `CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`,
	},
}

// DialectFor picks the DDL set matching the gorm dialector of db.
func DialectFor(db *gorm.DB) (Dialect, error) {
	switch name := db.Dialector.Name(); name {
	case "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database dialect %q", name)
	}
}
