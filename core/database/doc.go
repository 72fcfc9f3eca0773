// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL or a SQLite connection based on
// the application's configuration. The change history is the only relational
// data the service keeps.
//
// # Connect
//
// Connect opens the connection selected by Config.Driver, applies pool
// settings and pings the server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects, and
// MissingColumns compares them against the columns a store requires. The
// history store uses it to refuse starting against an incompatible table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "change_records", []string{"slot"})
package database
