// Package pkgsql opens the SQLite database used when storage.driver is "sqlite".
//
// Each resource module owns its schema and creates it through Migrate.
package pkgsql
