// Package database owns the SQLite store: connection setup, schema
// migration, and one repository sub-package per table (students, books,
// loans). Repositories hold no state besides the *gorm.DB handle; every
// read goes back to the store.
package database
