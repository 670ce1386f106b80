// Package database manages Bun database connections for MySQL, PostgreSQL,
// and SQLite: configuration loading, connection pooling, health checking,
// query logging hooks, and SQL error classification.
package database
