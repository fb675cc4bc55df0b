// Package database provides connection management, configuration, explicit
// transactions, the model registry, migrations, query logging hooks and SQL
// error classification, all built on top of Bun.
package database
