// Package repository provides a generic repository abstraction built on Bun
// for querying, eager-loading of relations, pagination, and staged
// create/update/delete operations committed through a unit of work.
package repository
