/*
 * Copyright 2026 1diego321.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"context"
	"errors"

	"github.com/1diego321/repositorio/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// ErrNilFilter is returned by lookups that require a filter when none is
// given. It is raised before any query executes.
var ErrNilFilter = errors.New("repository: filter is required")

// Reader defines the read operations of the generic repository. Reads
// execute immediately against persisted state; a missing row is reported as
// a nil entity, not an error.
type Reader[T any] interface {
	GetAll(ctx context.Context, opts ...types.QueryOption) ([]*T, error)

	GetFirstOrDefault(ctx context.Context, filter *types.QueryFilter, relations ...string) (*T, error)

	GetByPK(ctx context.Context, id any, relations ...string) (*T, error)

	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}

// Writer defines the staged mutation operations. Calls never touch the
// database: they only append to the bound unit of work's change set, which
// is persisted by the caller through UnitOfWork.Save.
type Writer[T any] interface {
	Create(entity ...*T)
	Update(entity ...*T)
	Delete(entity ...*T)
}

// TransactionRepository defines immediate operations executed within a
// caller-owned transaction. The caller remains responsible for committing.
type TransactionRepository[T any] interface {
	CreateTx(ctx context.Context, tx *bun.Tx, entity ...*T) error
	UpsertTx(ctx context.Context, tx *bun.Tx, fields []string, conflictColumns []string, entity ...*T) error
	UpdateTx(ctx context.Context, tx *bun.Tx, entity *T) error
	DeleteTx(ctx context.Context, tx *bun.Tx, entity *T) error
}

// PageQueryRepository defines pagination functionality for listing entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines reads, staged writes, pagination, and transactional
// operations, and exposes Bun query builders for advanced use cases.
type Repository[T any] interface {
	Reader[T]
	Writer[T]
	PageQueryRepository[T]
	TransactionRepository[T]
	UnitOfWork() *UnitOfWork
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
