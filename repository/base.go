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
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/1diego321/repositorio/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any] struct {
	uow *UnitOfWork
}

// NewRepository returns a generic repository bound to the provided unit of
// work. The unit of work must outlive the repository.
func NewRepository[T any](uow *UnitOfWork) Repository[T] {
	return &baseRepositoryImpl[T]{uow: uow}
}

func (r *baseRepositoryImpl[T]) UnitOfWork() *UnitOfWork { return r.uow }

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.uow.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.uow.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.uow.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.uow.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.uow.db.NewDelete() }

func (r *baseRepositoryImpl[T]) valsToSlice(entity ...*T) []*T {
	entities := make([]*T, len(entity))
	copy(entities, entity)
	return entities
}

func applyQueryOptions(q *bun.SelectQuery, o *types.QueryOptions) *bun.SelectQuery {
	for _, rel := range o.Relations {
		q = q.Relation(rel)
	}
	if o.Filter != nil {
		q = q.Where(o.Filter.Schema, o.Filter.Args...)
	}
	if o.Order != nil {
		q = q.Order(o.Order.Expr())
	}
	return q
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context, opts ...types.QueryOption) ([]*T, error) {
	var entities []*T
	q := r.uow.db.NewSelect().Model(&entities)
	q = applyQueryOptions(q, types.NewQueryOptions(opts...))
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) GetFirstOrDefault(ctx context.Context, filter *types.QueryFilter, relations ...string) (*T, error) {
	if filter == nil {
		return nil, ErrNilFilter
	}
	var entity T
	q := r.uow.db.NewSelect().Model(&entity).Where(filter.Schema, filter.Args...)
	for _, rel := range types.SplitRelationPaths(relations...) {
		q = q.Relation(rel)
	}
	err := q.Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetByPK(ctx context.Context, id any, relations ...string) (*T, error) {
	var entity T
	q := r.uow.db.NewSelect().Model(&entity).Where("id = ?", id)
	for _, rel := range types.SplitRelationPaths(relations...) {
		q = q.Relation(rel)
	}
	err := q.Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	var entities []*T
	err := r.uow.db.NewSelect().Model(&entities).Where(query, args...).Scan(ctx)
	return entities, err
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var entity T
	q := r.uow.db.NewSelect().Model(&entity)
	if filter != nil {
		q = q.Where(filter.Schema, filter.Args...)
	}
	return q.Count(ctx)
}

func (r *baseRepositoryImpl[T]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	var entities []*T
	query := r.uow.db.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Schema, pageRequest.GetFilter().Args...)
	}
	pagination := types.NewDefaultPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Order(pageRequest.GetOrderExprs()...).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *baseRepositoryImpl[T]) Create(entity ...*T) {
	for _, e := range entity {
		r.uow.stage(changeInsert, e)
	}
}

func (r *baseRepositoryImpl[T]) Update(entity ...*T) {
	for _, e := range entity {
		r.uow.stage(changeUpdate, e)
	}
}

func (r *baseRepositoryImpl[T]) Delete(entity ...*T) {
	for _, e := range entity {
		r.uow.stage(changeDelete, e)
	}
}

func (r *baseRepositoryImpl[T]) CreateTx(ctx context.Context, tx *bun.Tx, entity ...*T) error {
	entities := r.valsToSlice(entity...)
	_, err := tx.NewInsert().Model(&entities).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) UpdateTx(ctx context.Context, tx *bun.Tx, entity *T) error {
	_, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) DeleteTx(ctx context.Context, tx *bun.Tx, entity *T) error {
	_, err := tx.NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) UpsertTx(ctx context.Context, tx *bun.Tx, fields []string, conflictColumns []string, entity ...*T) error {
	if len(fields) == 0 {
		return fmt.Errorf("fields cannot be empty")
	}

	entities := r.valsToSlice(entity...)

	if r.uow.db.HasFeature(feature.InsertOnConflict) {
		return r.upsertOnConflict(ctx, tx.NewInsert(), fields, conflictColumns, entities)
	}
	if r.uow.db.HasFeature(feature.InsertOnDuplicateKey) {
		return r.upsertOnDuplicateKey(ctx, tx.NewInsert(), fields, entities)
	}
	return r.upsertFallback(ctx, tx, entities)
}

// PostgreSQL and SQLite: INSERT ... ON CONFLICT (...) DO UPDATE.
func (r *baseRepositoryImpl[T]) upsertOnConflict(ctx context.Context, insertQuery *bun.InsertQuery, fields []string, conflictColumns []string, entities []*T) error {
	if len(conflictColumns) == 0 {
		conflictColumns = []string{"id"}
	}
	var queryArgs []string
	for _, field := range fields {
		queryArgs = append(queryArgs, fmt.Sprintf("%s = EXCLUDED.%s", bun.Ident(field), bun.Ident(field)))
	}
	_, err := insertQuery.
		Model(&entities).
		On("CONFLICT (" + strings.Join(conflictColumns, ",") + ") DO UPDATE").
		Set(strings.Join(queryArgs, ", ")).
		Exec(ctx)
	return err
}

// MySQL: INSERT ... ON DUPLICATE KEY UPDATE.
func (r *baseRepositoryImpl[T]) upsertOnDuplicateKey(ctx context.Context, insertQuery *bun.InsertQuery, fields []string, entities []*T) error {
	var queryArgs []string
	for _, field := range fields {
		queryArgs = append(queryArgs, fmt.Sprintf("%s = VALUES(%s)", bun.Ident(field), bun.Ident(field)))
	}
	_, err := insertQuery.
		Model(&entities).
		On("DUPLICATE KEY UPDATE " + strings.Join(queryArgs, ", ")).
		Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) upsertFallback(ctx context.Context, tx *bun.Tx, entities []*T) error {
	for _, entity := range entities {
		_, err := tx.NewInsert().Model(entity).Exec(ctx)
		if err != nil {
			_, updateErr := tx.NewUpdate().Model(entity).WherePK().Exec(ctx)
			if updateErr != nil {
				return fmt.Errorf("upsert failed for entity: insert error: %v, update error: %v", err, updateErr)
			}
		}
	}
	return nil
}
