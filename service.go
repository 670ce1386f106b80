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

package repositorio

import (
	"context"
	"sync"

	"github.com/1diego321/repositorio/database"
	"github.com/1diego321/repositorio/repository"
	"github.com/1diego321/repositorio/types"

	"github.com/uptrace/bun"
)

type Service[T any] interface {
	// Get returns a single entity by its primary key, or nil if absent.
	Get(ctx context.Context, id any) (*T, error)

	// All returns entities matching the given query options.
	All(ctx context.Context, opts ...types.QueryOption) ([]*T, error)

	// First returns the first entity matching the filter, or nil if none.
	First(ctx context.Context, filter *types.QueryFilter, relations ...string) (*T, error)

	// Query executes a raw WHERE clause and maps the results to entities.
	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	// Count returns the number of entities matching the filter.
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	// Page returns a paginated list of entities.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// Add stages one or more entities for insertion.
	Add(entity ...*T)

	// Modify stages one or more entities for update.
	Modify(entity ...*T)

	// Remove stages one or more entities for removal.
	Remove(entity ...*T)

	// Pending returns the number of staged, unsaved changes.
	Pending() int

	// Discard drops all staged changes.
	Discard()

	// Save persists all staged changes in one transaction.
	Save(ctx context.Context) error

	// Repository returns the underlying generic repository.
	Repository() repository.Repository[T]

	// SelectBuilder returns a Bun select query builder for the entity.
	SelectBuilder() *bun.SelectQuery
}

type baseServiceImpl[T any] struct {
	uow  *repository.UnitOfWork
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a Service implementation bound to a fresh unit of work
// over the global database connection.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

// NewServiceWithUnitOfWork returns a Service sharing the caller's unit of
// work, so that changes staged through several services are saved together.
func NewServiceWithUnitOfWork[T any](uow *repository.UnitOfWork) Service[T] {
	return &baseServiceImpl[T]{uow: uow}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() {
		if s.uow == nil {
			s.uow = repository.NewUnitOfWork(database.DB())
		}
		s.repo = repository.NewRepository[T](s.uow)
	})
	return s.repo
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id any) (*T, error) {
	return s.baseRepo().GetByPK(ctx, id)
}

func (s *baseServiceImpl[T]) All(ctx context.Context, opts ...types.QueryOption) ([]*T, error) {
	return s.baseRepo().GetAll(ctx, opts...)
}

func (s *baseServiceImpl[T]) First(ctx context.Context, filter *types.QueryFilter, relations ...string) (*T, error) {
	return s.baseRepo().GetFirstOrDefault(ctx, filter, relations...)
}

func (s *baseServiceImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	return s.baseRepo().Query(ctx, query, args...)
}

func (s *baseServiceImpl[T]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.baseRepo().Count(ctx, filter)
}

func (s *baseServiceImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.baseRepo().Page(ctx, page)
}

func (s *baseServiceImpl[T]) Add(entity ...*T) {
	s.baseRepo().Create(entity...)
}

func (s *baseServiceImpl[T]) Modify(entity ...*T) {
	s.baseRepo().Update(entity...)
}

func (s *baseServiceImpl[T]) Remove(entity ...*T) {
	s.baseRepo().Delete(entity...)
}

func (s *baseServiceImpl[T]) Pending() int {
	return s.baseRepo().UnitOfWork().Pending()
}

func (s *baseServiceImpl[T]) Discard() {
	s.baseRepo().UnitOfWork().Discard()
}

func (s *baseServiceImpl[T]) Save(ctx context.Context) error {
	return s.baseRepo().UnitOfWork().Save(ctx)
}

func (s *baseServiceImpl[T]) Repository() repository.Repository[T] {
	return s.baseRepo()
}

func (s *baseServiceImpl[T]) SelectBuilder() *bun.SelectQuery {
	return s.baseRepo().NewSelect()
}
