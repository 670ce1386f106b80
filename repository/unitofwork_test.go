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

package repository_test

import (
	"context"
	"testing"

	"github.com/1diego321/repositorio/repository"

	"github.com/stretchr/testify/require"
)

func TestSaveEmptyChangeSetIsNoop(t *testing.T) {
	db := newTestDB(t)

	uow := repository.NewUnitOfWork(db)
	require.Equal(t, 0, uow.Pending())
	require.NoError(t, uow.Save(context.Background()))
}

func TestSavePreservesStagingOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := repository.NewUnitOfWork(db)
	repo := repository.NewRepository[Book](uow)

	// Insert and delete of the same entity in one unit of work: the insert
	// runs first, then the delete removes it again.
	book := newBook("ephemeral", 12, 0)
	repo.Create(book)
	repo.Delete(book)
	require.Equal(t, 2, uow.Pending())
	require.NoError(t, uow.Save(ctx))

	books, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestChangesSharedAcrossRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := repository.NewUnitOfWork(db)
	books := repository.NewRepository[Book](uow)
	authors := repository.NewRepository[Author](uow)

	books.Create(newBook("shared uow", 9, 0))
	authors.Create(&Author{Name: "Rob Pike"})
	require.Equal(t, 2, uow.Pending())

	require.NoError(t, uow.Save(ctx))

	gotBooks, err := books.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, gotBooks, 1)

	gotAuthors, err := authors.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, gotAuthors, 1)
}
