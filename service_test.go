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

package repositorio_test

import (
	"context"
	"testing"

	"github.com/1diego321/repositorio"
	"github.com/1diego321/repositorio/database"
	"github.com/1diego321/repositorio/repository"
	"github.com/1diego321/repositorio/types"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type Note struct {
	bun.BaseModel `bun:"table:notes,alias:n"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Body string `bun:"body,notnull"`
	Rank int    `bun:"rank"`
}

func initGlobalDB(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	cfg := &database.Config{
		Connection: database.ConnectionConfig{
			Type:   "sqlite",
			DBName: "file:servicetest?mode=memory&cache=shared",
		},
	}
	db, err := database.Init(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.CreateTables(ctx, db, (*Note)(nil)))
	t.Cleanup(func() { _ = database.DropTables(ctx, db, (*Note)(nil)) })
}

func TestServiceRoundTrip(t *testing.T) {
	initGlobalDB(t)
	ctx := context.Background()

	svc := repositorio.NewService[Note]()

	svc.Add(&Note{Body: "first", Rank: 2}, &Note{Body: "second", Rank: 1})
	require.Equal(t, 2, svc.Pending())
	require.NoError(t, svc.Save(ctx))
	require.Equal(t, 0, svc.Pending())

	notes, err := svc.All(ctx, types.WithOrderDesc("rank"))
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "first", notes[0].Body)

	first, err := svc.First(ctx, types.NewQueryFilter("body = ?", "second"))
	require.NoError(t, err)
	require.NotNil(t, first)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "second", got.Body)

	got.Rank = 10
	svc.Modify(got)
	svc.Remove(notes[0])
	require.NoError(t, svc.Save(ctx))

	total, err := svc.Count(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestServiceSharedUnitOfWork(t *testing.T) {
	initGlobalDB(t)
	ctx := context.Background()

	uow := repository.NewUnitOfWork(database.DB())
	svc := repositorio.NewServiceWithUnitOfWork[Note](uow)

	svc.Add(&Note{Body: "staged"})
	require.Equal(t, 1, uow.Pending())

	svc.Discard()
	require.Equal(t, 0, uow.Pending())
	require.NoError(t, svc.Save(ctx))

	total, err := svc.Count(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestServiceInvalidFilter(t *testing.T) {
	initGlobalDB(t)

	svc := repositorio.NewService[Note]()
	_, err := svc.First(context.Background(), nil)
	require.ErrorIs(t, err, repository.ErrNilFilter)
}
