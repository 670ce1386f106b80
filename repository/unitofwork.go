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
	"fmt"

	"github.com/uptrace/bun"
)

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeDelete
)

func (k changeKind) String() string {
	switch k {
	case changeInsert:
		return "insert"
	case changeUpdate:
		return "update"
	case changeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type change struct {
	kind  changeKind
	model interface{} // struct pointer compatible with Bun
}

// UnitOfWork holds a Bun database handle and a change set of staged inserts,
// updates, and deletes. Repositories bound to it stage mutations here; only
// Save writes them to the database. A unit of work is meant for single-writer
// use, typically one per request, and performs no internal locking. Its
// lifetime must exceed that of the repositories bound to it.
type UnitOfWork struct {
	db      *bun.DB
	changes []change
}

// NewUnitOfWork returns a unit of work backed by the provided Bun DB.
func NewUnitOfWork(db *bun.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// DB returns the underlying Bun database handle.
func (u *UnitOfWork) DB() *bun.DB { return u.db }

func (u *UnitOfWork) stage(kind changeKind, models ...interface{}) {
	for _, m := range models {
		u.changes = append(u.changes, change{kind: kind, model: m})
	}
}

// Pending returns the number of staged changes not yet saved.
func (u *UnitOfWork) Pending() int { return len(u.changes) }

// Discard drops all staged changes without touching the database.
func (u *UnitOfWork) Discard() { u.changes = nil }

// Save persists all staged changes, in staging order, inside a single
// transaction. On success the change set is cleared; on failure the
// transaction rolls back and the change set is kept so the caller can inspect
// or discard it. Save with an empty change set is a no-op.
func (u *UnitOfWork) Save(ctx context.Context) error {
	if len(u.changes) == 0 {
		return nil
	}
	err := u.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, c := range u.changes {
			var err error
			switch c.kind {
			case changeInsert:
				_, err = tx.NewInsert().Model(c.model).Exec(ctx)
			case changeUpdate:
				_, err = tx.NewUpdate().Model(c.model).WherePK().Exec(ctx)
			case changeDelete:
				_, err = tx.NewDelete().Model(c.model).WherePK().Exec(ctx)
			}
			if err != nil {
				return fmt.Errorf("save: staged %s failed: %w", c.kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.changes = nil
	return nil
}
