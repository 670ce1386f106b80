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

package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateTables creates the tables for the given model struct pointers if they
// do not exist yet. When no models are given, the default registry is used in
// priority order.
func CreateTables(ctx context.Context, db *bun.DB, models ...interface{}) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	if len(models) == 0 {
		models = RegisteredModelInstances()
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops the tables for the given model struct pointers if they
// exist. Intended for tests and local development.
func DropTables(ctx context.Context, db *bun.DB, models ...interface{}) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	for _, model := range models {
		if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}
	return nil
}
