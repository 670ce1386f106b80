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

var globalManager Manager

// Init connects the global database using the provided configuration and
// registers all models from the default registry.
func Init(ctx context.Context, cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	if err := validateType(cfg.Connection.Type); err != nil {
		return nil, err
	}

	manager := NewManager(&cfg.Connection)
	manager.SetLogger(GetLogger())
	if err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := manager.DB()
	db.RegisterModel(RegisteredModelInstances()...)

	globalManager = manager
	return db, nil
}

func validateType(dbType string) error {
	switch dbType {
	case "mysql", "postgres", "postgresql", "sqlite", "sqlite3":
		return nil
	}
	return fmt.Errorf("unsupported database type: %s, supported types: [mysql postgres sqlite]", dbType)
}

// DB returns the global Bun database instance, or nil before Init.
func DB() *bun.DB {
	if globalManager != nil {
		return globalManager.DB()
	}
	return nil
}

// GetManager returns the global database manager, or nil before Init.
func GetManager() Manager {
	return globalManager
}

// Close closes the global database connection.
func Close() error {
	if globalManager != nil {
		return globalManager.Disconnect()
	}
	return nil
}

// Health returns the current health status of the global database.
func Health(ctx context.Context) *HealthStatus {
	if globalManager != nil {
		return globalManager.HealthCheck(ctx)
	}
	return &HealthStatus{
		Healthy:   false,
		Connected: false,
		LastError: "database not initialized",
	}
}

// Stats returns global database connection statistics.
func Stats() *DBStats {
	if globalManager != nil {
		return globalManager.Stats()
	}
	return &DBStats{}
}
