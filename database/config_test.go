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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testConfigYAML = `connection:
  type: postgres
  host: db.internal
  port: 5432
  username: app
  password: secret
  dbname: app
  max_open_conns: 25
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	require.Equal(t, "postgres", cfg.Connection.Type)
	require.Equal(t, "db.internal", cfg.Connection.Host)
	require.Equal(t, 5432, cfg.Connection.Port)
	require.Equal(t, 25, cfg.Connection.MaxOpenConns)

	// Unset pool settings fall back to defaults.
	require.Equal(t, 10, cfg.Connection.MaxIdleConns)
	require.Equal(t, time.Hour, cfg.Connection.ConnMaxLifetime)
	require.Equal(t, time.Second*2, cfg.Connection.SlowQueryTime)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	require.Equal(t, "override.internal", cfg.Connection.Host)
	require.Equal(t, 6432, cfg.Connection.Port)
	require.Equal(t, "from-env", cfg.Connection.Password)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
