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
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func queryEvent(query string, err error) *bun.QueryEvent {
	return &bun.QueryEvent{
		Query:     query,
		StartTime: time.Now(),
		Err:       err,
	}
}

func TestQueryHookVerboseWritesQuery(t *testing.T) {
	var buf bytes.Buffer
	h := NewQueryHook("SQLLOG_HOOK_TEST", true, true, &buf)

	h.AfterQuery(context.Background(), queryEvent("SELECT 1", nil))
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestQueryHookNonVerboseOnlyReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	h := NewQueryHook("SQLLOG_HOOK_TEST", true, false, &buf)

	h.AfterQuery(context.Background(), queryEvent("SELECT 1", nil))
	assert.Empty(t, buf.String())

	h.AfterQuery(context.Background(), queryEvent("SELECT broken", errors.New("boom")))
	assert.Contains(t, buf.String(), "SELECT broken")
	assert.Contains(t, buf.String(), "boom")
}

func TestQueryHookDisabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewQueryHook("SQLLOG_HOOK_TEST", false, true, &buf)

	h.AfterQuery(context.Background(), queryEvent("SELECT 1", nil))
	assert.Empty(t, buf.String())
}

func TestQueryHookEnvOverride(t *testing.T) {
	var buf bytes.Buffer
	h := NewQueryHook("SQLLOG_HOOK_TEST", true, true, &buf)

	t.Setenv("SQLLOG_HOOK_TEST", "0")
	h.AfterQuery(context.Background(), queryEvent("SELECT 1", nil))
	assert.Empty(t, buf.String())

	t.Setenv("SQLLOG_HOOK_TEST", "2")
	h.AfterQuery(context.Background(), queryEvent("SELECT 2", nil))
	assert.Contains(t, buf.String(), "SELECT 2")
}

func TestQueryHookZeroValueDoesNotPanic(t *testing.T) {
	h := &QueryHook{Enabled: true}

	require.NotPanics(t, func() {
		h.AfterQuery(context.Background(), queryEvent("SELECT 1", errors.New("boom")))
	})
}

type captureLogger struct {
	warnings []string
}

func (l *captureLogger) SetLevel(LogLevel)                  {}
func (l *captureLogger) Debug(msg string, _ ...interface{}) {}
func (l *captureLogger) Info(msg string, _ ...interface{})  {}
func (l *captureLogger) Error(msg string, _ ...interface{}) {}

func (l *captureLogger) Warn(msg string, _ ...interface{}) {
	l.warnings = append(l.warnings, msg)
}

func TestSlowQueryHook(t *testing.T) {
	cl := &captureLogger{}
	h := &SlowQueryHook{SlowTime: time.Millisecond, Logger: cl}

	slow := queryEvent("SELECT pg_sleep(10)", nil)
	slow.StartTime = time.Now().Add(-time.Second)
	h.AfterQuery(context.Background(), slow)
	require.Len(t, cl.warnings, 1)

	fast := queryEvent("SELECT 1", nil)
	h.AfterQuery(context.Background(), fast)
	require.Len(t, cl.warnings, 1)

	failed := queryEvent("SELECT broken", errors.New("boom"))
	failed.StartTime = time.Now().Add(-time.Second)
	h.AfterQuery(context.Background(), failed)
	require.Len(t, cl.warnings, 1)
}
