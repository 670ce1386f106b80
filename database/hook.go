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
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
)

var sqlSilentMode bool

// EnableSqlSilent suppresses all query hook output when set.
func EnableSqlSilent(b bool) {
	sqlSilentMode = b
}

// QueryHook prints executed queries colored by operation. Its behavior can be
// toggled at runtime through the environment variable named by EnvName:
// unset uses the configured values, "0" disables, "2" enables verbose mode.
type QueryHook struct {
	EnvName string
	Enabled bool
	Verbose bool
	Writer  io.Writer
}

var _ bun.QueryHook = (*QueryHook)(nil)

// NewQueryHook returns a query hook writing to w, or os.Stdout when w is nil.
func NewQueryHook(envName string, enabled, verbose bool, w io.Writer) *QueryHook {
	if w == nil {
		w = os.Stdout
	}
	return &QueryHook{EnvName: envName, Enabled: enabled, Verbose: verbose, Writer: w}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if sqlSilentMode {
		return
	}
	enabled := h.Enabled
	verbose := h.Verbose
	if env, ok := os.LookupEnv(h.EnvName); ok {
		enabled = env != "" && env != "0"
		verbose = env == "2"
	}

	if !enabled {
		return
	}

	if !verbose {
		switch {
		case event.Err == nil, errors.Is(event.Err, sql.ErrNoRows), errors.Is(event.Err, sql.ErrTxDone):
			return
		}
	}

	now := time.Now()
	dur := now.Sub(event.StartTime)

	args := []interface{}{
		now.Format("2006-01-02 15:04:05.000"),
		fmt.Sprintf("%17s", dur.Round(time.Microsecond)),
		"  ", formatOperation(event),
	}

	if event.Err != nil {
		args = append(args,
			"\t",
			color.New(color.BgRed).Sprintf(" %s ", event.Err.Error()),
		)
	}
	w := h.Writer
	if w == nil {
		w = os.Stdout
	}
	_, _ = fmt.Fprintln(w, args...)
}

func formatOperation(event *bun.QueryEvent) string {
	switch event.Operation() {
	case "SELECT":
		return color.GreenString(event.Query)
	case "INSERT":
		return color.BlueString(event.Query)
	case "UPDATE":
		return color.YellowString(event.Query)
	case "DELETE":
		return color.MagentaString(event.Query)
	default:
		return color.RedString(event.Query)
	}
}

// SlowQueryHook reports successful queries slower than SlowTime through the
// configured Logger.
type SlowQueryHook struct {
	SlowTime time.Duration
	Logger   Logger
}

var _ bun.QueryHook = (*SlowQueryHook)(nil)

func (h *SlowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *SlowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if sqlSilentMode {
		return
	}
	if event.Err != nil {
		return
	}

	duration := time.Since(event.StartTime)
	if duration > h.SlowTime && h.Logger != nil {
		h.Logger.Warn("slow query detected",
			"duration", duration,
			"slow_threshold", h.SlowTime,
			"query", event.Query,
		)
	}
}
