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

package types

import "strings"

// QueryFilter describes a WHERE clause schema and its argument values.
type QueryFilter struct {
	Schema string
	Args   []interface{}
}

// NewQueryFilter creates a new query filter with schema and args.
func NewQueryFilter(schema string, args ...interface{}) *QueryFilter {
	return &QueryFilter{schema, args}
}

// Order describes a single ordering key and its direction.
type Order struct {
	Column     string
	Descending bool
}

// Expr renders the order as a SQL order expression.
func (o Order) Expr() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// QueryOptions collects the optional parts of a repository read: a filter,
// an ordering key, and relation paths to eager-load with the result.
type QueryOptions struct {
	Filter    *QueryFilter
	Order     *Order
	Relations []string
}

// QueryOption mutates QueryOptions.
type QueryOption func(*QueryOptions)

// NewQueryOptions applies the given options to an empty QueryOptions.
func NewQueryOptions(opts ...QueryOption) *QueryOptions {
	o := &QueryOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFilter restricts the query to rows matching the WHERE schema and args.
func WithFilter(schema string, args ...interface{}) QueryOption {
	return func(o *QueryOptions) {
		o.Filter = NewQueryFilter(schema, args...)
	}
}

// WithOrder sorts the result ascending by the given column.
func WithOrder(column string) QueryOption {
	return func(o *QueryOptions) {
		o.Order = &Order{Column: column}
	}
}

// WithOrderDesc sorts the result descending by the given column.
func WithOrderDesc(column string) QueryOption {
	return func(o *QueryOptions) {
		o.Order = &Order{Column: column, Descending: true}
	}
}

// WithRelations eager-loads the given relation paths alongside the result.
// Paths are accepted either as separate values or as a single comma-separated
// string; both forms are normalized via SplitRelationPaths.
func WithRelations(paths ...string) QueryOption {
	return func(o *QueryOptions) {
		o.Relations = append(o.Relations, SplitRelationPaths(paths...)...)
	}
}

// SplitRelationPaths normalizes relation path input: each element may itself
// contain a comma-separated list, and empty segments are dropped.
func SplitRelationPaths(paths ...string) []string {
	var result []string
	for _, p := range paths {
		for _, part := range strings.Split(p, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
