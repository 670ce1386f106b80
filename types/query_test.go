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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderExpr(t *testing.T) {
	assert.Equal(t, "name ASC", Order{Column: "name"}.Expr())
	assert.Equal(t, "name DESC", Order{Column: "name", Descending: true}.Expr())
}

func TestNewQueryOptions(t *testing.T) {
	o := NewQueryOptions(
		WithFilter("pages > ?", 100),
		WithOrderDesc("pages"),
		WithRelations("Author", "Publisher"),
	)

	assert.Equal(t, "pages > ?", o.Filter.Schema)
	assert.Equal(t, []interface{}{100}, o.Filter.Args)
	assert.True(t, o.Order.Descending)
	assert.Equal(t, []string{"Author", "Publisher"}, o.Relations)
}

func TestWithOrderAscending(t *testing.T) {
	o := NewQueryOptions(WithOrder("title"))
	assert.False(t, o.Order.Descending)
	assert.Equal(t, "title ASC", o.Order.Expr())
}

func TestSplitRelationPaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"empty", nil, nil},
		{"single", []string{"Author"}, []string{"Author"}},
		{"comma separated", []string{"Author,Publisher"}, []string{"Author", "Publisher"}},
		{"mixed with spaces", []string{" Author , Publisher ", "Tags"}, []string{"Author", "Publisher", "Tags"}},
		{"drops empty segments", []string{"Author,,", ""}, []string{"Author"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRelationPaths(tt.paths...))
		})
	}
}
