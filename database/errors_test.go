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
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifyMySQLErrors(t *testing.T) {
	tests := []struct {
		number uint16
		want   ErrorKind
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1146, NoTableErr},
		{1054, NoColumnErr},
		{1452, ForeignKeyViolationErr},
		{1265, DataTruncatedErr},
		{9999, UnknownErr},
	}
	for _, tt := range tests {
		err := &mysql.MySQLError{Number: tt.number, Message: "test"}
		is, kind := Classify(err)
		assert.True(t, is, "number %d", tt.number)
		assert.Equal(t, tt.want, kind, "number %d", tt.number)
	}
}

func TestClassifyWrappedMySQLError(t *testing.T) {
	err := fmt.Errorf("save: staged insert failed: %w", &mysql.MySQLError{Number: 1062})
	is, kind := Classify(err)
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, kind)
}

func TestClassifyTextualErrors(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"constraint failed: UNIQUE constraint failed: books.code (2067)", DuplicateKeyErr},
		{"ERROR: null value in column violates not-null constraint (SQLSTATE 23502)", NotNullViolationErr},
		{"no such table: books", NoTableErr},
		{"ERROR: relation \"books\" already exists (SQLSTATE 42P07)", ExistTableErr},
		{"no such column: pages", NoColumnErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
	}
	for _, tt := range tests {
		is, kind := Classify(errors.New(tt.msg))
		assert.True(t, is, tt.msg)
		assert.Equal(t, tt.want, kind, tt.msg)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	is, kind := Classify(errors.New("connection refused"))
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)
}

func TestClassifyNil(t *testing.T) {
	is, kind := Classify(nil)
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)
}

func TestClassifyNoRows(t *testing.T) {
	is, kind := Classify(sql.ErrNoRows)
	assert.True(t, is)
	assert.Equal(t, NoRowsErr, kind)

	is, kind = Classify(fmt.Errorf("lookup failed: %w", sql.ErrNoRows))
	assert.True(t, is)
	assert.Equal(t, NoRowsErr, kind)
}
