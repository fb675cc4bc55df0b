/*
 * Copyright 2025 tomoncle.
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

	"github.com/uptrace/bun"
)

// TxFunc runs inside a transaction. Queries must go through tx.
type TxFunc func(ctx context.Context, tx bun.IDB) error

// Transactor scopes a unit of work to one transaction: it begins, calls fn,
// and commits when fn returns nil. Any error or panic from fn rolls back.
type Transactor interface {
	InTx(ctx context.Context, fn TxFunc) error
}

type bunTransactor struct {
	db     *bun.DB
	opts   *sql.TxOptions
	logger Logger
}

// NewTransactor returns a Transactor opening transactions on db.
func NewTransactor(db *bun.DB, logger Logger) Transactor {
	return NewTransactorWithOptions(db, nil, logger)
}

// NewTransactorWithOptions is NewTransactor with explicit isolation settings.
func NewTransactorWithOptions(db *bun.DB, opts *sql.TxOptions, logger Logger) Transactor {
	if logger == nil {
		logger = NopLogger{}
	}
	return &bunTransactor{db: db, opts: opts, logger: logger}
}

func (t *bunTransactor) InTx(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.BeginTx(ctx, t.opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var committed bool
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			t.logger.Error("Failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}

// NoTxTransactor runs fn directly on the database without a transaction.
// It suits stores without transaction support and read-only paths.
type NoTxTransactor struct {
	DB bun.IDB
}

func (t NoTxTransactor) InTx(ctx context.Context, fn TxFunc) error {
	return fn(ctx, t.DB)
}
