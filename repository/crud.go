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

package repository

import (
	"context"
	"errors"

	"github.com/tomoncle/crudbase/types"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=crud.go -destination=mock_repository.go -package=repository

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// SearchBaseRepository defines the read operations for an entity type.
type SearchBaseRepository[T any, ID comparable] interface {
	// FindByID returns the entity with id. A missing row yields an error
	// matching both ErrNotFound and sql.ErrNoRows.
	FindByID(ctx context.Context, id ID) (*T, error)

	ExistsByID(ctx context.Context, id ID) (bool, error)

	FindAll(ctx context.Context) ([]*T, error)

	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}

// CrudBaseRepository adds the write operations used by the CRUD service.
type CrudBaseRepository[T any, ID comparable] interface {
	SearchBaseRepository[T, ID]

	// Save inserts a model with a zero id and writes the generated id back
	// into it. A model with a non-zero id is upserted on its primary key.
	Save(ctx context.Context, model *T) (*T, error)

	// DeleteByID removes one row, returning ErrNotFound if none matched.
	DeleteByID(ctx context.Context, id ID) error

	// WithTx returns the same repository bound to tx.
	WithTx(tx bun.IDB) CrudBaseRepository[T, ID]
}
