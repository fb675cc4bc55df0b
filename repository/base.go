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
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tomoncle/crudbase/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
	"github.com/uptrace/bun/schema"
)

// Repository is a CrudBaseRepository that also exposes Bun query builders
// for queries the contract does not cover.
type Repository[T any, ID comparable] interface {
	CrudBaseRepository[T, ID]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}

type baseRepositoryImpl[T any, ID comparable, PT types.Entity[T, ID]] struct {
	db bun.IDB
}

// NewRepository returns a generic repository backed by db, which may be a
// *bun.DB or a bun.Tx. PT is inferred:
//
//	repo := repository.NewRepository[produto.Produto, int](db)
func NewRepository[T any, ID comparable, PT types.Entity[T, ID]](db bun.IDB) Repository[T, ID] {
	return &baseRepositoryImpl[T, ID, PT]{db: db}
}

func (r *baseRepositoryImpl[T, ID, PT]) WithTx(tx bun.IDB) CrudBaseRepository[T, ID] {
	return &baseRepositoryImpl[T, ID, PT]{db: tx}
}

func (r *baseRepositoryImpl[T, ID, PT]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T, ID, PT]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T, ID, PT]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T, ID, PT]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T, ID, PT]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

// withID returns a fresh model carrying only id, so WherePK works whatever
// the primary key column is called.
func (r *baseRepositoryImpl[T, ID, PT]) withID(id ID) *T {
	entity := new(T)
	PT(entity).SetID(id)
	return entity
}

func (r *baseRepositoryImpl[T, ID, PT]) FindByID(ctx context.Context, id ID) (*T, error) {
	entity := r.withID(id)
	err := r.db.NewSelect().Model(entity).WherePK().Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, ID, PT]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	return r.db.NewSelect().Model(r.withID(id)).WherePK().Exists(ctx)
}

func (r *baseRepositoryImpl[T, ID, PT]) FindAll(ctx context.Context) ([]*T, error) {
	return r.List(ctx, nil)
}

func (r *baseRepositoryImpl[T, ID, PT]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, ID, PT]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	query := r.db.NewSelect().Model((*T)(nil))
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	return query.Count(ctx)
}

func (r *baseRepositoryImpl[T, ID, PT]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	if pageRequest == nil {
		pageRequest = types.NewDefaultPageRequest(types.DefaultPage, types.DefaultPageSize)
	}
	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	if filter := pageRequest.GetFilter(); filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	pagination := types.NewPagination[T](pageRequest)
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}
	query = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize())
	if orders := pageRequest.GetOrders(); len(orders) > 0 {
		query = query.Order(orders...)
	} else {
		query = query.OrderExpr("?PKs")
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *baseRepositoryImpl[T, ID, PT]) Save(ctx context.Context, model *T) (*T, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}
	if types.IsZeroID(PT(model).GetID()) {
		if _, err := r.db.NewInsert().Model(model).Exec(ctx); err != nil {
			return nil, err
		}
		return model, nil
	}
	if err := r.upsert(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

func (r *baseRepositoryImpl[T, ID, PT]) DeleteByID(ctx context.Context, id ID) error {
	res, err := r.db.NewDelete().Model(r.withID(id)).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// upsert writes every non primary key column, picking the statement the
// dialect supports.
func (r *baseRepositoryImpl[T, ID, PT]) upsert(ctx context.Context, model *T) error {
	table := r.db.Dialect().Tables().Get(reflect.TypeOf((*T)(nil)).Elem())
	fields := make([]string, 0, len(table.DataFields))
	for _, f := range table.DataFields {
		fields = append(fields, f.Name)
	}
	keys := make([]string, 0, len(table.PKs))
	for _, f := range table.PKs {
		keys = append(keys, f.Name)
	}

	features := r.db.Dialect().Features()
	switch {
	case len(fields) == 0:
		return r.insertIfMissing(ctx, model)
	case features.Has(feature.InsertOnConflict):
		return r.upsertOnConflict(ctx, model, fields, keys)
	case features.Has(feature.InsertOnDuplicateKey):
		return r.upsertOnDuplicateKey(ctx, model, fields)
	default:
		return r.upsertFallback(ctx, model)
	}
}

func (r *baseRepositoryImpl[T, ID, PT]) upsertOnDuplicateKey(ctx context.Context, model *T, fields []string) error {
	query := r.db.NewInsert().Model(model).On("DUPLICATE KEY UPDATE")
	for _, field := range fields {
		query = query.Set("? = VALUES(?)", bun.Ident(field), bun.Ident(field))
	}
	_, err := query.Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID, PT]) upsertOnConflict(ctx context.Context, model *T, fields []string, keys []string) error {
	placeholders := make([]string, len(keys))
	args := make([]interface{}, len(keys))
	for i, key := range keys {
		placeholders[i] = "?"
		args[i] = bun.Ident(key)
	}
	query := r.db.NewInsert().
		Model(model).
		On("CONFLICT ("+strings.Join(placeholders, ", ")+") DO UPDATE", args...)
	for _, field := range fields {
		query = query.Set("? = EXCLUDED.?", bun.Ident(field), bun.Ident(field))
	}
	_, err := query.Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID, PT]) insertIfMissing(ctx context.Context, model *T) error {
	exists, err := r.db.NewSelect().Model(model).WherePK().Exists(ctx)
	if err != nil || exists {
		return err
	}
	_, err = r.db.NewInsert().Model(model).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID, PT]) upsertFallback(ctx context.Context, model *T) error {
	res, err := r.db.NewUpdate().Model(model).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err != nil || affected > 0 {
		return err
	}
	if _, err := r.db.NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("upsert failed for entity: %w", err)
	}
	return nil
}
