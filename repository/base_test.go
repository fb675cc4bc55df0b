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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type widget struct {
	bun.BaseModel `bun:"table:widget,alias:w"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}

func (w *widget) GetID() int64 { return w.ID }
func (w *widget) SetID(id int64) { w.ID = id }

func newWidgetRepo(t *testing.T) (Repository[widget, int64], *bun.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.CreateTables(context.Background(), db, (*widget)(nil)))
	return NewRepository[widget, int64](db), db
}

func seedWidgets(t *testing.T, repo Repository[widget, int64], names ...string) []*widget {
	t.Helper()
	out := make([]*widget, 0, len(names))
	for _, n := range names {
		w, err := repo.Save(context.Background(), &widget{Name: n})
		require.NoError(t, err)
		out = append(out, w)
	}
	return out
}

func TestSaveInsertAssignsID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)

	in := &widget{Name: "bolt"}
	got, err := repo.Save(ctx, in)
	require.NoError(t, err)
	assert.Same(t, in, got)
	assert.NotZero(t, got.ID)

	second, err := repo.Save(ctx, &widget{Name: "nut"})
	require.NoError(t, err)
	assert.NotEqual(t, got.ID, second.ID)
}

func TestSaveUpsert(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	w := seedWidgets(t, repo, "bolt")[0]

	_, err := repo.Save(ctx, &widget{ID: w.ID, Name: "screw"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "screw", found.Name)

	_, err = repo.Save(ctx, &widget{ID: 500, Name: "washer"})
	require.NoError(t, err)
	found, err = repo.FindByID(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, "washer", found.Name)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSaveUniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	seedWidgets(t, repo, "bolt")

	_, err := repo.Save(ctx, &widget{Name: "bolt"})
	require.Error(t, err)
	is, class := database.IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, database.DuplicateKeyErr, class)
}

func TestSaveNil(t *testing.T) {
	repo, _ := newWidgetRepo(t)
	_, err := repo.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestFindByIDNotFound(t *testing.T) {
	repo, _ := newWidgetRepo(t)

	_, err := repo.FindByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestExistsByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	w := seedWidgets(t, repo, "bolt")[0]

	ok, err := repo.ExistsByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByID(ctx, w.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	w := seedWidgets(t, repo, "bolt")[0]

	require.NoError(t, repo.DeleteByID(ctx, w.ID))
	assert.ErrorIs(t, repo.DeleteByID(ctx, w.ID), ErrNotFound)

	_, err := repo.FindByID(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndCount(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	seedWidgets(t, repo, "bolt", "big bolt", "nut")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filter := types.NewQueryFilter("name LIKE ?", "%bolt%")
	bolts, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, bolts, 2)

	n, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListEmpty(t *testing.T) {
	repo, _ := newWidgetRepo(t)
	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestPage(t *testing.T) {
	ctx := context.Background()
	repo, _ := newWidgetRepo(t)
	seeded := seedWidgets(t, repo, "a", "b", "c", "d", "e")

	page, err := repo.Page(ctx, types.NewDefaultPageRequest(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, seeded[2].ID, page.Items[0].ID)
	assert.Equal(t, seeded[3].ID, page.Items[1].ID)

	desc, err := repo.Page(ctx, types.NewPageRequest(1, 2, types.NewQueryFilter("name <> ?", "e"), "name DESC"))
	require.NoError(t, err)
	assert.Equal(t, 4, desc.Total)
	require.Len(t, desc.Items, 2)
	assert.Equal(t, "d", desc.Items[0].Name)
	assert.Equal(t, "c", desc.Items[1].Name)

	empty, err := repo.Page(ctx, types.NewPageRequest(1, 10, types.NewQueryFilter("name = ?", "zzz")))
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Empty(t, empty.Items)
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	repo, db := newWidgetRepo(t)

	boom := errors.New("boom")
	err := database.NewTransactor(db, nil).InTx(ctx, func(ctx context.Context, tx bun.IDB) error {
		if _, err := repo.WithTx(tx).Save(ctx, &widget{Name: "bolt"}); err != nil {
			return err
		}
		return boom
	})
	assert.Same(t, boom, err)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
