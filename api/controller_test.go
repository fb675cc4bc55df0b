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

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/crudbase"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/produto"
	"github.com/tomoncle/crudbase/repository"
	"github.com/tomoncle/crudbase/types"
	"github.com/tomoncle/crudbase/utils"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func quietLogger() *utils.Logger {
	l := utils.NewLogger("HTTP")
	l.SetOutput(io.Discard)
	return l
}

func newTestApp(t *testing.T) (*fiber.App, *produto.Service) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.NewMigrationManager(db, nil).RunMigrations(context.Background()))

	svc := produto.NewService(db, database.NopLogger{})
	app := NewApp(quietLogger())
	RegisterProdutoRoutes(app, svc)
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[V any](t *testing.T, resp *http.Response) V {
	t.Helper()
	defer resp.Body.Close()
	var v V
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestCreateAndGet(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/v1/produtos/", `{"descricao":"x"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[produto.Produto](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "x", created.Descricao)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/v1/produtos/%d", created.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode[produto.Produto](t, resp))
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	app, svc := newTestApp(t)
	p, err := svc.Insert(ctx, &produto.Produto{Descricao: "x"})
	require.NoError(t, err)
	path := fmt.Sprintf("/api/v1/produtos/%d", p.ID)

	resp := do(t, app, http.MethodPut, path, `{"descricao":"y"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "y", stored.Descricao)

	resp = do(t, app, http.MethodPut, path, fmt.Sprintf(`{"id":%d,"descricao":"z"}`, p.ID+1))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, crudbase.CodeIDMismatch, decode[ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[ErrorResponse](t, resp).Code)
}

func TestWritesRejectMisplacedIDs(t *testing.T) {
	ctx := context.Background()
	app, svc := newTestApp(t)
	p, err := svc.Insert(ctx, &produto.Produto{Descricao: "x"})
	require.NoError(t, err)

	resp := do(t, app, http.MethodPut, "/api/v1/produtos/0", `{"descricao":"y"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, crudbase.CodeInvalidID, decode[ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/v1/produtos/", fmt.Sprintf(`{"id":%d,"descricao":"y"}`, p.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, crudbase.CodeInvalidModel, decode[ErrorResponse](t, resp).Code)

	n, err := svc.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", stored.Descricao)
}

func TestBulkDelete(t *testing.T) {
	ctx := context.Background()
	app, svc := newTestApp(t)
	a, err := svc.Insert(ctx, &produto.Produto{Descricao: "a"})
	require.NoError(t, err)
	b, err := svc.Insert(ctx, &produto.Produto{Descricao: "b"})
	require.NoError(t, err)

	resp := do(t, app, http.MethodPost, "/api/v1/produtos/delete", fmt.Sprintf(`{"ids":[%d,%d]}`, a.ID, b.ID))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	n, err := svc.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPageEndpoint(t *testing.T) {
	ctx := context.Background()
	app, svc := newTestApp(t)
	for _, d := range []string{"a", "b", "c"} {
		_, err := svc.Insert(ctx, &produto.Produto{Descricao: d})
		require.NoError(t, err)
	}

	resp := do(t, app, http.MethodGet, "/api/v1/produtos/?page=2&page_size=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[types.Pagination[produto.Produto]](t, resp)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c", page.Items[0].Descricao)
}

func TestBadRequests(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/v1/produtos/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_request", decode[ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/v1/produtos/", `{"descricao":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/produtos/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/produtos/999", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.Header.Get(HeaderRequestID))
	assert.Equal(t, "req-1", decode[ErrorResponse](t, resp).RequestID)

	resp = do(t, app, http.MethodGet, "/api/v1/produtos/", "")
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}

// failingService answers every call with err.
type failingService struct {
	crudbase.Service[produto.Produto, int]
	err error
}

func (s failingService) Get(context.Context, int) (*produto.Produto, error) {
	return nil, s.err
}

func TestInternalErrorsAreHidden(t *testing.T) {
	app := NewApp(quietLogger())
	RegisterProdutoRoutes(app, failingService{err: errors.New("dial tcp: connection refused")})

	resp := do(t, app, http.MethodGet, "/api/v1/produtos/1", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "internal_error", body.Code)
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestPanicRecovered(t *testing.T) {
	app := NewApp(quietLogger())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp := do(t, app, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"business", crudbase.NewBusinessError("rule", "broken"), 422, "rule"},
		{"not found", fmt.Errorf("find: %w", repository.ErrNotFound), 404, "not_found"},
		{"no rows", sql.ErrNoRows, 404, "not_found"},
		{"duplicate", errors.New("UNIQUE constraint failed: produto.id"), 409, "duplicate_key"},
		{"foreign key", errors.New("FOREIGN KEY constraint failed"), 409, "foreign_key_violation"},
		{"fiber", fiber.NewError(400, "invalid id"), 400, "bad_request"},
		{"other", errors.New("boom"), 500, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := StatusOf(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHealthRoute(t *testing.T) {
	app := NewApp(quietLogger())
	healthy := true
	RegisterHealthRoutes(app, func(context.Context) *database.HealthStatus {
		return &database.HealthStatus{Healthy: healthy, Connected: healthy}
	})

	resp := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	healthy = false
	resp = do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
