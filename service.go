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

package crudbase

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/repository"
	"github.com/tomoncle/crudbase/types"
	"github.com/uptrace/bun"
)

// Service is the CRUD surface exposed to callers such as HTTP handlers.
type Service[T any, ID comparable] interface {
	// Get returns a single entity by its identifier.
	Get(ctx context.Context, id ID) (*T, error)

	// Exists reports whether an entity with id is stored.
	Exists(ctx context.Context, id ID) (bool, error)

	// All returns all entities.
	All(ctx context.Context) ([]*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Page returns a paginated list of entities.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// Count returns the number of entities matching filter, all when nil.
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	// Insert persists a new entity and returns it with its generated id.
	Insert(ctx context.Context, model *T) (*T, error)

	// Update saves model under id.
	Update(ctx context.Context, id ID, model *T) error

	// Delete removes an entity by its identifier.
	Delete(ctx context.Context, id ID) error

	// DeleteAll deletes ids one by one, stopping at the first failure.
	DeleteAll(ctx context.Context, ids []ID) error
}

var (
	defaultLoggerOnce sync.Once
	defaultLogger     database.Logger
)

func crudLogger() database.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = database.NewDefaultLogger("CRUD")
	})
	return defaultLogger
}

type options struct {
	hooks      any
	transactor database.Transactor
	logger     database.Logger
}

type Option func(*options)

// WithHooks sets the hooks run around each mutating call. Type arguments
// must match the service:
//
//	crudbase.WithHooks[Produto, int](hooks)
func WithHooks[T any, ID comparable](hooks Hooks[T, ID]) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithTransactor runs each mutating call inside a transaction from tx.
// Without it, calls go straight to the repository.
func WithTransactor(tx database.Transactor) Option {
	return func(o *options) {
		o.transactor = tx
	}
}

func WithLogger(logger database.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// CrudService implements Service on top of a CrudBaseRepository. It holds
// no state of its own.
type CrudService[T any, ID comparable, PT types.Entity[T, ID]] struct {
	repo       repository.CrudBaseRepository[T, ID]
	hooks      Hooks[T, ID]
	transactor database.Transactor
	logger     database.Logger
}

// NewCrudService builds a service for repo. PT is inferred:
//
//	svc := crudbase.NewCrudService[Produto, int](repo)
//
// It panics if WithHooks was given hooks for another entity type.
func NewCrudService[T any, ID comparable, PT types.Entity[T, ID]](repo repository.CrudBaseRepository[T, ID], opts ...Option) *CrudService[T, ID, PT] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var hooks Hooks[T, ID] = NopHooks[T, ID]{}
	if o.hooks != nil {
		h, ok := o.hooks.(Hooks[T, ID])
		if !ok {
			panic(fmt.Sprintf("crudbase: hooks %T do not match service type %T", o.hooks, (*T)(nil)))
		}
		hooks = h
	}
	logger := o.logger
	if logger == nil {
		logger = crudLogger()
	}

	return &CrudService[T, ID, PT]{
		repo:       repo,
		hooks:      hooks,
		transactor: o.transactor,
		logger:     logger,
	}
}

// Repository returns the repository the service delegates to.
func (s *CrudService[T, ID, PT]) Repository() repository.CrudBaseRepository[T, ID] {
	return s.repo
}

func (s *CrudService[T, ID, PT]) Get(ctx context.Context, id ID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CrudService[T, ID, PT]) Exists(ctx context.Context, id ID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *CrudService[T, ID, PT]) All(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *CrudService[T, ID, PT]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	return s.repo.List(ctx, filter)
}

func (s *CrudService[T, ID, PT]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.repo.Page(ctx, page)
}

func (s *CrudService[T, ID, PT]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.repo.Count(ctx, filter)
}

// Insert runs PreInsert, then ValidateInsert, then saves the model. A model
// that already carries an id is rejected, since saving it would overwrite
// the stored row.
func (s *CrudService[T, ID, PT]) Insert(ctx context.Context, model *T) (*T, error) {
	if model == nil {
		return nil, NewBusinessError(CodeInvalidModel, "model cannot be nil")
	}
	if id := PT(model).GetID(); !types.IsZeroID(id) {
		return nil, BusinessErrorf(CodeInvalidModel, "new model must not carry an id, got %v", id)
	}

	var saved *T
	err := s.inTx(ctx, func(ctx context.Context, repo repository.CrudBaseRepository[T, ID]) error {
		m, err := s.hooks.PreInsert(ctx, model)
		if err != nil {
			return err
		}
		if err := s.hooks.ValidateInsert(ctx, m); err != nil {
			return err
		}
		saved, err = repo.Save(ctx, m)
		return err
	})
	if err != nil {
		s.logger.Warn("Insert failed", "error", err)
		return nil, err
	}

	s.logger.Debug("Inserted", "id", PT(saved).GetID())
	return saved, nil
}

// Update runs PreUpdate, then ValidateUpdate, then saves the model. The id
// argument wins: a model without id takes it, a model with another id is
// rejected before any hook runs. A zero id is rejected too.
func (s *CrudService[T, ID, PT]) Update(ctx context.Context, id ID, model *T) error {
	if model == nil {
		return NewBusinessError(CodeInvalidModel, "model cannot be nil")
	}
	if types.IsZeroID(id) {
		return BusinessErrorf(CodeInvalidID, "invalid id %v", id)
	}
	switch modelID := PT(model).GetID(); {
	case types.IsZeroID(modelID):
		PT(model).SetID(id)
	case modelID != id:
		return BusinessErrorf(CodeIDMismatch, "id %v does not match model id %v", id, modelID)
	}

	err := s.inTx(ctx, func(ctx context.Context, repo repository.CrudBaseRepository[T, ID]) error {
		m, err := s.hooks.PreUpdate(ctx, model)
		if err != nil {
			return err
		}
		if err := s.hooks.ValidateUpdate(ctx, m); err != nil {
			return err
		}
		_, err = repo.Save(ctx, m)
		return err
	})
	if err != nil {
		s.logger.Warn("Update failed", "id", id, "error", err)
		return err
	}

	s.logger.Debug("Updated", "id", id)
	return nil
}

// Delete runs ValidateDelete, then PreDelete, then deletes the row.
func (s *CrudService[T, ID, PT]) Delete(ctx context.Context, id ID) error {
	err := s.inTx(ctx, func(ctx context.Context, repo repository.CrudBaseRepository[T, ID]) error {
		if err := s.hooks.ValidateDelete(ctx, id); err != nil {
			return err
		}
		if err := s.hooks.PreDelete(ctx, id); err != nil {
			return err
		}
		return repo.DeleteByID(ctx, id)
	})
	if err != nil {
		s.logger.Warn("Delete failed", "id", id, "error", err)
		return err
	}

	s.logger.Debug("Deleted", "id", id)
	return nil
}

// DeleteAll calls Delete for each id in order. It is not atomic: ids
// deleted before a failure stay deleted and later ids are not attempted.
func (s *CrudService[T, ID, PT]) DeleteAll(ctx context.Context, ids []ID) error {
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *CrudService[T, ID, PT]) inTx(ctx context.Context, fn func(ctx context.Context, repo repository.CrudBaseRepository[T, ID]) error) error {
	if s.transactor == nil {
		return fn(ctx, s.repo)
	}
	return s.transactor.InTx(ctx, func(ctx context.Context, tx bun.IDB) error {
		return fn(ctx, s.repo.WithTx(tx))
	})
}
