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
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Hooks are the extension points a CrudService calls around persistence.
// A non-nil error from any of them aborts the operation and rolls back its
// transaction.
type Hooks[T any, ID comparable] interface {
	PreInsert(ctx context.Context, model *T) (*T, error)
	ValidateInsert(ctx context.Context, model *T) error
	PreUpdate(ctx context.Context, model *T) (*T, error)
	ValidateUpdate(ctx context.Context, model *T) error
	PreDelete(ctx context.Context, id ID) error
	ValidateDelete(ctx context.Context, id ID) error
}

// NopHooks returns models unchanged and accepts every operation. Embed it
// and override the methods you need.
type NopHooks[T any, ID comparable] struct{}

var _ Hooks[struct{}, int] = NopHooks[struct{}, int]{}

func (NopHooks[T, ID]) PreInsert(_ context.Context, model *T) (*T, error) { return model, nil }

func (NopHooks[T, ID]) ValidateInsert(context.Context, *T) error { return nil }

func (NopHooks[T, ID]) PreUpdate(_ context.Context, model *T) (*T, error) { return model, nil }

func (NopHooks[T, ID]) ValidateUpdate(context.Context, *T) error { return nil }

func (NopHooks[T, ID]) PreDelete(context.Context, ID) error { return nil }

func (NopHooks[T, ID]) ValidateDelete(context.Context, ID) error { return nil }

// StructValidationHooks checks `validate` struct tags on insert and update.
type StructValidationHooks[T any, ID comparable] struct {
	NopHooks[T, ID]
	validate *validator.Validate
}

func NewStructValidationHooks[T any, ID comparable]() *StructValidationHooks[T, ID] {
	return &StructValidationHooks[T, ID]{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (h *StructValidationHooks[T, ID]) ValidateInsert(ctx context.Context, model *T) error {
	return h.validateStruct(ctx, model)
}

func (h *StructValidationHooks[T, ID]) ValidateUpdate(ctx context.Context, model *T) error {
	return h.validateStruct(ctx, model)
}

func (h *StructValidationHooks[T, ID]) validateStruct(ctx context.Context, model *T) error {
	if model == nil {
		return NewBusinessError(CodeInvalidModel, "model cannot be nil")
	}
	err := h.validate.StructCtx(ctx, model)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &BusinessError{Code: CodeValidationError, Message: "validation failed", Err: err}
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
	}
	return &BusinessError{Code: CodeValidationError, Message: strings.Join(msgs, "; "), Err: err}
}
