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
	"errors"
	"fmt"
)

const (
	CodeIDMismatch      = "id_mismatch"
	CodeInvalidID       = "invalid_id"
	CodeInvalidModel    = "invalid_model"
	CodeValidationError = "validation_failed"
)

// BusinessError signals that a business rule rejected an operation. Hooks
// return it to abort before anything is persisted.
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string) *BusinessError {
	return &BusinessError{Code: code, Message: message}
}

// BusinessErrorf formats the message like fmt.Errorf, keeping a %w operand
// as the cause.
func BusinessErrorf(code, format string, args ...interface{}) *BusinessError {
	err := fmt.Errorf(format, args...)
	return &BusinessError{Code: code, Message: err.Error(), Err: errors.Unwrap(err)}
}

func IsBusinessError(err error) bool {
	_, ok := AsBusinessError(err)
	return ok
}

// AsBusinessError finds the first BusinessError in err's chain.
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
