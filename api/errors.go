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
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/tomoncle/crudbase"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/repository"
	"github.com/tomoncle/crudbase/utils"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusOf maps err to an HTTP status and a machine readable code.
func StatusOf(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, codeOfStatus(fe.Code)
	}
	if be, ok := crudbase.AsBusinessError(err); ok {
		return fiber.StatusUnprocessableEntity, be.Code
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.StatusNotFound, "not_found"
	}
	if is, class := database.IsSqlError(err); is {
		switch {
		case class == database.NoRowsErr:
			return fiber.StatusNotFound, "not_found"
		case class.IsConstraintViolation():
			return fiber.StatusConflict, class.String()
		}
	}
	return fiber.StatusInternalServerError, "internal_error"
}

func codeOfStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusMethodNotAllowed:
		return "method_not_allowed"
	}
	if status >= fiber.StatusInternalServerError {
		return "internal_error"
	}
	return "error"
}

// NewErrorHandler writes ErrorResponse bodies. Server errors are logged and
// their details are not sent to the client.
func NewErrorHandler(logger *utils.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := StatusOf(err)
		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			logger.WithField("request_id", RequestIDFrom(c)).WithError(err).Error("request failed")
			msg = http.StatusText(status)
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:     msg,
			Code:      code,
			RequestID: RequestIDFrom(c),
		})
	}
}
