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

	"github.com/gofiber/fiber/v2"
	"github.com/tomoncle/crudbase"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/produto"
)

const apiPrefix = "/api/v1"

func RegisterProdutoRoutes(app fiber.Router, svc crudbase.Service[produto.Produto, int]) {
	NewController[produto.Produto, int](svc, ParseIntID).Register(app.Group(apiPrefix + "/produtos"))
}

// RegisterHealthRoutes mounts GET /health, answering 503 while check
// reports the database unhealthy.
func RegisterHealthRoutes(app fiber.Router, check func(ctx context.Context) *database.HealthStatus) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := check(c.UserContext())
		if !status.Healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})
}
