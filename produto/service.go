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

package produto

import (
	"github.com/tomoncle/crudbase"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/repository"
	"github.com/uptrace/bun"
)

// Service is the CRUD service for Produto. It places no rules on
// descricao; override the NopHooks methods to add some.
type Service struct {
	*crudbase.CrudService[Produto, int, *Produto]
	crudbase.NopHooks[Produto, int]
}

var _ crudbase.Service[Produto, int] = (*Service)(nil)

// NewService wires a Service to db, running each mutating call in its own
// transaction. A nil logger falls back to the package default.
func NewService(db *bun.DB, logger database.Logger) *Service {
	s := &Service{}
	opts := []crudbase.Option{
		crudbase.WithHooks[Produto, int](s),
		crudbase.WithTransactor(database.NewTransactor(db, logger)),
	}
	if logger != nil {
		opts = append(opts, crudbase.WithLogger(logger))
	}
	s.CrudService = crudbase.NewCrudService[Produto, int](repository.NewRepository[Produto, int](db), opts...)
	return s
}
