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

// Package crudbase provides a generic CRUD service that runs overridable
// pre-hooks and validation hooks around repository calls, each mutating
// call scoped to its own transaction.
//
// An entity service embeds CrudService together with NopHooks and
// overrides only the hooks it needs:
//
//	type Service struct {
//		*crudbase.CrudService[Produto, int, *Produto]
//		crudbase.NopHooks[Produto, int]
//	}
//
//	func (s *Service) ValidateInsert(ctx context.Context, p *Produto) error {
//		if p.Descricao == "" {
//			return crudbase.NewBusinessError("descricao_required", "descricao is required")
//		}
//		return nil
//	}
package crudbase
