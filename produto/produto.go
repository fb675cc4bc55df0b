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
	"github.com/tomoncle/crudbase/database"
	"github.com/uptrace/bun"
)

// Produto is a product with a storage generated id and a free text
// description.
type Produto struct {
	bun.BaseModel `bun:"table:produto,alias:p"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Descricao string `bun:"descricao" json:"descricao"`
}

func init() {
	database.RegisteredModel(database.NewModelAdapter((*Produto)(nil), 1))
}

func (p *Produto) GetID() int {
	return p.ID
}

func (p *Produto) SetID(id int) {
	p.ID = id
}
