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

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lowPriority struct{}
type highPriority struct{}
type alsoHigh struct{}

func TestModelRegistryOrder(t *testing.T) {
	r := NewModelRegistry()
	r.Register(NewModelAdapter((*lowPriority)(nil), 9))
	r.Register(NewModelAdapter((*highPriority)(nil), 1))
	r.Register(NewModelAdapter((*alsoHigh)(nil), 1))

	models := r.Models()
	require.Len(t, models, 3)
	assert.IsType(t, (*alsoHigh)(nil), models[0].Instance())
	assert.IsType(t, (*highPriority)(nil), models[1].Instance())
	assert.IsType(t, (*lowPriority)(nil), models[2].Instance())
}

func TestModelRegistryReplacesSameType(t *testing.T) {
	r := NewModelRegistry()
	r.Register(NewModelAdapter((*lowPriority)(nil), 9))
	r.Register(NewModelAdapter((*lowPriority)(nil), 2))

	models := r.Models()
	require.Len(t, models, 1)
	assert.Equal(t, 2, models[0].Priority())
	assert.Equal(t, "github.com/tomoncle/crudbase/database.lowPriority", getModelName(models[0].Instance()))
}
