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

package types

// Model is an entity identified by a unique ID. Uniqueness of the ID is
// enforced by the storage layer, not by implementations of this interface.
type Model[ID comparable] interface {
	GetID() ID
	SetID(id ID)
}

// Entity constrains a pointer to a struct type T that implements Model.
// Generic code takes the struct type and still reaches the accessors:
//
//	func f[T any, ID comparable, PT Entity[T, ID]](m *T) ID { return PT(m).GetID() }
type Entity[T any, ID comparable] interface {
	*T
	Model[ID]
}

// IsZeroID reports whether id is the zero value of its type, which marks a
// model that was never persisted.
func IsZeroID[ID comparable](id ID) bool {
	var zero ID
	return id == zero
}
