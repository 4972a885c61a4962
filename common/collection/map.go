// Copyright 2024 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (value V, found bool)
	Remove(key K)
	Keys() []K
	Empty() bool
	Size() int
	Clear()
	Values() []V
	Each(f func(key K, value V))
	String() string
}

// NewLinkedMap returns a Map that iterates in insertion order.
// Putting an existing key replaces the value and keeps the key
// at its original position.
//
// The returned map is not safe for concurrent use.
func NewLinkedMap[K comparable, V any]() Map[K, V] {
	return linkedhashmap.New[K, V]()
}
