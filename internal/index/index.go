// Package index provides a string keyed lookup structure over an RB-tree.
package index

import (
	"strings"

	"github.com/sirkon/rbtree"
)

// Index maps unique string keys to values.
// It is not safe for concurrent writes, concurrent reads of a fully built index are fine.
type Index[V any] struct {
	tree *rbtree.Tree[*item[V]]
}

// New is [Index] constructor.
func New[V any]() *Index[V] {
	return &Index[V]{tree: rbtree.New[*item[V]]()}
}

type item[V any] struct {
	key   string
	value V
}

// Cmp orders items by key only, so a probe with an empty value finds the stored item.
func (i *item[V]) Cmp(other *item[V]) int {
	return strings.Compare(i.key, other.key)
}

// Add registers value under key. It returns false and keeps the value stored
// before if the key is already taken.
func (x *Index[V]) Add(key string, value V) bool {
	it := &item[V]{key: key, value: value}
	return x.tree.InsertReturn(it) == it
}

// Get returns a value registered under the key.
func (x *Index[V]) Get(key string) (V, bool) {
	res := x.tree.Search(&item[V]{key: key})
	if res == nil {
		var zero V
		return zero, false
	}

	return res.value, true
}
