// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Make(id int) (interface{}, error) {
	return id * 10, nil
}

func DoNotMake(id int) (interface{}, error) {
	return nil, assert.AnError
}

type LRUAssertions struct {
	*assert.Assertions
	LRU *lru
}

func NewLRUAssertions(t assert.TestingT, size int) *LRUAssertions {
	return &LRUAssertions{
		assert.New(t),
		newLRU(size),
	}
}

// GetID fetches an item from the cache; if not present, it is added.
func (a *LRUAssertions) GetID(id int) {
	item, err := a.LRU.Get(id, Make)
	if a.NoError(err) {
		a.Equal(id*10, item)
	}
}

// GetPresent fetches an item from the cache; if not present, it
// should produce an assertion error.
func (a *LRUAssertions) GetPresent(id int) {
	item, err := a.LRU.Get(id, DoNotMake)
	if a.NoError(err) {
		a.Equal(id*10, item)
	}
}

// GetError tries to fetch an item from the cache, but it should not
// exist, and the resulting error will be caught.
func (a *LRUAssertions) GetError(id int) {
	_, err := a.LRU.Get(id, DoNotMake)
	a.Error(err)
}

// LRUHas asserts that an item is in the cache.
func (a *LRUAssertions) LRUHas(id int) {
	item, present := a.LRU.Peek(id)
	if a.True(present, "missing %v", id) {
		a.Equal(id*10, item)
	}
}

// LRUDoesNotHave asserts that an item is not in the cache.
func (a *LRUAssertions) LRUDoesNotHave(id int) {
	_, present := a.LRU.Peek(id)
	a.False(present, "unexpected %v", id)
}

// TestLRUSimple tests minimal object presence.
func TestLRUSimple(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.LRU.Put(1, 10)

	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.Equal(1, a.LRU.Len())
}

// TestLRUAutoInsert tests lru.Get() adding absent items.
func TestLRUAutoInsert(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetID(1)
	a.GetID(2)
	a.LRUHas(1)
	a.LRUHas(2)

	// A third item evicts the oldest
	a.GetID(3)
	a.LRUDoesNotHave(1)
	a.LRUHas(2)
	a.LRUHas(3)
}

func TestLRUInsertError(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetID(1)
	a.GetID(2)

	// Since no item was added, nothing will be evicted
	a.GetError(3)
	a.LRUHas(1)
	a.LRUHas(2)
	a.LRUDoesNotHave(3)

	// Present items never call the fetch function
	a.GetPresent(1)
	a.GetPresent(2)
}

// TestLRUOrder tests that getting an item causes it to not get evicted.
func TestLRUOrder(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetID(1)
	a.GetID(2)
	a.GetID(1)

	// Now when we add 3, 2 gets pushed out
	a.GetID(3)
	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.LRUHas(3)
}

// TestLRUPutUpdates tests that Put replaces an existing value.
func TestLRUPutUpdates(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.LRU.Put(1, "one")
	a.LRU.Put(1, "uno")
	item, present := a.LRU.Peek(1)
	a.True(present)
	a.Equal("uno", item)
	a.Equal(1, a.LRU.Len())
}

// TestLRURemoval does simple tests on the Remove call.
func TestLRURemoval(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetID(1)
	a.LRU.Remove(1)
	a.LRUDoesNotHave(1)

	a.LRU.Remove(3)
	a.LRUDoesNotHave(3)

	// Removing a more-recent thing leaves room for a new one
	a.GetID(1)
	a.GetID(2)
	a.LRU.Remove(2)
	a.GetID(3)
	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.LRUHas(3)
}

// TestLRURemoveIf removes a subset of items.
func TestLRURemoveIf(t *testing.T) {
	a := NewLRUAssertions(t, 4)
	for id := 1; id <= 4; id++ {
		a.GetID(id)
	}
	a.LRU.RemoveIf(func(v interface{}) bool {
		return v.(int)%20 == 0
	})
	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.LRUHas(3)
	a.LRUDoesNotHave(4)
	a.Equal(2, a.LRU.Len())
}
