// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

// This file provides a simple LRU cache keyed by record ID.

import (
	"container/list"
	"sync"
)

// entry is a single cached record.
type entry struct {
	id    int
	value interface{}
}

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.RWMutex
	evictList *list.List
	index     map[int]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[int]*list.Element),
	}
}

// Get retrieves an item from the cache.  If it is not present, calls
// the fetch function, and if that succeeds, saves the item and
// returns it.  This should return an error only if the item is not
// present and the fetch function returns an error; errors are never
// cached.
func (lru *lru) Get(id int, fetch func(int) (interface{}, error)) (interface{}, error) {
	// This sadly happens under a writer lock, since we need to move
	// the item to the front of the list if it is present
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[id]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(*entry).value, nil
	}

	value, err := fetch(id)
	if err != nil {
		return nil, err
	}
	lru.add(id, value)
	return value, nil
}

// Peek looks for an item in the cache and returns it if present.
// This runs under a reader lock and does not affect the recency of
// the item.
func (lru *lru) Peek(id int) (interface{}, bool) {
	lru.lock.RLock()
	defer lru.lock.RUnlock()

	if element, present := lru.index[id]; present {
		return element.Value.(*entry).value, true
	}
	return nil, false
}

// Put adds an item to the LRU cache, possibly evicting something.
func (lru *lru) Put(id int, value interface{}) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	// Are we just updating an existing item?
	if element, present := lru.index[id]; present {
		element.Value.(*entry).value = value
		lru.evictList.MoveToBack(element)
		return
	}

	lru.add(id, value)
}

// Remove takes an item out of the cache.  It does nothing if that ID
// is not cached.
func (lru *lru) Remove(id int) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[id]; present {
		delete(lru.index, id)
		lru.evictList.Remove(element)
	}
}

// RemoveIf takes every item for which pred returns true out of the
// cache.
func (lru *lru) RemoveIf(pred func(interface{}) bool) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	for element := lru.evictList.Front(); element != nil; {
		next := element.Next()
		e := element.Value.(*entry)
		if pred(e.value) {
			delete(lru.index, e.id)
			lru.evictList.Remove(element)
		}
		element = next
	}
}

// Len returns the number of cached items.
func (lru *lru) Len() int {
	lru.lock.RLock()
	defer lru.lock.RUnlock()
	return len(lru.index)
}

// add is an internal helper, running under the write lock, that adds a
// new item to the cache.  The item is known to not already exist.
func (lru *lru) add(id int, value interface{}) {
	element := lru.evictList.PushBack(&entry{id: id, value: value})
	lru.index[id] = element

	// If this caused the cache to go over size, start evicting items
	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		delete(lru.index, head.Value.(*entry).id)
		lru.evictList.Remove(head)
	}
}
