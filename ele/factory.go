// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element
type AllocatorType func(edat *inp.ElemData) (Element, error)

// New returns a new element from factory
func New(edat *inp.ElemData) (ele Element, err error) {
	if edat == nil {
		return nil, chk.Err("cannot allocate element from nil data: %w", ErrInvalidParams)
	}
	fcn, ok := allocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, id=%d}: %w", edat.Type, edat.Id, ErrUnknownType)
	}
	ele, err = fcn(edat)
	if err != nil {
		return nil, chk.Err("element {type=%q, id=%d} cannot be allocated:\n%w", edat.Type, edat.Id, err)
	}
	if edat.Inact {
		ele.Deactivate()
	}
	return
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(elementName string) AllocatorType {
	if fcn, ok := allocators[elementName]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", elementName)
	return nil
}

// Types returns the sorted names of all available elements
func Types() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
