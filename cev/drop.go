package cev

import "reflect"

// Dropper is implemented by elements that must release resources when a
// container destroys them.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// mayDrop reports whether a T value can be a Dropper. Interface types are
// checked per element.
func mayDrop[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface || t.Implements(dropperType)
}

// dropAll drops and zeroes every element of elems. Callers update their
// bookkeeping before calling it. If a Drop panics, the remaining elements are
// still dropped before the panic continues.
func dropAll[T any](elems []T) {
	if !mayDrop[T]() {
		clear(elems)
		return
	}

	var zero T
	i := 0
	defer func() {
		if i < len(elems) {
			elems[i] = zero
			dropAll(elems[i+1:])
		}
	}()
	for ; i < len(elems); i++ {
		if d, ok := any(elems[i]).(Dropper); ok {
			d.Drop()
		}
		elems[i] = zero
	}
}
