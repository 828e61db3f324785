// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"sync"
)

// Destroyer is implemented by alternatives that own resources which must be
// released when the alternative stops being live.
//
// Destroy is called exactly once per constructed value: when the value is
// replaced, when the variant holding it is destroyed, or when a replacement
// commits over it. It is never called on a value whose construction failed.
//
// A Destroyer owns its resources, so a plain Go copy would give them two
// owners. Clone, Assign, Subset and Widen copy a Destroyer only through its
// [Cloner]; without one they panic. Emplace and Swap move values and need
// no Cloner.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by alternatives that make their own copies, either
// on the value or on the pointer receiver. Copying operations call Clone
// instead of copying the value bit for bit.
//
// Variants are Cloners of themselves, so nested variants copy deeply.
type Cloner[T any] interface {
	Clone() T
}

// Valueless is the marker alternative that permits the valueless state.
//
// When alternative 0 is Valueless, a replacement whose constructor fails may
// fall back to it instead of keeping the previous value, and the variant
// needs only one storage buffer. Valueless is never a normal resting state
// unless placed there on purpose.
type Valueless struct{}

// Monostate is an empty alternative, useful as alternative 0 when no other
// alternative has a meaningful zero value.
type Monostate struct{}

// Strategy is the replacement algorithm the transition engine uses for one
// alternative set. It is decided once per instantiation from two properties:
//
//   - D: every alternative is trivially destructible (no [Destroyer], no
//     pointers for the garbage collector to trace)
//   - S: every alternative may be relocated by copy (holds no lock), or
//     alternative 0 is [Valueless]
//
// The strategy decides how storage is used, not how much of it there is.
// Every variant carries two buffers, and each buffer has one slot per
// alternative rather than sharing one slot among them, so a variant is
// about twice the summed size of its alternatives. Single strategies leave
// the second buffer zero.
type Strategy uint8

const (
	// SingleTrivial (D, S): one buffer, construct in place.
	SingleTrivial Strategy = iota
	// DoubleTrivial (D, !S): construct into the spare buffer, then flip.
	DoubleTrivial
	// SingleDestroy (!D, S): one buffer, destroy the old value before
	// constructing, falling back to Valueless or a temporary on failure.
	SingleDestroy
	// DoubleDestroy (!D, !S): construct into the spare buffer, destroy the
	// old value only after success, then flip.
	DoubleDestroy
)

var strategyNames = [...]string{
	SingleTrivial: "single-trivial",
	DoubleTrivial: "double-trivial",
	SingleDestroy: "single-destroy",
	DoubleDestroy: "double-destroy",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// Double reports whether the strategy keeps two storage buffers.
func (s Strategy) Double() bool {
	return s == DoubleTrivial || s == DoubleDestroy
}

// layout holds the per-alternative traits of one storage type.
type layout struct {
	types       []reflect.Type
	destroyer   []bool
	cloner      []bool
	trivial     []bool
	relocatable []bool
	valueless   bool
	strategy    Strategy

	// temps holds scratch *S buffers for emplaceViaTemp.
	temps sync.Pool
}

var (
	layouts       sync.Map // reflect.Type -> *layout
	destroyerType = reflect.TypeFor[Destroyer]()
	lockerType    = reflect.TypeFor[sync.Locker]()
	valuelessType = reflect.TypeFor[Valueless]()
)

// layoutOf returns the traits of storage type S, computing them on first use.
func layoutOf[S any]() *layout {
	t := reflect.TypeFor[S]()
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}
	l, _ := layouts.LoadOrStore(t, newLayout(t))
	return l.(*layout)
}

func newLayout(st reflect.Type) *layout {
	n := st.NumField()
	l := &layout{
		types:       make([]reflect.Type, n),
		destroyer:   make([]bool, n),
		cloner:      make([]bool, n),
		trivial:     make([]bool, n),
		relocatable: make([]bool, n),
	}
	d, s := true, true
	for i := range n {
		t := st.Field(i).Type
		l.types[i] = t
		l.destroyer[i] = reflect.PointerTo(t).Implements(destroyerType)
		l.cloner[i] = hasClone(t)
		l.trivial[i] = !l.destroyer[i] && !hasPointers(t)
		l.relocatable[i] = !hasLock(t)
		d = d && l.trivial[i]
		s = s && l.relocatable[i]
	}
	l.temps.New = func() any { return reflect.New(st).Interface() }
	l.valueless = l.types[0] == valuelessType
	s = s || l.valueless

	switch {
	case d && s:
		l.strategy = SingleTrivial
	case d:
		l.strategy = DoubleTrivial
	case s:
		l.strategy = SingleDestroy
	default:
		l.strategy = DoubleDestroy
	}
	return l
}

// index returns the position of the only alternative of type t, or -1 if t
// is absent or occurs more than once.
func (l *layout) index(t reflect.Type) int {
	found := -1
	for i, at := range l.types {
		if at != t {
			continue
		}
		if found >= 0 {
			return -1
		}
		found = i
	}
	return found
}

// hasClone reports whether *t has a method Clone() t, which makes t a
// Cloner[t] on its pointer.
func hasClone(t reflect.Type) bool {
	m, ok := reflect.PointerTo(t).MethodByName("Clone")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == t
}

// hasPointers reports whether values of t hold references the garbage
// collector traces. Such values must be cleared when they stop being live.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hasLock reports whether t must not be copied, following the copylocks
// rule of go vet: a value whose pointer is a sync.Locker but which is not
// one itself, directly or through a struct field or array element.
func hasLock(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	if reflect.PointerTo(t).Implements(lockerType) && !t.Implements(lockerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasLock(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasLock(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
