// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"sync"
)

// sum is the read side shared by Variant2, Variant3 and Variant4.
type sum interface {
	Index() int
	Len() int
	layout() *layout
	live() any
	copied(op string) any
}

// target is a pointer to a variant type that can be written by index.
type target[V any] interface {
	*V
	sum
	setAny(j int, x any)
}

// assignee is a variant that can be written by index.
type assignee interface {
	layout() *layout
	setAny(j int, x any)
}

// StrategyOf returns the replacement strategy chosen for the variant type V.
//
//	variant.StrategyOf[variant.Variant2[int, string]]() // SingleDestroy
func StrategyOf[V any, PV target[V]]() Strategy {
	var pv PV
	return pv.layout().strategy
}

// From returns a variant of type V holding x as the alternative that best
// accepts a T. See [AssignFrom] for how the alternative is chosen.
//
//	v := variant.From[variant.Variant3[int64, string, bool]](int8(7)) // alternative 0
func From[V any, PV target[V], T any](x T) V {
	var v V
	AssignFrom(PV(&v), x)
	return v
}

// AssignFrom stores x in v as the alternative that best accepts a T,
// assigning in place when that alternative is already live.
//
// Candidates are ranked, best first:
//
//  1. the alternative type is T
//  2. T is assignable to it, as to an interface it implements
//  3. it has the kind of T and T converts to it, as between named types
//  4. both are numeric and T converts to it
//
// Exactly one alternative must hold the best rank present. No candidate, or
// two candidates of equal rank, is a contract violation and panics. The
// choice is made once per variant type and T.
func AssignFrom[T any](v assignee, x T) {
	l := v.layout()
	r := resolve(l, reflect.TypeFor[T]())
	if !r.convert {
		v.setAny(r.index, any(x))
		return
	}
	v.setAny(r.index, reflect.ValueOf(&x).Elem().Convert(l.types[r.index]).Interface())
}

type rank uint8

const (
	rankExact rank = iota + 1
	rankAssignable
	rankSameKind
	rankNumeric
	rankNone rank = 0
)

type resolution struct {
	index   int
	convert bool
}

type resolveKey struct {
	l *layout
	t reflect.Type
}

var resolutions sync.Map // resolveKey -> resolution

func resolve(l *layout, t reflect.Type) resolution {
	key := resolveKey{l, t}
	if r, ok := resolutions.Load(key); ok {
		return r.(resolution)
	}
	best, index, tied := rankNone, -1, false
	for i, at := range l.types {
		r := rankOf(t, at)
		switch {
		case r == rankNone:
		case best == rankNone || r < best:
			best, index, tied = r, i, false
		case r == best:
			tied = true
		}
	}
	switch {
	case index < 0:
		contractViolation("no alternative accepts " + t.String())
	case tied:
		contractViolation("ambiguous construction from " + t.String())
	}
	r := resolution{index: index, convert: best != rankExact}
	resolutions.Store(key, r)
	return r
}

func rankOf(t, at reflect.Type) rank {
	switch {
	case t == at:
		return rankExact
	case t.AssignableTo(at):
		return rankAssignable
	case t.Kind() == at.Kind() && t.Kind() != reflect.Interface && t.ConvertibleTo(at):
		return rankSameKind
	case numeric(t) && numeric(at) && t.ConvertibleTo(at):
		return rankNumeric
	}
	return rankNone
}

func numeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// as unwraps x as a T. A nil x yields the zero T, which covers nil
// interface values.
func as[T any](x any) T {
	if x == nil {
		var zero T
		return zero
	}
	return x.(T)
}
