// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Holds reports whether the live alternative of v is the one of type T.
// T must occur exactly once among v's alternatives; otherwise Holds panics.
func Holds[T any](v sum) bool {
	return v.Index() == indexOf[T](v.layout())
}

// GetAs returns the live value of v if it is the alternative of type T, and
// otherwise the zero T and an error wrapping [ErrBadAccess]. T must occur
// exactly once among v's alternatives; otherwise GetAs panics.
func GetAs[T any](v sum) (T, error) {
	i := indexOf[T](v.layout())
	if j := v.Index(); j != i {
		var zero T
		return zero, badAccess(i, j)
	}
	return as[T](v.live()), nil
}

// Subset converts from into a variant of type To whose alternatives
// include the live one of from. The live value is copied, as by Clone, into
// the first alternative of To with the identical type. If To has no such alternative,
// Subset returns the zero To and an error wrapping [ErrBadAccess].
//
//	wide := variant.V3At2[int, float64, string]("x")
//	narrow, err := variant.Subset[variant.Variant2[int, string]](&wide) // alternative 1
func Subset[To any, PTo target[To]](from sum) (To, error) {
	var to To
	m := mapping(from.layout(), PTo(&to).layout())
	i := from.Index()
	j := m[i]
	if j < 0 {
		return to, errors.Wrapf(ErrBadAccess, "subset: live alternative %d (%s) not in target", i, from.layout().types[i])
	}
	PTo(&to).setAny(j, from.copied("subset"))
	return to, nil
}

// Widen converts from into a variant of type To that contains every
// alternative type of from. Calling it with a To that lacks one of them is
// a contract violation and panics, whichever alternative is live.
func Widen[To any, PTo target[To]](from sum) To {
	var to To
	m := mapping(from.layout(), PTo(&to).layout())
	for i, j := range m {
		if j < 0 {
			contractViolation("widen: alternative " + from.layout().types[i].String() + " not in target")
		}
	}
	PTo(&to).setAny(m[from.Index()], from.copied("widen"))
	return to
}

func indexOf[T any](l *layout) int {
	t := reflect.TypeFor[T]()
	i := l.index(t)
	if i < 0 {
		contractViolation("type " + t.String() + " must occur exactly once")
	}
	return i
}

var mappings sync.Map // [2]*layout -> []int

// mapping returns, for each alternative of from, the first alternative of
// to with the identical type, or -1.
func mapping(from, to *layout) []int {
	key := [2]*layout{from, to}
	if m, ok := mappings.Load(key); ok {
		return m.([]int)
	}
	m := make([]int, len(from.types))
	for i, t := range from.types {
		m[i] = -1
		for j, u := range to.types {
			if t == u {
				m[i] = j
				break
			}
		}
	}
	mappings.Store(key, m)
	return m
}
