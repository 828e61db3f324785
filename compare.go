// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "cmp"

// Comparison orders by discriminant first and by the live value second, so
// alternative 0 sorts before alternative 1 whatever the values are. Exactly
// one of v < w, v == w, v > w holds when the per-alternative comparisons are
// total.

// Compare orders two Valueless values: they are always equal. The method
// expression Valueless.Compare fits the comparator slots of CompareFunc2,
// CompareFunc3 and CompareFunc4.
func (Valueless) Compare(Valueless) int {
	return 0
}

// Compare orders two Monostate values: they are always equal.
func (Monostate) Compare(Monostate) int {
	return 0
}

// Equal2 reports whether v and w hold the same alternative with equal values.
func Equal2[A0, A1 comparable](v, w *Variant2[A0, A1]) bool {
	i := v.b.index()
	if i != w.b.index() {
		return false
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return x.v0 == y.v0
	}
	return x.v1 == y.v1
}

// Compare2 orders v and w by discriminant, then by live value.
func Compare2[A0, A1 cmp.Ordered](v, w *Variant2[A0, A1]) int {
	return CompareFunc2(v, w, cmp.Compare[A0], cmp.Compare[A1])
}

// CompareFunc2 is [Compare2] with one comparator per alternative.
func CompareFunc2[A0, A1 any](v, w *Variant2[A0, A1], c0 func(A0, A0) int, c1 func(A1, A1) int) int {
	i := v.b.index()
	if c := cmp.Compare(i, w.b.index()); c != 0 {
		return c
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return c0(x.v0, y.v0)
	}
	return c1(x.v1, y.v1)
}

// Equal3 reports whether v and w hold the same alternative with equal
// values.
func Equal3[A0, A1, A2 comparable](v, w *Variant3[A0, A1, A2]) bool {
	i := v.b.index()
	if i != w.b.index() {
		return false
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return x.v0 == y.v0
	case 1:
		return x.v1 == y.v1
	}
	return x.v2 == y.v2
}

// Compare3 returns -1, 0 or +1 as v sorts before, equal to or after w,
// comparing discriminants first and live values with [cmp.Compare] second.
func Compare3[A0, A1, A2 cmp.Ordered](v, w *Variant3[A0, A1, A2]) int {
	return CompareFunc3(v, w, cmp.Compare[A0], cmp.Compare[A1], cmp.Compare[A2])
}

// CompareFunc3 is [Compare3] with one comparator per alternative, for
// alternatives that are not [cmp.Ordered].
func CompareFunc3[A0, A1, A2 any](v, w *Variant3[A0, A1, A2], c0 func(A0, A0) int, c1 func(A1, A1) int, c2 func(A2, A2) int) int {
	i := v.b.index()
	if c := cmp.Compare(i, w.b.index()); c != 0 {
		return c
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return c0(x.v0, y.v0)
	case 1:
		return c1(x.v1, y.v1)
	}
	return c2(x.v2, y.v2)
}

// Equal4 reports whether v and w hold the same alternative with equal values.
func Equal4[A0, A1, A2, A3 comparable](v, w *Variant4[A0, A1, A2, A3]) bool {
	i := v.b.index()
	if i != w.b.index() {
		return false
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return x.v0 == y.v0
	case 1:
		return x.v1 == y.v1
	case 2:
		return x.v2 == y.v2
	}
	return x.v3 == y.v3
}

// Compare4 orders v and w by discriminant, then by live value.
func Compare4[A0, A1, A2, A3 cmp.Ordered](v, w *Variant4[A0, A1, A2, A3]) int {
	return CompareFunc4(v, w, cmp.Compare[A0], cmp.Compare[A1], cmp.Compare[A2], cmp.Compare[A3])
}

// CompareFunc4 is [Compare4] with one comparator per alternative.
func CompareFunc4[A0, A1, A2, A3 any](v, w *Variant4[A0, A1, A2, A3], c0 func(A0, A0) int, c1 func(A1, A1) int, c2 func(A2, A2) int, c3 func(A3, A3) int) int {
	i := v.b.index()
	if c := cmp.Compare(i, w.b.index()); c != 0 {
		return c
	}
	x, y := v.b.active(), w.b.active()
	switch i {
	case 0:
		return c0(x.v0, y.v0)
	case 1:
		return c1(x.v1, y.v1)
	case 2:
		return c2(x.v2, y.v2)
	}
	return c3(x.v3, y.v3)
}
