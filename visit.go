// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Visitation dispatches on the discriminant with a switch, one branch per
// alternative. Every branch returns the same R, so the result type is fixed
// by the signature and checked by the compiler.
//
// Dispatch over several variants composes through [Cases2], [Cases3] and
// [Cases4]: a table whose result is another table selects, by the first
// variant's live alternative, the table used for the second.
//
//	type num = variant.Variant3[int, float64, string]
//	inner := func(tag string) variant.Cases3[int, float64, string, string] {
//		return variant.Cases3[int, float64, string, string]{
//			On0: func(int) string { return tag + ",int" },
//			On1: func(float64) string { return tag + ",float" },
//			On2: func(string) string { return tag + ",string" },
//		}
//	}
//	outer := variant.Cases3[int, float64, string, variant.Cases3[int, float64, string, string]]{
//		On0: func(int) variant.Cases3[int, float64, string, string] { return inner("int") },
//		On1: func(float64) variant.Cases3[int, float64, string, string] { return inner("float") },
//		On2: func(string) variant.Cases3[int, float64, string, string] { return inner("string") },
//	}
//	got := outer.Visit(&v).Visit(&w) // "int,string" for v holding int, w holding string
//
// [CasesPtr2], [CasesPtr3] and [CasesPtr4] are the pointer forms. Their
// branches receive the live value in place, so an outer branch can hand
// its pointer to the inner table and the leaf sees both live values by
// reference.

// Visit2 calls the branch for v's live alternative. See [Visit3].
func Visit2[A0, A1, R any](v *Variant2[A0, A1], f0 func(A0) R, f1 func(A1) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(st.v0)
	}
	return f1(st.v1)
}

// VisitPtr2 calls the branch for v's live alternative with a pointer to it.
func VisitPtr2[A0, A1, R any](v *Variant2[A0, A1], f0 func(*A0) R, f1 func(*A1) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(&st.v0)
	}
	return f1(&st.v1)
}

// Cases2 is a branch table for a [Variant2]. See [Cases3].
type Cases2[A0, A1, R any] struct {
	On0 func(A0) R
	On1 func(A1) R
}

// Visit dispatches v to the branch for its live alternative.
func (c Cases2[A0, A1, R]) Visit(v *Variant2[A0, A1]) R {
	return Visit2(v, c.On0, c.On1)
}

// Visit3 calls the branch for v's live alternative with a copy of its value
// and returns the result.
func Visit3[A0, A1, A2, R any](v *Variant3[A0, A1, A2], f0 func(A0) R, f1 func(A1) R, f2 func(A2) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(st.v0)
	case 1:
		return f1(st.v1)
	}
	return f2(st.v2)
}

// VisitPtr3 is [Visit3] with a pointer to the live value, so branches can
// mutate it in place.
func VisitPtr3[A0, A1, A2, R any](v *Variant3[A0, A1, A2], f0 func(*A0) R, f1 func(*A1) R, f2 func(*A2) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(&st.v0)
	case 1:
		return f1(&st.v1)
	}
	return f2(&st.v2)
}

// Cases3 is a first-class branch table for a [Variant3]. A nil branch that
// gets selected panics.
type Cases3[A0, A1, A2, R any] struct {
	On0 func(A0) R
	On1 func(A1) R
	On2 func(A2) R
}

// Visit dispatches v to the branch for its live alternative.
func (c Cases3[A0, A1, A2, R]) Visit(v *Variant3[A0, A1, A2]) R {
	return Visit3(v, c.On0, c.On1, c.On2)
}

// Visit4 calls the branch for v's live alternative. See [Visit3].
func Visit4[A0, A1, A2, A3, R any](v *Variant4[A0, A1, A2, A3], f0 func(A0) R, f1 func(A1) R, f2 func(A2) R, f3 func(A3) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(st.v0)
	case 1:
		return f1(st.v1)
	case 2:
		return f2(st.v2)
	}
	return f3(st.v3)
}

// VisitPtr4 calls the branch for v's live alternative with a pointer to it.
func VisitPtr4[A0, A1, A2, A3, R any](v *Variant4[A0, A1, A2, A3], f0 func(*A0) R, f1 func(*A1) R, f2 func(*A2) R, f3 func(*A3) R) R {
	st := v.b.active()
	switch v.b.index() {
	case 0:
		return f0(&st.v0)
	case 1:
		return f1(&st.v1)
	case 2:
		return f2(&st.v2)
	}
	return f3(&st.v3)
}

// Cases4 is a branch table for a [Variant4]. See [Cases3].
type Cases4[A0, A1, A2, A3, R any] struct {
	On0 func(A0) R
	On1 func(A1) R
	On2 func(A2) R
	On3 func(A3) R
}

// Visit dispatches v to the branch for its live alternative.
func (c Cases4[A0, A1, A2, A3, R]) Visit(v *Variant4[A0, A1, A2, A3]) R {
	return Visit4(v, c.On0, c.On1, c.On2, c.On3)
}

// CasesPtr2 is a pointer branch table for a [Variant2].
type CasesPtr2[A0, A1, R any] struct {
	On0 func(*A0) R
	On1 func(*A1) R
}

// Visit dispatches v to the branch for its live alternative.
func (c CasesPtr2[A0, A1, R]) Visit(v *Variant2[A0, A1]) R {
	return VisitPtr2(v, c.On0, c.On1)
}

// CasesPtr3 is [Cases3] with pointer branches, which may mutate the live
// value.
type CasesPtr3[A0, A1, A2, R any] struct {
	On0 func(*A0) R
	On1 func(*A1) R
	On2 func(*A2) R
}

// Visit dispatches v to the branch for its live alternative.
func (c CasesPtr3[A0, A1, A2, R]) Visit(v *Variant3[A0, A1, A2]) R {
	return VisitPtr3(v, c.On0, c.On1, c.On2)
}

// CasesPtr4 is a pointer branch table for a [Variant4].
type CasesPtr4[A0, A1, A2, A3, R any] struct {
	On0 func(*A0) R
	On1 func(*A1) R
	On2 func(*A2) R
	On3 func(*A3) R
}

// Visit dispatches v to the branch for its live alternative.
func (c CasesPtr4[A0, A1, A2, A3, R]) Visit(v *Variant4[A0, A1, A2, A3]) R {
	return VisitPtr4(v, c.On0, c.On1, c.On2, c.On3)
}
