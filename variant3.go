// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Variant3 holds exactly one value of one of the alternatives A0, A1, A2.
//
// The zero value holds the zero value of A0. The live alternative changes
// only through Emplace, Construct, Assign, Swap and Destroy; each one leaves
// exactly one alternative live. A Variant3 owns its live value outright and
// must not be used from several goroutines without synchronization.
//
// Accessors come in four forms per alternative i:
//
//   - Get{i}: copy, or an error wrapping [ErrBadAccess]
//   - Ptr{i}: pointer, or an error wrapping [ErrBadAccess]
//   - If{i}: pointer, or nil
//   - At{i}: pointer; asking for an alternative that is not live panics
//
// Replacement is done by Emplace{i} (copy a value in, cannot fail) or
// Construct{i} (build in place, may fail). See [Strategy] for what a
// failed Construct leaves behind.
type Variant3[A0, A1, A2 any] struct {
	b base[storage3[A0, A1, A2], *storage3[A0, A1, A2]]
}

// V3At0 returns a Variant3 holding x as alternative 0.
func V3At0[A0, A1, A2 any](x A0) Variant3[A0, A1, A2] {
	var v Variant3[A0, A1, A2]
	v.b.place(0, func(st *storage3[A0, A1, A2]) { st.v0 = x })
	return v
}

// V3At1 returns a Variant3 holding x as alternative 1.
func V3At1[A0, A1, A2 any](x A1) Variant3[A0, A1, A2] {
	var v Variant3[A0, A1, A2]
	v.b.place(1, func(st *storage3[A0, A1, A2]) { st.v1 = x })
	return v
}

// V3At2 returns a Variant3 holding x as alternative 2.
func V3At2[A0, A1, A2 any](x A2) Variant3[A0, A1, A2] {
	var v Variant3[A0, A1, A2]
	v.b.place(2, func(st *storage3[A0, A1, A2]) { st.v2 = x })
	return v
}

// Index returns the live alternative, numbered from 0.
func (v *Variant3[A0, A1, A2]) Index() int {
	return v.b.index()
}

// Len returns the number of alternatives, 3.
func (v *Variant3[A0, A1, A2]) Len() int {
	return 3
}

// Valueless reports whether A0 is [Valueless] and is live. It is false for
// every alternative set whose first alternative is not Valueless.
func (v *Variant3[A0, A1, A2]) Valueless() bool {
	return v.b.valueless()
}

// Get0 returns alternative 0. If another alternative is live it returns
// the zero value and an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Get0() (A0, error) {
	if j := v.b.index(); j != 0 {
		var zero A0
		return zero, badAccess(0, j)
	}
	return v.b.active().v0, nil
}

// Ptr0 returns a pointer to alternative 0, valid until the next
// replacement, or an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Ptr0() (*A0, error) {
	if j := v.b.index(); j != 0 {
		return nil, badAccess(0, j)
	}
	return &v.b.active().v0, nil
}

// If0 returns a pointer to alternative 0, or nil if another alternative
// is live.
func (v *Variant3[A0, A1, A2]) If0() *A0 {
	if v.b.index() != 0 {
		return nil
	}
	return &v.b.active().v0
}

// At0 returns a pointer to alternative 0. Calling it while another
// alternative is live is a contract violation and panics.
func (v *Variant3[A0, A1, A2]) At0() *A0 {
	v.b.check(0)
	return &v.b.active().v0
}

// Emplace0 replaces the live alternative with x as alternative 0 and
// returns a pointer to the new value.
func (v *Variant3[A0, A1, A2]) Emplace0(x A0) *A0 {
	v.b.emplaceValue(0, func(st *storage3[A0, A1, A2]) { st.v0 = x })
	return &v.b.active().v0
}

// Construct0 replaces the live alternative with alternative 0, built in
// place by ctor from its zero value. If ctor returns an error or panics, the
// error is returned (the panic re-raised) and v holds either its previous
// value or, when A0 is [Valueless], Valueless.
func (v *Variant3[A0, A1, A2]) Construct0(ctor func(*A0) error) (*A0, error) {
	err := v.b.emplace(0, func(st *storage3[A0, A1, A2]) error { return ctor(&st.v0) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v0, nil
}

// Get1 returns alternative 1. If another alternative is live it returns
// the zero value and an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Get1() (A1, error) {
	if j := v.b.index(); j != 1 {
		var zero A1
		return zero, badAccess(1, j)
	}
	return v.b.active().v1, nil
}

// Ptr1 returns a pointer to alternative 1, valid until the next
// replacement, or an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Ptr1() (*A1, error) {
	if j := v.b.index(); j != 1 {
		return nil, badAccess(1, j)
	}
	return &v.b.active().v1, nil
}

// If1 returns a pointer to alternative 1, or nil if another alternative
// is live.
func (v *Variant3[A0, A1, A2]) If1() *A1 {
	if v.b.index() != 1 {
		return nil
	}
	return &v.b.active().v1
}

// At1 returns a pointer to alternative 1. Calling it while another
// alternative is live is a contract violation and panics.
func (v *Variant3[A0, A1, A2]) At1() *A1 {
	v.b.check(1)
	return &v.b.active().v1
}

// Emplace1 replaces the live alternative with x as alternative 1 and
// returns a pointer to the new value.
func (v *Variant3[A0, A1, A2]) Emplace1(x A1) *A1 {
	v.b.emplaceValue(1, func(st *storage3[A0, A1, A2]) { st.v1 = x })
	return &v.b.active().v1
}

// Construct1 replaces the live alternative with alternative 1, built in
// place by ctor from its zero value. If ctor returns an error or panics, the
// error is returned (the panic re-raised) and v holds either its previous
// value or, when A0 is [Valueless], Valueless.
func (v *Variant3[A0, A1, A2]) Construct1(ctor func(*A1) error) (*A1, error) {
	err := v.b.emplace(1, func(st *storage3[A0, A1, A2]) error { return ctor(&st.v1) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v1, nil
}

// Get2 returns alternative 2. If another alternative is live it returns
// the zero value and an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Get2() (A2, error) {
	if j := v.b.index(); j != 2 {
		var zero A2
		return zero, badAccess(2, j)
	}
	return v.b.active().v2, nil
}

// Ptr2 returns a pointer to alternative 2, valid until the next
// replacement, or an error wrapping [ErrBadAccess].
func (v *Variant3[A0, A1, A2]) Ptr2() (*A2, error) {
	if j := v.b.index(); j != 2 {
		return nil, badAccess(2, j)
	}
	return &v.b.active().v2, nil
}

// If2 returns a pointer to alternative 2, or nil if another alternative
// is live.
func (v *Variant3[A0, A1, A2]) If2() *A2 {
	if v.b.index() != 2 {
		return nil
	}
	return &v.b.active().v2
}

// At2 returns a pointer to alternative 2. Calling it while another
// alternative is live is a contract violation and panics.
func (v *Variant3[A0, A1, A2]) At2() *A2 {
	v.b.check(2)
	return &v.b.active().v2
}

// Emplace2 replaces the live alternative with x as alternative 2 and
// returns a pointer to the new value.
func (v *Variant3[A0, A1, A2]) Emplace2(x A2) *A2 {
	v.b.emplaceValue(2, func(st *storage3[A0, A1, A2]) { st.v2 = x })
	return &v.b.active().v2
}

// Construct2 replaces the live alternative with alternative 2, built in
// place by ctor from its zero value. If ctor returns an error or panics, the
// error is returned (the panic re-raised) and v holds either its previous
// value or, when A0 is [Valueless], Valueless.
func (v *Variant3[A0, A1, A2]) Construct2(ctor func(*A2) error) (*A2, error) {
	err := v.b.emplace(2, func(st *storage3[A0, A1, A2]) error { return ctor(&st.v2) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v2, nil
}

// Clone returns a new variant holding a copy of the live alternative at the
// same index. Only the live value is copied, through its [Cloner] if it has
// one. Cloning a [Destroyer] that is not a Cloner panics.
func (v *Variant3[A0, A1, A2]) Clone() Variant3[A0, A1, A2] {
	var w Variant3[A0, A1, A2]
	w.b.clone(&v.b)
	return w
}

// Assign copies the live alternative of w into v, the way Clone does. When
// both hold the same alternative and it is not a [Destroyer], the value is
// assigned in place; otherwise v's alternative is replaced. If the Clone
// method fails, v keeps its previous value or falls back to Valueless.
func (v *Variant3[A0, A1, A2]) Assign(w *Variant3[A0, A1, A2]) {
	v.b.assign(&w.b)
}

// Swap exchanges the contents of v and w. When both hold the same
// alternative the values are swapped in place; otherwise the full states,
// value and discriminant, are rotated through a temporary.
func (v *Variant3[A0, A1, A2]) Swap(w *Variant3[A0, A1, A2]) {
	v.b.swap(&w.b)
}

// Destroy releases the live alternative, calling its [Destroyer] hook if
// it has one, and returns v to its zero value. A variant is itself a
// Destroyer, so nested variants are released with their parent.
func (v *Variant3[A0, A1, A2]) Destroy() {
	v.b.destroy()
}

func (v *Variant3[A0, A1, A2]) layout() *layout {
	return layoutOf[storage3[A0, A1, A2]]()
}

func (v *Variant3[A0, A1, A2]) live() any {
	return v.b.live()
}

func (v *Variant3[A0, A1, A2]) copied(op string) any {
	return v.b.copied(op)
}

func (v *Variant3[A0, A1, A2]) setAny(j int, x any) {
	switch j {
	case 0:
		x := as[A0](x)
		v.b.assignValue(0, func(st *storage3[A0, A1, A2]) { st.v0 = x })
	case 1:
		x := as[A1](x)
		v.b.assignValue(1, func(st *storage3[A0, A1, A2]) { st.v1 = x })
	case 2:
		x := as[A2](x)
		v.b.assignValue(2, func(st *storage3[A0, A1, A2]) { st.v2 = x })
	default:
		outOfRange(j)
	}
}
