// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Variant4 holds exactly one value of one of its four alternatives.
// It behaves like [Variant3]; the zero value holds the zero value of A0.
type Variant4[A0, A1, A2, A3 any] struct {
	b base[storage4[A0, A1, A2, A3], *storage4[A0, A1, A2, A3]]
}

// V4At0 returns a Variant4 holding x as alternative 0.
func V4At0[A0, A1, A2, A3 any](x A0) Variant4[A0, A1, A2, A3] {
	var v Variant4[A0, A1, A2, A3]
	v.b.place(0, func(st *storage4[A0, A1, A2, A3]) { st.v0 = x })
	return v
}

// V4At1 returns a Variant4 holding x as alternative 1.
func V4At1[A0, A1, A2, A3 any](x A1) Variant4[A0, A1, A2, A3] {
	var v Variant4[A0, A1, A2, A3]
	v.b.place(1, func(st *storage4[A0, A1, A2, A3]) { st.v1 = x })
	return v
}

// V4At2 returns a Variant4 holding x as alternative 2.
func V4At2[A0, A1, A2, A3 any](x A2) Variant4[A0, A1, A2, A3] {
	var v Variant4[A0, A1, A2, A3]
	v.b.place(2, func(st *storage4[A0, A1, A2, A3]) { st.v2 = x })
	return v
}

// V4At3 returns a Variant4 holding x as alternative 3.
func V4At3[A0, A1, A2, A3 any](x A3) Variant4[A0, A1, A2, A3] {
	var v Variant4[A0, A1, A2, A3]
	v.b.place(3, func(st *storage4[A0, A1, A2, A3]) { st.v3 = x })
	return v
}

// Index returns the live alternative, numbered from 0.
func (v *Variant4[A0, A1, A2, A3]) Index() int {
	return v.b.index()
}

// Len returns the number of alternatives, 4.
func (v *Variant4[A0, A1, A2, A3]) Len() int {
	return 4
}

// Valueless reports whether A0 is [Valueless] and is live. It is false for
// every alternative set whose first alternative is not Valueless.
func (v *Variant4[A0, A1, A2, A3]) Valueless() bool {
	return v.b.valueless()
}

// Get0 returns alternative 0. If another alternative is live it returns
// the zero value and an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Get0() (A0, error) {
	if j := v.b.index(); j != 0 {
		var zero A0
		return zero, badAccess(0, j)
	}
	return v.b.active().v0, nil
}

// Ptr0 returns a pointer to alternative 0, valid until the next
// replacement, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Ptr0() (*A0, error) {
	if j := v.b.index(); j != 0 {
		return nil, badAccess(0, j)
	}
	return &v.b.active().v0, nil
}

// If0 returns a pointer to alternative 0, or nil if another alternative
// is live.
func (v *Variant4[A0, A1, A2, A3]) If0() *A0 {
	if v.b.index() != 0 {
		return nil
	}
	return &v.b.active().v0
}

// At0 returns a pointer to alternative 0. Calling it while another
// alternative is live is a contract violation and panics.
func (v *Variant4[A0, A1, A2, A3]) At0() *A0 {
	v.b.check(0)
	return &v.b.active().v0
}

// Emplace0 replaces the live alternative with x as alternative 0 and
// returns a pointer to the new value.
func (v *Variant4[A0, A1, A2, A3]) Emplace0(x A0) *A0 {
	v.b.emplaceValue(0, func(st *storage4[A0, A1, A2, A3]) { st.v0 = x })
	return &v.b.active().v0
}

// Construct0 replaces the live alternative with alternative 0, built in
// place by ctor from its zero value. If ctor returns an error or panics, the
// error is returned (the panic re-raised) and v holds either its previous
// value or, when A0 is [Valueless], Valueless.
func (v *Variant4[A0, A1, A2, A3]) Construct0(ctor func(*A0) error) (*A0, error) {
	err := v.b.emplace(0, func(st *storage4[A0, A1, A2, A3]) error { return ctor(&st.v0) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v0, nil
}

// Get1 returns alternative 1, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Get1() (A1, error) {
	if j := v.b.index(); j != 1 {
		var zero A1
		return zero, badAccess(1, j)
	}
	return v.b.active().v1, nil
}

// Ptr1 returns a pointer to alternative 1, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Ptr1() (*A1, error) {
	if j := v.b.index(); j != 1 {
		return nil, badAccess(1, j)
	}
	return &v.b.active().v1, nil
}

// If1 returns a pointer to alternative 1, or nil.
func (v *Variant4[A0, A1, A2, A3]) If1() *A1 {
	if v.b.index() != 1 {
		return nil
	}
	return &v.b.active().v1
}

// At1 returns a pointer to alternative 1; it panics if 1 is not live.
func (v *Variant4[A0, A1, A2, A3]) At1() *A1 {
	v.b.check(1)
	return &v.b.active().v1
}

// Emplace1 replaces the live alternative with x as alternative 1.
func (v *Variant4[A0, A1, A2, A3]) Emplace1(x A1) *A1 {
	v.b.emplaceValue(1, func(st *storage4[A0, A1, A2, A3]) { st.v1 = x })
	return &v.b.active().v1
}

// Construct1 replaces the live alternative with alternative 1 built by ctor.
func (v *Variant4[A0, A1, A2, A3]) Construct1(ctor func(*A1) error) (*A1, error) {
	err := v.b.emplace(1, func(st *storage4[A0, A1, A2, A3]) error { return ctor(&st.v1) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v1, nil
}

// Get2 returns alternative 2, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Get2() (A2, error) {
	if j := v.b.index(); j != 2 {
		var zero A2
		return zero, badAccess(2, j)
	}
	return v.b.active().v2, nil
}

// Ptr2 returns a pointer to alternative 2, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Ptr2() (*A2, error) {
	if j := v.b.index(); j != 2 {
		return nil, badAccess(2, j)
	}
	return &v.b.active().v2, nil
}

// If2 returns a pointer to alternative 2, or nil.
func (v *Variant4[A0, A1, A2, A3]) If2() *A2 {
	if v.b.index() != 2 {
		return nil
	}
	return &v.b.active().v2
}

// At2 returns a pointer to alternative 2; it panics if 2 is not live.
func (v *Variant4[A0, A1, A2, A3]) At2() *A2 {
	v.b.check(2)
	return &v.b.active().v2
}

// Emplace2 replaces the live alternative with x as alternative 2.
func (v *Variant4[A0, A1, A2, A3]) Emplace2(x A2) *A2 {
	v.b.emplaceValue(2, func(st *storage4[A0, A1, A2, A3]) { st.v2 = x })
	return &v.b.active().v2
}

// Construct2 replaces the live alternative with alternative 2 built by ctor.
func (v *Variant4[A0, A1, A2, A3]) Construct2(ctor func(*A2) error) (*A2, error) {
	err := v.b.emplace(2, func(st *storage4[A0, A1, A2, A3]) error { return ctor(&st.v2) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v2, nil
}

// Get3 returns alternative 3, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Get3() (A3, error) {
	if j := v.b.index(); j != 3 {
		var zero A3
		return zero, badAccess(3, j)
	}
	return v.b.active().v3, nil
}

// Ptr3 returns a pointer to alternative 3, or an error wrapping [ErrBadAccess].
func (v *Variant4[A0, A1, A2, A3]) Ptr3() (*A3, error) {
	if j := v.b.index(); j != 3 {
		return nil, badAccess(3, j)
	}
	return &v.b.active().v3, nil
}

// If3 returns a pointer to alternative 3, or nil.
func (v *Variant4[A0, A1, A2, A3]) If3() *A3 {
	if v.b.index() != 3 {
		return nil
	}
	return &v.b.active().v3
}

// At3 returns a pointer to alternative 3; it panics if 3 is not live.
func (v *Variant4[A0, A1, A2, A3]) At3() *A3 {
	v.b.check(3)
	return &v.b.active().v3
}

// Emplace3 replaces the live alternative with x as alternative 3.
func (v *Variant4[A0, A1, A2, A3]) Emplace3(x A3) *A3 {
	v.b.emplaceValue(3, func(st *storage4[A0, A1, A2, A3]) { st.v3 = x })
	return &v.b.active().v3
}

// Construct3 replaces the live alternative with alternative 3 built by ctor.
func (v *Variant4[A0, A1, A2, A3]) Construct3(ctor func(*A3) error) (*A3, error) {
	err := v.b.emplace(3, func(st *storage4[A0, A1, A2, A3]) error { return ctor(&st.v3) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v3, nil
}

// Clone returns a new variant holding a copy of the live alternative.
func (v *Variant4[A0, A1, A2, A3]) Clone() Variant4[A0, A1, A2, A3] {
	var w Variant4[A0, A1, A2, A3]
	w.b.clone(&v.b)
	return w
}

// Assign copies the live alternative of w into v.
func (v *Variant4[A0, A1, A2, A3]) Assign(w *Variant4[A0, A1, A2, A3]) {
	v.b.assign(&w.b)
}

// Swap exchanges the contents of v and w.
func (v *Variant4[A0, A1, A2, A3]) Swap(w *Variant4[A0, A1, A2, A3]) {
	v.b.swap(&w.b)
}

// Destroy releases the live alternative and returns v to its zero value.
func (v *Variant4[A0, A1, A2, A3]) Destroy() {
	v.b.destroy()
}

func (v *Variant4[A0, A1, A2, A3]) layout() *layout {
	return layoutOf[storage4[A0, A1, A2, A3]]()
}

func (v *Variant4[A0, A1, A2, A3]) live() any {
	return v.b.live()
}

func (v *Variant4[A0, A1, A2, A3]) copied(op string) any {
	return v.b.copied(op)
}

func (v *Variant4[A0, A1, A2, A3]) setAny(j int, x any) {
	switch j {
	case 0:
		x := as[A0](x)
		v.b.assignValue(0, func(st *storage4[A0, A1, A2, A3]) { st.v0 = x })
	case 1:
		x := as[A1](x)
		v.b.assignValue(1, func(st *storage4[A0, A1, A2, A3]) { st.v1 = x })
	case 2:
		x := as[A2](x)
		v.b.assignValue(2, func(st *storage4[A0, A1, A2, A3]) { st.v2 = x })
	case 3:
		x := as[A3](x)
		v.b.assignValue(3, func(st *storage4[A0, A1, A2, A3]) { st.v3 = x })
	default:
		outOfRange(j)
	}
}
