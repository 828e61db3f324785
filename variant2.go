// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Variant2 holds exactly one value of one of its two alternatives.
// It behaves like [Variant3]; the zero value holds the zero value of A0.
type Variant2[A0, A1 any] struct {
	b base[storage2[A0, A1], *storage2[A0, A1]]
}

// V2At0 returns a Variant2 holding x as alternative 0.
func V2At0[A0, A1 any](x A0) Variant2[A0, A1] {
	var v Variant2[A0, A1]
	v.b.place(0, func(st *storage2[A0, A1]) { st.v0 = x })
	return v
}

// V2At1 returns a Variant2 holding x as alternative 1.
func V2At1[A0, A1 any](x A1) Variant2[A0, A1] {
	var v Variant2[A0, A1]
	v.b.place(1, func(st *storage2[A0, A1]) { st.v1 = x })
	return v
}

// Index returns the live alternative, numbered from 0.
func (v *Variant2[A0, A1]) Index() int {
	return v.b.index()
}

// Len returns the number of alternatives, 2.
func (v *Variant2[A0, A1]) Len() int {
	return 2
}

// Valueless reports whether A0 is [Valueless] and is live. It is false for
// every alternative set whose first alternative is not Valueless.
func (v *Variant2[A0, A1]) Valueless() bool {
	return v.b.valueless()
}

// Get0 returns alternative 0. If another alternative is live it returns
// the zero value and an error wrapping [ErrBadAccess].
func (v *Variant2[A0, A1]) Get0() (A0, error) {
	if j := v.b.index(); j != 0 {
		var zero A0
		return zero, badAccess(0, j)
	}
	return v.b.active().v0, nil
}

// Ptr0 returns a pointer to alternative 0, valid until the next
// replacement, or an error wrapping [ErrBadAccess].
func (v *Variant2[A0, A1]) Ptr0() (*A0, error) {
	if j := v.b.index(); j != 0 {
		return nil, badAccess(0, j)
	}
	return &v.b.active().v0, nil
}

// If0 returns a pointer to alternative 0, or nil if another alternative
// is live.
func (v *Variant2[A0, A1]) If0() *A0 {
	if v.b.index() != 0 {
		return nil
	}
	return &v.b.active().v0
}

// At0 returns a pointer to alternative 0. Calling it while another
// alternative is live is a contract violation and panics.
func (v *Variant2[A0, A1]) At0() *A0 {
	v.b.check(0)
	return &v.b.active().v0
}

// Emplace0 replaces the live alternative with x as alternative 0 and
// returns a pointer to the new value.
func (v *Variant2[A0, A1]) Emplace0(x A0) *A0 {
	v.b.emplaceValue(0, func(st *storage2[A0, A1]) { st.v0 = x })
	return &v.b.active().v0
}

// Construct0 replaces the live alternative with alternative 0, built in
// place by ctor from its zero value. If ctor returns an error or panics, the
// error is returned (the panic re-raised) and v holds either its previous
// value or, when A0 is [Valueless], Valueless.
func (v *Variant2[A0, A1]) Construct0(ctor func(*A0) error) (*A0, error) {
	err := v.b.emplace(0, func(st *storage2[A0, A1]) error { return ctor(&st.v0) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v0, nil
}

// Get1 returns alternative 1, or an error wrapping [ErrBadAccess].
func (v *Variant2[A0, A1]) Get1() (A1, error) {
	if j := v.b.index(); j != 1 {
		var zero A1
		return zero, badAccess(1, j)
	}
	return v.b.active().v1, nil
}

// Ptr1 returns a pointer to alternative 1, or an error wrapping [ErrBadAccess].
func (v *Variant2[A0, A1]) Ptr1() (*A1, error) {
	if j := v.b.index(); j != 1 {
		return nil, badAccess(1, j)
	}
	return &v.b.active().v1, nil
}

// If1 returns a pointer to alternative 1, or nil.
func (v *Variant2[A0, A1]) If1() *A1 {
	if v.b.index() != 1 {
		return nil
	}
	return &v.b.active().v1
}

// At1 returns a pointer to alternative 1; it panics if 1 is not live.
func (v *Variant2[A0, A1]) At1() *A1 {
	v.b.check(1)
	return &v.b.active().v1
}

// Emplace1 replaces the live alternative with x as alternative 1.
func (v *Variant2[A0, A1]) Emplace1(x A1) *A1 {
	v.b.emplaceValue(1, func(st *storage2[A0, A1]) { st.v1 = x })
	return &v.b.active().v1
}

// Construct1 replaces the live alternative with alternative 1 built by ctor.
func (v *Variant2[A0, A1]) Construct1(ctor func(*A1) error) (*A1, error) {
	err := v.b.emplace(1, func(st *storage2[A0, A1]) error { return ctor(&st.v1) }, false)
	if err != nil {
		return nil, err
	}
	return &v.b.active().v1, nil
}

// Clone returns a new variant holding a copy of the live alternative.
func (v *Variant2[A0, A1]) Clone() Variant2[A0, A1] {
	var w Variant2[A0, A1]
	w.b.clone(&v.b)
	return w
}

// Assign copies the live alternative of w into v.
func (v *Variant2[A0, A1]) Assign(w *Variant2[A0, A1]) {
	v.b.assign(&w.b)
}

// Swap exchanges the contents of v and w.
func (v *Variant2[A0, A1]) Swap(w *Variant2[A0, A1]) {
	v.b.swap(&w.b)
}

// Destroy releases the live alternative and returns v to its zero value.
func (v *Variant2[A0, A1]) Destroy() {
	v.b.destroy()
}

func (v *Variant2[A0, A1]) layout() *layout {
	return layoutOf[storage2[A0, A1]]()
}

func (v *Variant2[A0, A1]) live() any {
	return v.b.live()
}

func (v *Variant2[A0, A1]) copied(op string) any {
	return v.b.copied(op)
}

func (v *Variant2[A0, A1]) setAny(j int, x any) {
	switch j {
	case 0:
		x := as[A0](x)
		v.b.assignValue(0, func(st *storage2[A0, A1]) { st.v0 = x })
	case 1:
		x := as[A1](x)
		v.b.assignValue(1, func(st *storage2[A0, A1]) { st.v1 = x })
	default:
		outOfRange(j)
	}
}
