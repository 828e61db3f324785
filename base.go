// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "strconv"

// base is the transition engine shared by every arity.
//
// It owns the discriminant and two storage buffers. ix >= 0 means st1 holds
// alternative ix; ix < 0 means st2 holds alternative -ix-1. The zero value
// is alternative 0 in st1. Single-buffer strategies never touch st2.
//
// Every replacement goes through emplace, which runs the Strategy chosen for
// S. Whatever the strategy, a failed constructor leaves either the previous
// alternative or Valueless live, never a partly built one.
type base[S any, P slots[S]] struct {
	ix  int
	st1 S
	st2 S
}

func (b *base[S, P]) index() int {
	if b.ix >= 0 {
		return b.ix
	}
	return -b.ix - 1
}

// active returns the buffer holding the live alternative.
func (b *base[S, P]) active() P {
	if b.ix >= 0 {
		return P(&b.st1)
	}
	return P(&b.st2)
}

func (b *base[S, P]) spare() P {
	if b.ix >= 0 {
		return P(&b.st2)
	}
	return P(&b.st1)
}

// commit records that alternative j is live in st.
func (b *base[S, P]) commit(st P, j int) {
	if (*S)(st) == &b.st2 {
		b.ix = -j - 1
		return
	}
	b.ix = j
}

// check asserts that alternative i is live.
func (b *base[S, P]) check(i int) {
	if b.index() != i {
		contractViolation("alternative " + strconv.Itoa(i) + " accessed while " + strconv.Itoa(b.index()) + " is live")
	}
}

func (b *base[S, P]) valueless() bool {
	return b.index() == 0 && layoutOf[S]().valueless
}

// place makes alternative j live in a fresh base, one that still holds the
// zero value of alternative 0. set copies the value in.
func (b *base[S, P]) place(j int, set func(P)) {
	layoutOf[S]().checkRelocatable(j, "construction by value")
	set(P(&b.st1))
	b.ix = j
}

// emplaceValue replaces the live alternative with alternative j, copied in
// by set. Copying cannot fail, so this takes the infallible path.
func (b *base[S, P]) emplaceValue(j int, set func(P)) {
	layoutOf[S]().checkRelocatable(j, "emplace by value")
	_ = b.emplace(j, func(st P) error {
		set(st)
		return nil
	}, true)
}

// assignValue is emplaceValue, except that it assigns in place when j is
// already live.
func (b *base[S, P]) assignValue(j int, set func(P)) {
	l := layoutOf[S]()
	l.checkRelocatable(j, "assign")
	// Overwriting a Destroyer in place would skip its Destroy.
	if b.index() == j && !l.destroyer[j] {
		set(b.active())
		return
	}
	_ = b.emplace(j, func(st P) error {
		set(st)
		return nil
	}, true)
}

// release ends the lifetime of alternative i in st.
func (b *base[S, P]) release(st P, i int, l *layout) {
	if l.trivial[i] {
		return
	}
	if l.destroyer[i] {
		st.slot(i).(Destroyer).Destroy()
	}
	st.clear(i)
}

// destroy releases the live alternative and returns b to its zero value.
func (b *base[S, P]) destroy() {
	b.release(b.active(), b.index(), layoutOf[S]())
	*b = base[S, P]{}
}

// emplace replaces the live alternative with alternative j built by ctor.
// nothrow promises ctor cannot fail; a failure then is a contract violation.
// On failure the error is returned as is and a panic is re-raised as is,
// after the strategy has restored a consistent state.
func (b *base[S, P]) emplace(j int, ctor func(P) error, nothrow bool) error {
	l := layoutOf[S]()
	l.checkIndex(j)
	switch l.strategy {
	case SingleTrivial:
		return b.emplaceSingle(l, j, ctor, nothrow, false)
	case SingleDestroy:
		return b.emplaceSingle(l, j, ctor, nothrow, true)
	default:
		return b.emplaceDouble(l, j, ctor)
	}
}

func (b *base[S, P]) emplaceSingle(l *layout, j int, ctor func(P) error, nothrow, destroy bool) error {
	st := P(&b.st1)
	switch {
	case nothrow:
		if destroy {
			b.release(st, b.ix, l)
		}
		st.clear(j)
		if f := b.construct(st, ctor); f.failed() {
			contractViolation("infallible constructor failed")
		}
		b.ix = j
		return nil
	case destroy && l.valueless, !destroy && !l.relocatable[j]:
		return b.emplaceOrValueless(st, l, j, ctor, destroy)
	default:
		return b.emplaceViaTemp(st, l, j, ctor, destroy)
	}
}

// emplaceOrValueless builds in place and falls back to Valueless on failure.
// Only reached when alternative 0 is Valueless.
func (b *base[S, P]) emplaceOrValueless(st P, l *layout, j int, ctor func(P) error, destroy bool) error {
	if destroy {
		b.release(st, b.ix, l)
	}
	st.clear(j)
	if f := b.construct(st, ctor); f.failed() {
		if !l.trivial[j] {
			st.clear(j)
		}
		b.ix = 0
		return f.raise()
	}
	b.ix = j
	return nil
}

// emplaceViaTemp builds into a scratch buffer, then relocates by copy. The
// live alternative is untouched until construction has succeeded.
func (b *base[S, P]) emplaceViaTemp(st P, l *layout, j int, ctor func(P) error, destroy bool) error {
	tmp := acquireTemp[S](l)
	defer releaseTemp[S, P](l, tmp, j)

	if f := b.construct(P(tmp), ctor); f.failed() {
		return f.raise()
	}
	if destroy {
		b.release(st, b.ix, l)
	}
	st.move(j, tmp)
	b.ix = j
	return nil
}

// emplaceDouble builds into the spare buffer and flips only on success.
// Under DoubleTrivial the old occupant is simply abandoned.
func (b *base[S, P]) emplaceDouble(l *layout, j int, ctor func(P) error) error {
	cur, next := b.active(), b.spare()
	next.clear(j)
	if f := b.construct(next, ctor); f.failed() {
		if !l.trivial[j] {
			next.clear(j)
		}
		return f.raise()
	}
	if l.strategy == DoubleDestroy {
		b.release(cur, b.index(), l)
	}
	b.commit(next, j)
	return nil
}

// assign copies the live alternative of w into b, assigning in place when
// both hold the same alternative and it is not a Destroyer.
func (b *base[S, P]) assign(w *base[S, P]) {
	if b == w {
		return
	}
	l := layoutOf[S]()
	i, src := w.index(), (*S)(w.active())
	l.checkCopyable(i, "assign")
	if b.index() == i && !l.destroyer[i] {
		b.active().copy(i, src)
		return
	}
	// A Clone method may fail; a bit copy cannot.
	_ = b.emplace(i, func(st P) error {
		st.copy(i, src)
		return nil
	}, !l.cloner[i])
}

// clone makes b, a zero base, hold a copy of w's live alternative.
func (b *base[S, P]) clone(w *base[S, P]) {
	i := w.index()
	layoutOf[S]().checkCopyable(i, "clone")
	P(&b.st1).copy(i, (*S)(w.active()))
	b.ix = i
}

// live returns the live value as stored, without copying it.
func (b *base[S, P]) live() any {
	return b.active().load(b.index())
}

// copied returns an independent copy of the live value.
func (b *base[S, P]) copied(op string) any {
	i := b.index()
	layoutOf[S]().checkCopyable(i, op)
	var tmp S
	P(&tmp).copy(i, (*S)(b.active()))
	return P(&tmp).load(i)
}

// swap exchanges the states of b and w. Equal alternatives are swapped in
// place; otherwise the whole state is rotated through a temporary. Ownership
// moves, so no Destroy runs.
func (b *base[S, P]) swap(w *base[S, P]) {
	if b == w {
		return
	}
	l := layoutOf[S]()
	i, j := b.index(), w.index()
	l.checkRelocatable(i, "swap")
	l.checkRelocatable(j, "swap")
	if i == j {
		tmp := acquireTemp[S](l)
		defer releaseTemp[S, P](l, tmp, i)
		P(tmp).move(i, (*S)(b.active()))
		b.active().move(i, (*S)(w.active()))
		w.active().move(i, tmp)
		return
	}
	tmp := *b
	*b = *w
	*w = tmp
}

// failure is a constructor's error or recovered panic.
type failure struct {
	err      error
	panicked bool
	value    any
}

func (f failure) failed() bool {
	return f.err != nil || f.panicked
}

// raise returns the constructor's error, or re-panics with its value.
func (f failure) raise() error {
	if f.panicked {
		panic(f.value)
	}
	return f.err
}

func (b *base[S, P]) construct(st P, ctor func(P) error) (f failure) {
	defer func() {
		if r := recover(); r != nil {
			f = failure{panicked: true, value: r}
		}
	}()
	f.err = ctor(st)
	return f
}

func (l *layout) checkIndex(i int) {
	if i < 0 || i >= len(l.types) {
		outOfRange(i)
	}
}

func (l *layout) checkRelocatable(i int, op string) {
	l.checkIndex(i)
	if !l.relocatable[i] {
		contractViolation(op + " copies alternative " + strconv.Itoa(i) + " (" + l.types[i].String() + "), which must not be copied")
	}
}

func (l *layout) checkCopyable(i int, op string) {
	l.checkRelocatable(i, op)
	if l.destroyer[i] && !l.cloner[i] {
		contractViolation(op + " copies alternative " + strconv.Itoa(i) + " (" + l.types[i].String() + "), a Destroyer without a Clone method")
	}
}
