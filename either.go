// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Either represents a value that is either Left (error) or Right (success).
// It is a [Variant2] with Left as alternative 0 and Right as alternative 1,
// so the zero value is a Left holding the zero E.
type Either[E, A any] struct {
	v Variant2[E, A]
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{v: V2At0[E, A](e)}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{v: V2At1[E](a)}
}

// EitherOf lifts a Go (value, error) pair: Left(err) if err is non-nil,
// Right(a) otherwise.
func EitherOf[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// EitherFrom wraps a Variant2 as an Either.
func EitherFrom[E, A any](v Variant2[E, A]) Either[E, A] {
	return Either[E, A]{v: v}
}

// Variant returns the underlying Variant2.
func (e Either[E, A]) Variant() Variant2[E, A] {
	return e.v
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.v.Index() == 1
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return e.v.Index() == 0
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	a, err := e.v.Get1()
	return a, err == nil
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	l, err := e.v.Get0()
	return l, err == nil
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	return Visit2(&e.v, onLeft, onRight)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if r := e.v.If1(); r != nil {
		return Right[E](f(*r))
	}
	return Left[E, B](*e.v.At0())
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if r := e.v.If1(); r != nil {
		return f(*r)
	}
	return Left[E, B](*e.v.At0())
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if r := e.v.If1(); r != nil {
		return Right[F](*r)
	}
	return Left[F, A](f(*e.v.At0()))
}
