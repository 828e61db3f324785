// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Bracket provides exception-safe acquisition and release of a variant.
// This follows the bracket pattern: acquire → use → release.
//
// acquire fills a zero variant, typically through Construct; use runs only
// if acquire returns nil. The variant is destroyed in every case, including
// a failed acquire (which may still leave a value live) and a panicking use.
//
// Returns Either containing the result or the error from acquire.
func Bracket[V any, PV interface {
	*V
	Destroyer
}, A any](acquire func(PV) error, use func(PV) A) Either[error, A] {
	var v V
	defer PV(&v).Destroy()
	if err := acquire(&v); err != nil {
		return Left[error, A](err)
	}
	return Right[error](use(&v))
}
