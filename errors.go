// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"github.com/pkg/errors"
)

// ErrBadAccess is returned when a checked accessor or a subset conversion
// asks for an alternative that is not the live one.
//
// It is the only recoverable error the package produces. Returned errors
// wrap ErrBadAccess with the requested and held alternatives; test for it
// with errors.Is.
var ErrBadAccess = errors.New("variant: bad access")

func badAccess(want, held int) error {
	return errors.Wrapf(ErrBadAccess, "alternative %d requested, %d held", want, held)
}

// contractViolation reports a caller bug: an index outside the declared
// range, or unchecked access to an alternative that is not live.
func contractViolation(msg string) {
	panic("variant: " + msg)
}
