// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "strconv"

// Alternative storage: one typed slot per alternative, no discriminant.
// The owner decides which slot is live and clears slots it no longer uses.
//
// The garbage collector needs to know which words hold pointers, so slots
// cannot overlap the way a byte-level union would. Storage types must have
// exactly one field per alternative, in order; layoutOf reads them.

// slots is the method set the transition engine needs from a storage type.
type slots[S any] interface {
	*S

	// slot returns a pointer to slot i as *A_i.
	slot(i int) any
	// clear resets slot i to the zero value.
	clear(i int)
	// move copies slot i of from into slot i, transferring ownership.
	move(i int, from *S)
	// copy makes slot i an independent copy of slot i of from, through
	// the value's Cloner when it has one.
	copy(i int, from *S)
	// load returns the value in slot i.
	load(i int) any
}

type storage2[A0, A1 any] struct {
	v0 A0
	v1 A1
}

func (s *storage2[A0, A1]) slot(i int) any {
	switch i {
	case 0:
		return &s.v0
	case 1:
		return &s.v1
	}
	return outOfRange(i)
}

func (s *storage2[A0, A1]) clear(i int) {
	switch i {
	case 0:
		s.v0 = *new(A0)
	case 1:
		s.v1 = *new(A1)
	default:
		outOfRange(i)
	}
}

func (s *storage2[A0, A1]) move(i int, from *storage2[A0, A1]) {
	switch i {
	case 0:
		s.v0 = from.v0
	case 1:
		s.v1 = from.v1
	default:
		outOfRange(i)
	}
}

func (s *storage2[A0, A1]) copy(i int, from *storage2[A0, A1]) {
	switch i {
	case 0:
		if c, ok := any(&from.v0).(Cloner[A0]); ok {
			s.v0 = c.Clone()
		} else {
			s.v0 = from.v0
		}
	case 1:
		if c, ok := any(&from.v1).(Cloner[A1]); ok {
			s.v1 = c.Clone()
		} else {
			s.v1 = from.v1
		}
	default:
		outOfRange(i)
	}
}

func (s *storage2[A0, A1]) load(i int) any {
	switch i {
	case 0:
		return s.v0
	case 1:
		return s.v1
	}
	return outOfRange(i)
}

type storage3[A0, A1, A2 any] struct {
	v0 A0
	v1 A1
	v2 A2
}

func (s *storage3[A0, A1, A2]) slot(i int) any {
	switch i {
	case 0:
		return &s.v0
	case 1:
		return &s.v1
	case 2:
		return &s.v2
	}
	return outOfRange(i)
}

func (s *storage3[A0, A1, A2]) clear(i int) {
	switch i {
	case 0:
		s.v0 = *new(A0)
	case 1:
		s.v1 = *new(A1)
	case 2:
		s.v2 = *new(A2)
	default:
		outOfRange(i)
	}
}

func (s *storage3[A0, A1, A2]) move(i int, from *storage3[A0, A1, A2]) {
	switch i {
	case 0:
		s.v0 = from.v0
	case 1:
		s.v1 = from.v1
	case 2:
		s.v2 = from.v2
	default:
		outOfRange(i)
	}
}

func (s *storage3[A0, A1, A2]) copy(i int, from *storage3[A0, A1, A2]) {
	switch i {
	case 0:
		if c, ok := any(&from.v0).(Cloner[A0]); ok {
			s.v0 = c.Clone()
		} else {
			s.v0 = from.v0
		}
	case 1:
		if c, ok := any(&from.v1).(Cloner[A1]); ok {
			s.v1 = c.Clone()
		} else {
			s.v1 = from.v1
		}
	case 2:
		if c, ok := any(&from.v2).(Cloner[A2]); ok {
			s.v2 = c.Clone()
		} else {
			s.v2 = from.v2
		}
	default:
		outOfRange(i)
	}
}

func (s *storage3[A0, A1, A2]) load(i int) any {
	switch i {
	case 0:
		return s.v0
	case 1:
		return s.v1
	case 2:
		return s.v2
	}
	return outOfRange(i)
}

type storage4[A0, A1, A2, A3 any] struct {
	v0 A0
	v1 A1
	v2 A2
	v3 A3
}

func (s *storage4[A0, A1, A2, A3]) slot(i int) any {
	switch i {
	case 0:
		return &s.v0
	case 1:
		return &s.v1
	case 2:
		return &s.v2
	case 3:
		return &s.v3
	}
	return outOfRange(i)
}

func (s *storage4[A0, A1, A2, A3]) clear(i int) {
	switch i {
	case 0:
		s.v0 = *new(A0)
	case 1:
		s.v1 = *new(A1)
	case 2:
		s.v2 = *new(A2)
	case 3:
		s.v3 = *new(A3)
	default:
		outOfRange(i)
	}
}

func (s *storage4[A0, A1, A2, A3]) move(i int, from *storage4[A0, A1, A2, A3]) {
	switch i {
	case 0:
		s.v0 = from.v0
	case 1:
		s.v1 = from.v1
	case 2:
		s.v2 = from.v2
	case 3:
		s.v3 = from.v3
	default:
		outOfRange(i)
	}
}

func (s *storage4[A0, A1, A2, A3]) copy(i int, from *storage4[A0, A1, A2, A3]) {
	switch i {
	case 0:
		if c, ok := any(&from.v0).(Cloner[A0]); ok {
			s.v0 = c.Clone()
		} else {
			s.v0 = from.v0
		}
	case 1:
		if c, ok := any(&from.v1).(Cloner[A1]); ok {
			s.v1 = c.Clone()
		} else {
			s.v1 = from.v1
		}
	case 2:
		if c, ok := any(&from.v2).(Cloner[A2]); ok {
			s.v2 = c.Clone()
		} else {
			s.v2 = from.v2
		}
	case 3:
		if c, ok := any(&from.v3).(Cloner[A3]); ok {
			s.v3 = c.Clone()
		} else {
			s.v3 = from.v3
		}
	default:
		outOfRange(i)
	}
}

func (s *storage4[A0, A1, A2, A3]) load(i int) any {
	switch i {
	case 0:
		return s.v0
	case 1:
		return s.v1
	case 2:
		return s.v2
	case 3:
		return s.v3
	}
	return outOfRange(i)
}

func outOfRange(i int) any {
	contractViolation("alternative index " + strconv.Itoa(i) + " out of range")
	return nil
}
