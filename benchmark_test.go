// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"code.hybscloud.com/variant"
)

// BenchmarkGet measures checked access to the live alternative.
func BenchmarkGet(b *testing.B) {
	v := variant.V3At2[int, float64, string]("s")
	for b.Loop() {
		_, _ = v.Get2()
	}
}

// BenchmarkEmplaceSingleTrivial measures in-place replacement.
func BenchmarkEmplaceSingleTrivial(b *testing.B) {
	var v variant.Variant2[int, float64]
	for b.Loop() {
		v.Emplace1(1)
		v.Emplace0(1)
	}
}

// BenchmarkEmplaceSingleDestroy measures replacement that clears the old value.
func BenchmarkEmplaceSingleDestroy(b *testing.B) {
	var v variant.Variant2[int, string]
	for b.Loop() {
		v.Emplace1("s")
		v.Emplace0(1)
	}
}

// BenchmarkConstructViaTemp measures fallible replacement through a pooled
// temporary.
func BenchmarkConstructViaTemp(b *testing.B) {
	var v variant.Variant2[int, string]
	ctor := func(s *string) error {
		*s = "s"
		return nil
	}
	for b.Loop() {
		_, _ = v.Construct1(ctor)
		v.Emplace0(1)
	}
}

// BenchmarkConstructDoubleDestroy measures replacement into the spare buffer.
func BenchmarkConstructDoubleDestroy(b *testing.B) {
	var v variant.Variant2[string, guarded]
	for b.Loop() {
		_, _ = v.Construct1(setTwo)
		v.Emplace0("s")
	}
}

// BenchmarkVisit measures single-variant dispatch.
func BenchmarkVisit(b *testing.B) {
	v := variant.V3At1[int, float64, string](1.5)
	for b.Loop() {
		_ = variant.Visit3(&v,
			func(int) int { return 0 },
			func(float64) int { return 1 },
			func(string) int { return 2 },
		)
	}
}

// BenchmarkVisitPair measures two-variant dispatch through nested tables.
func BenchmarkVisitPair(b *testing.B) {
	v := variant.V3At0[int, float64, string](1)
	w := variant.V3At2[int, float64, string]("s")
	table := pairTable()
	for b.Loop() {
		_ = table.Visit(&v).Visit(&w)
	}
}

// BenchmarkFrom measures resolved construction after the first call.
func BenchmarkFrom(b *testing.B) {
	for b.Loop() {
		_ = variant.From[variant.Variant3[int64, string, bool]](int32(1))
	}
}
