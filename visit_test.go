// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

func describe(v *num) string {
	return variant.Visit3(v,
		func(n int) string { return "int " + strconv.Itoa(n) },
		func(f float64) string { return "float " + strconv.FormatFloat(f, 'g', -1, 64) },
		func(s string) string { return "string " + s },
	)
}

func TestVisit(t *testing.T) {
	v := variant.V3At1[int, float64, string](2.5)
	require.Equal(t, "float 2.5", describe(&v))
	v.Emplace2("x")
	require.Equal(t, "string x", describe(&v))
	v.Emplace0(3)
	require.Equal(t, "int 3", describe(&v))
}

func TestVisitArities(t *testing.T) {
	a := variant.V2At1[int, string]("two")
	got := variant.Visit2(&a,
		func(int) int { return 0 },
		func(s string) int { return len(s) },
	)
	require.Equal(t, 3, got)

	b := variant.V4At3[int, float64, string, bool](true)
	idx := variant.Visit4(&b,
		func(int) int { return 0 },
		func(float64) int { return 1 },
		func(string) int { return 2 },
		func(bool) int { return 3 },
	)
	require.Equal(t, b.Index(), idx)
}

func TestVisitPtrMutates(t *testing.T) {
	v := variant.V3At0[int, float64, string](1)
	variant.VisitPtr3(&v,
		func(n *int) struct{} { *n *= 10; return struct{}{} },
		func(*float64) struct{} { return struct{}{} },
		func(s *string) struct{} { *s += "!"; return struct{}{} },
	)
	require.Equal(t, 10, *v.At0())

	w := variant.V2At1[int, string]("a")
	variant.VisitPtr2(&w,
		func(*int) struct{} { return struct{}{} },
		func(s *string) struct{} { *s += "b"; return struct{}{} },
	)
	require.Equal(t, "ab", *w.At1())

	x := variant.V4At2[int, float64, string, bool]("c")
	variant.VisitPtr4(&x,
		func(*int) struct{} { return struct{}{} },
		func(*float64) struct{} { return struct{}{} },
		func(s *string) struct{} { *s = "d"; return struct{}{} },
		func(*bool) struct{} { return struct{}{} },
	)
	require.Equal(t, "d", *x.At2())
}

func TestCases(t *testing.T) {
	c := variant.Cases2[int, string, string]{
		On0: strconv.Itoa,
		On1: func(s string) string { return s },
	}
	v := variant.V2At0[int, string](5)
	require.Equal(t, "5", c.Visit(&v))
	v.Emplace1("five")
	require.Equal(t, "five", c.Visit(&v))
}

type numCases = variant.Cases3[int, float64, string, string]

// pairTable dispatches on two variants by nesting branch tables.
func pairTable() variant.Cases3[int, float64, string, numCases] {
	inner := func(tag string) numCases {
		return numCases{
			On0: func(int) string { return tag + ",int" },
			On1: func(float64) string { return tag + ",float" },
			On2: func(string) string { return tag + ",string" },
		}
	}
	return variant.Cases3[int, float64, string, numCases]{
		On0: func(int) numCases { return inner("int") },
		On1: func(float64) numCases { return inner("float") },
		On2: func(string) numCases { return inner("string") },
	}
}

func TestMultiDispatchAllPairs(t *testing.T) {
	values := []num{
		variant.V3At0[int, float64, string](1),
		variant.V3At1[int, float64, string](1.5),
		variant.V3At2[int, float64, string]("s"),
	}
	names := []string{"int", "float", "string"}
	table := pairTable()
	seen := make(map[string]bool)
	for i := range values {
		for j := range values {
			got := table.Visit(&values[i]).Visit(&values[j])
			want := names[i] + "," + names[j]
			if got != want {
				t.Fatalf("pair (%d, %d): got %q, want %q", i, j, got, want)
			}
			seen[got] = true
		}
	}
	require.Len(t, seen, 9)
}

func TestVisitNestedVariant(t *testing.T) {
	inner := variant.V2At1[int, string]("deep")
	outer := variant.V2At1[bool, variant.Variant2[int, string]](inner)
	got := variant.Visit2(&outer,
		func(bool) string { return "" },
		func(v variant.Variant2[int, string]) string {
			return variant.Visit2(&v, strconv.Itoa, func(s string) string { return s })
		},
	)
	require.Equal(t, "deep", got)
}

func TestCasesPtrMutates(t *testing.T) {
	c := variant.CasesPtr3[int, float64, string, int]{
		On0: func(x *int) int { *x *= 2; return 0 },
		On1: func(x *float64) int { *x /= 2; return 1 },
		On2: func(s *string) int { *s += "!"; return 2 },
	}
	v := variant.V3At0[int, float64, string](4)
	require.Equal(t, 0, c.Visit(&v))
	require.Equal(t, 8, *v.At0())

	v.Emplace2("hi")
	require.Equal(t, 2, c.Visit(&v))
	require.Equal(t, "hi!", *v.At2())
}

type bumpCases = variant.CasesPtr3[int, float64, string, struct{}]

// bumpPairTable updates both variants of a pair in every leaf.
func bumpPairTable() variant.CasesPtr3[int, float64, string, bumpCases] {
	inner := func(bump func()) bumpCases {
		return bumpCases{
			On0: func(x *int) struct{} { bump(); *x++; return struct{}{} },
			On1: func(x *float64) struct{} { bump(); *x += 0.5; return struct{}{} },
			On2: func(s *string) struct{} { bump(); *s += "+"; return struct{}{} },
		}
	}
	return variant.CasesPtr3[int, float64, string, bumpCases]{
		On0: func(x *int) bumpCases { return inner(func() { *x++ }) },
		On1: func(x *float64) bumpCases { return inner(func() { *x += 0.5 }) },
		On2: func(s *string) bumpCases { return inner(func() { *s += "+" }) },
	}
}

func TestMultiDispatchPtrUpdatesBoth(t *testing.T) {
	table := bumpPairTable()
	for i := range 3 {
		for j := range 3 {
			a, b := numAt(i), numAt(j)
			table.Visit(&a).Visit(&b)
			require.Equal(t, i, a.Index())
			require.Equal(t, j, b.Index())
			requireBumped(t, &a)
			requireBumped(t, &b)
		}
	}
}

// numAt returns a fixed value of alternative i.
func numAt(i int) num {
	switch i {
	case 0:
		return variant.V3At0[int, float64, string](1)
	case 1:
		return variant.V3At1[int, float64, string](1)
	default:
		return variant.V3At2[int, float64, string]("s")
	}
}

func requireBumped(t *testing.T, v *num) {
	t.Helper()
	switch v.Index() {
	case 0:
		require.Equal(t, 2, *v.At0())
	case 1:
		require.Equal(t, 1.5, *v.At1())
	default:
		require.Equal(t, "s+", *v.At2())
	}
}
