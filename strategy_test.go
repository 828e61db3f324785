// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

var errBuild = errors.New("build failed")

func failing[T any](*T) error { return errBuild }

func panicking[T any](*T) error { panic("boom") }

// requireReraised runs f and asserts it panics with exactly "boom".
func requireReraised(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != "boom" {
			t.Fatalf("got panic %v, want %q", r, "boom")
		}
	}()
	f()
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		name string
		got  variant.Strategy
		want variant.Strategy
	}{
		{"trivial", variant.StrategyOf[variant.Variant2[int, float64]](), variant.SingleTrivial},
		{"trivial+lock", variant.StrategyOf[variant.Variant2[int, guarded]](), variant.DoubleTrivial},
		{"pointer", variant.StrategyOf[variant.Variant2[int, string]](), variant.SingleDestroy},
		{"destroyer", variant.StrategyOf[variant.Variant3[int, tracked, bool]](), variant.SingleDestroy},
		{"pointer+lock", variant.StrategyOf[variant.Variant2[string, guarded]](), variant.DoubleDestroy},
		{"destroyer+lock", variant.StrategyOf[variant.Variant2[int, guardedTracked]](), variant.DoubleDestroy},
		{"valueless+lock", variant.StrategyOf[variant.Variant3[variant.Valueless, int, guarded]](), variant.SingleTrivial},
		{"valueless+pointer+lock", variant.StrategyOf[variant.Variant3[variant.Valueless, string, guarded]](), variant.SingleDestroy},
		{"valueless not first", variant.StrategyOf[variant.Variant3[int, variant.Valueless, guarded]](), variant.DoubleTrivial},
		{"empty arrays", variant.StrategyOf[variant.Variant2[[0]*int, [0]guarded]](), variant.SingleTrivial},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestStrategyString(t *testing.T) {
	require.Equal(t, "single-trivial", variant.SingleTrivial.String())
	require.Equal(t, "double-destroy", variant.DoubleDestroy.String())
	require.Equal(t, "unknown", variant.Strategy(9).String())
	require.True(t, variant.DoubleTrivial.Double())
	require.False(t, variant.SingleDestroy.Double())
}

func TestSingleTrivialFailureKeepsPrevious(t *testing.T) {
	v := variant.V2At0[int, float64](7)
	_, err := v.Construct1(failing[float64])
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 7, *v.At0())

	requireReraised(t, func() { _, _ = v.Construct1(panicking[float64]) })
	require.Equal(t, 7, *v.At0())

	p, err := v.Construct1(func(x *float64) error { *x = 1.5; return nil })
	require.NoError(t, err)
	require.Equal(t, 1.5, *p)
}

func TestSingleTrivialLockedFallsBackToValueless(t *testing.T) {
	v := variant.V3At1[variant.Valueless, int, guarded](7)
	_, err := v.Construct2(func(g *guarded) error {
		g.n = 1
		return errBuild
	})
	require.ErrorIs(t, err, errBuild)
	require.True(t, v.Valueless())

	v.Emplace1(8)
	requireReraised(t, func() { _, _ = v.Construct2(panicking[guarded]) })
	require.True(t, v.Valueless())

	g, err := v.Construct2(func(g *guarded) error { g.n = 2; return nil })
	require.NoError(t, err)
	require.Equal(t, 2, g.n)
	require.Equal(t, 2, v.Index())

	// Relocatable targets still keep the previous value.
	_, err = v.Construct1(failing[int])
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 2, v.Index())
}

func TestDoubleTrivialFailureKeepsPrevious(t *testing.T) {
	var v variant.Variant2[int, guarded]
	v.Emplace0(3)
	_, err := v.Construct1(failing[guarded])
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 3, *v.At0())

	requireReraised(t, func() { _, _ = v.Construct1(panicking[guarded]) })
	require.Equal(t, 3, *v.At0())

	_, err = v.Construct1(func(g *guarded) error { g.n = 4; return nil })
	require.NoError(t, err)
	_, err = v.Construct0(failing[int])
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 4, v.At1().n)
}

func TestSingleDestroyFailureKeepsPrevious(t *testing.T) {
	var r registry
	v := variant.V3At1[int, tracked, string](r.make(1))

	_, err := v.Construct2(failing[string])
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 1, v.At1().id)
	require.Equal(t, 0, r.destroyed)

	requireReraised(t, func() { _, _ = v.Construct2(panicking[string]) })
	require.Equal(t, 1, v.At1().id)
	require.Equal(t, 0, r.destroyed)

	// A failed tracked build is never destroyed.
	_, err = v.Construct1(func(tr *tracked) error {
		tr.id = 99
		return errBuild
	})
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 1, v.At1().id)
	require.Equal(t, 0, r.destroyed)

	_, err = v.Construct1(r.ctor(2))
	require.NoError(t, err)
	require.Equal(t, 2, v.At1().id)
	require.Equal(t, 1, r.destroyed)

	v.Destroy()
	require.Equal(t, 0, r.live)
}

func TestSingleDestroyValuelessFallback(t *testing.T) {
	v := variant.V3At1[variant.Valueless, string, guarded]("old")
	_, err := v.Construct1(failing[string])
	require.ErrorIs(t, err, errBuild)
	require.True(t, v.Valueless())

	_, err = v.Construct2(func(g *guarded) error { g.n = 5; return nil })
	require.NoError(t, err)
	require.Equal(t, 5, v.At2().n)

	requireReraised(t, func() { _, _ = v.Construct1(panicking[string]) })
	require.True(t, v.Valueless())
}

func TestSingleDestroyValuelessFallbackDestroysPrevious(t *testing.T) {
	var r registry
	require.Equal(t, variant.SingleDestroy, variant.StrategyOf[variant.Variant3[variant.Valueless, tracked, guarded]]())

	v := variant.V3At1[variant.Valueless, tracked, guarded](r.make(1))
	_, err := v.Construct1(failing[tracked])
	require.ErrorIs(t, err, errBuild)
	require.True(t, v.Valueless())
	require.Equal(t, 0, r.live)
	require.Equal(t, 1, r.destroyed)

	v.Destroy()
	require.Equal(t, 1, r.destroyed)

	v.Emplace1(r.make(2))
	requireReraised(t, func() { _, _ = v.Construct1(panicking[tracked]) })
	require.True(t, v.Valueless())
	require.Equal(t, 0, r.live)
	require.Equal(t, 2, r.destroyed)

	v.Destroy()
	require.Equal(t, 2, r.destroyed)
}

func TestDoubleDestroyFailureKeepsPrevious(t *testing.T) {
	var r registry
	var v variant.Variant3[int, tracked, guardedTracked]
	require.Equal(t, variant.DoubleDestroy, variant.StrategyOf[variant.Variant3[int, tracked, guardedTracked]]())

	_, err := v.Construct1(r.ctor(1))
	require.NoError(t, err)

	_, err = v.Construct2(func(g *guardedTracked) error {
		g.tracked = r.make(2)
		g.Destroy() // undo our own partial work before failing
		return errBuild
	})
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 1, v.At1().id)
	require.Equal(t, 1, r.live)

	requireReraised(t, func() { _, _ = v.Construct2(panicking[guardedTracked]) })
	require.Equal(t, 1, v.At1().id)
	require.Equal(t, 1, r.live)

	g, err := v.Construct2(func(g *guardedTracked) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.tracked = r.make(3)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.id)
	require.Equal(t, 1, r.live)

	v.Emplace0(0)
	require.Equal(t, 0, r.live)
}

func TestDestroyBalanced(t *testing.T) {
	var r registry
	var v variant.Variant3[int, tracked, string]
	for i := range 100 {
		switch i % 4 {
		case 0:
			v.Emplace1(r.make(i))
		case 1:
			_, _ = v.Construct1(failing[tracked])
		case 2:
			_, _ = v.Construct1(r.ctor(i))
		case 3:
			v.Emplace2("s")
		}
		want := 0
		if v.Index() == 1 {
			want = 1
		}
		if r.live != want {
			t.Fatalf("step %d: got %d live, want %d", i, r.live, want)
		}
	}
	v.Destroy()
	require.Equal(t, 0, r.live)
}
