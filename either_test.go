// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

func TestEitherLeft(t *testing.T) {
	e := variant.Left[string, int]("error")

	if !e.IsLeft() {
		t.Fatal("expected IsLeft true")
	}
	if e.IsRight() {
		t.Fatal("expected IsRight false")
	}
	err, ok := e.GetLeft()
	if !ok {
		t.Fatal("GetLeft should return true")
	}
	if err != "error" {
		t.Fatalf("got %q, want %q", err, "error")
	}
}

func TestEitherRight(t *testing.T) {
	e := variant.Right[string, int](42)

	if e.IsLeft() {
		t.Fatal("expected IsLeft false")
	}
	if !e.IsRight() {
		t.Fatal("expected IsRight true")
	}
	val, ok := e.GetRight()
	if !ok {
		t.Fatal("GetRight should return true")
	}
	if val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
}

func TestMapEither(t *testing.T) {
	right := variant.Right[string, int](21)
	mapped := variant.MapEither(right, func(x int) int { return x * 2 })

	val, ok := mapped.GetRight()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}

	left := variant.Left[string, int]("error")
	mappedLeft := variant.MapEither(left, func(x int) int { return x * 2 })

	if mappedLeft.IsRight() {
		t.Fatal("mapping Left should remain Left")
	}
}

func TestFlatMapEither(t *testing.T) {
	right := variant.Right[string, int](21)
	result := variant.FlatMapEither(right, func(x int) variant.Either[string, int] {
		return variant.Right[string, int](x * 2)
	})

	val, ok := result.GetRight()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}

	// FlatMap with error in second computation
	result2 := variant.FlatMapEither(right, func(x int) variant.Either[string, int] {
		return variant.Left[string, int]("second error")
	})

	if result2.IsRight() {
		t.Fatal("expected Left from second computation")
	}
}

func TestMapLeftEither(t *testing.T) {
	left := variant.Left[string, int]("error")
	mapped := variant.MapLeftEither(left, func(e string) string {
		return "wrapped: " + e
	})

	err, ok := mapped.GetLeft()
	if !ok || err != "wrapped: error" {
		t.Fatalf("got %q, want %q", err, "wrapped: error")
	}
}

func TestEitherZeroValueIsLeft(t *testing.T) {
	var e variant.Either[string, int]
	if !e.IsLeft() {
		t.Fatal("zero Either should be Left")
	}
	if _, ok := e.GetRight(); ok {
		t.Fatal("GetRight on Left should return false")
	}
}

func TestMatchEither(t *testing.T) {
	show := func(e variant.Either[string, int]) string {
		return variant.MatchEither(e,
			func(s string) string { return "left " + s },
			func(n int) string { return "right " + strconv.Itoa(n) },
		)
	}
	require.Equal(t, "left bad", show(variant.Left[string, int]("bad")))
	require.Equal(t, "right 7", show(variant.Right[string](7)))
}

func TestEitherOf(t *testing.T) {
	n, err := strconv.Atoi("12")
	e := variant.EitherOf(n, err)
	got, ok := e.GetRight()
	require.True(t, ok)
	require.Equal(t, 12, got)

	n, err = strconv.Atoi("x")
	e = variant.EitherOf(n, err)
	cause, ok := e.GetLeft()
	require.True(t, ok)
	var numErr *strconv.NumError
	require.True(t, errors.As(cause, &numErr))
}

func TestEitherVariantRoundTrip(t *testing.T) {
	v := variant.V2At1[string, int](3)
	e := variant.EitherFrom(v)
	require.True(t, e.IsRight())
	back := e.Variant()
	require.Equal(t, 1, back.Index())
	require.Equal(t, 3, *back.At1())
}
