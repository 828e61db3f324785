// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides tagged unions for Go: containers that hold
// exactly one value out of a fixed list of alternative types, with
// type-safe access, replacement and visitation.
//
// Go has no variadic type parameters, so the container comes in fixed
// arities: [Variant2], [Variant3] and [Variant4]. Alternatives are
// addressed by index; the same type may appear more than once.
//
//	var v variant.Variant3[int, float64, string] // holds int(0)
//	v.Emplace2("hello")
//	s := *v.At2()      // "hello"
//	_, err := v.Get0() // errors.Is(err, variant.ErrBadAccess)
//
// # Design Philosophy
//
// variant provides:
//   - One live alternative at all times, with no torn state after a failed replacement
//   - Allocation-free access, replacement and visitation
//   - Replacement strategies decided once per alternative set, not per call
//
// # Access
//
// Per alternative i:
//
//   - Get{i}: copy of the value, or an error wrapping [ErrBadAccess]
//   - Ptr{i}: pointer to the value, or an error wrapping [ErrBadAccess]
//   - If{i}: pointer, or nil when another alternative is live
//   - At{i}: pointer; a wrong index is a contract violation and panics
//
// By type, when the type occurs exactly once:
//
//   - [Holds]: Report whether the alternative of a type is live
//   - [GetAs]: Copy of the value, or an error wrapping [ErrBadAccess]
//
// # Construction and Replacement
//
//   - V{N}At{i}: New container holding alternative i, e.g. [V3At1]
//   - [From]: New container holding the best-matching alternative for a value
//   - [AssignFrom]: Store a value as its best-matching alternative
//   - Emplace{i}: Replace with a copied value; cannot fail
//   - Construct{i}: Replace with a value built in place; may fail
//   - Assign, Clone, Swap, Destroy: whole-container operations
//
// Constructors passed to Construct{i} have the form func(*T) error and
// receive a pointer to the zero T where the value will live. A returned
// error or a panic counts as failure: the error is returned unchanged, the
// panic re-raised unchanged, after the container has been restored.
//
// # Replacement Strategies
//
// [StrategyOf] reports the [Strategy] of a variant type, chosen from two
// traits of its alternatives:
//
//   - D: no alternative needs releasing (no [Destroyer], no pointers)
//   - S: every alternative may be copied (holds no lock), or alternative 0
//     is [Valueless]
//
//	D  S  strategy        failed Construct leaves
//	T  T  SingleTrivial   previous value, or Valueless
//	T  F  DoubleTrivial   previous value
//	F  T  SingleDestroy   previous value, or Valueless
//	F  F  DoubleDestroy   previous value
//
// Double strategies build the new value in a second buffer and flip to it
// only on success. Single strategies build into a temporary, or in place
// with Valueless as the fallback when that alternative is permitted.
//
// Alternatives that must not be copied, those holding a [sync.Mutex] for
// instance, can only be created with Construct{i}. Copying them by Emplace,
// Assign, Clone or Swap panics.
//
// Every variant has two buffers with one slot per alternative, whatever
// its strategy, so it takes about twice the summed size of its
// alternatives.
//
// # Resource Hooks
//
//   - [Destroyer]: Destroy runs exactly once when a live value stops being live
//   - [Cloner]: Clone makes the copies taken by Clone, Assign, Subset and
//     Widen; a Destroyer without one cannot be copied
//   - [Valueless]: Marker alternative permitting the valueless fallback
//   - [Monostate]: Empty alternative
//
// # Comparison
//
//   - [Equal2], [Equal3], [Equal4]: Same alternative and equal values
//   - [Compare2], [Compare3], [Compare4]: Order by index, then by value
//   - [CompareFunc2], [CompareFunc3], [CompareFunc4]: Same with explicit comparators
//
// # Conversion
//
//   - [Subset]: Convert to a variant containing the live alternative's type
//   - [Widen]: Convert to a variant containing every alternative's type
//
// # Visitation
//
//   - [Visit2], [Visit3], [Visit4]: Call the branch for the live alternative
//   - [VisitPtr2], [VisitPtr3], [VisitPtr4]: Same with a pointer to the value
//   - [Cases2], [Cases3], [Cases4]: Branch tables; nesting them dispatches
//     over several variants at once
//   - [CasesPtr2], [CasesPtr3], [CasesPtr4]: Branch tables over pointers
//
// # Either
//
// [Either] is a two-way sum over [Variant2], with [Left], [Right],
// [EitherOf], [MatchEither], [MapEither], [FlatMapEither] and
// [MapLeftEither].
//
// # Errors
//
// [ErrBadAccess] is the only error the package returns. Every other misuse
// (an index out of range, unchecked access to a dead alternative, an
// ambiguous [From], a [Widen] that loses an alternative) is a programming
// error and panics with a message starting "variant: ".
package variant
