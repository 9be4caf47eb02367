// Package maybe implements the optional-value monad: a Maybe[T] is either
// Just(x), holding one value, or Nothing, holding none. Bind short-circuits
// at the first Nothing, which makes chains of optional computations read
// like straight-line code while skipping everything past a missing value.
//
// The package has two surfaces. The generic functions (Just, Nothing, Bind,
// Map, FromJust, FromMaybe, Fold, the list conversions) are fully typed and
// meant for direct use. Instance() adapts the same semantics to the dynamic
// monad.Instance contract for callers that must stay generic over the
// instance, such as the do-block sequencer.
//
// Key operations:
// - Just/Nothing/Fail: construct the two variants
// - Bind/Map: sequence and transform, short-circuiting on Nothing
// - FromJust: unconditional extraction, panics on Nothing
// - FromMaybe/Fold: total extraction with a default
// - ToList/FromList/CatMaybes/MapMaybes: list conversions and filtering maps
package maybe
