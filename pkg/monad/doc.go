// Package monad defines the contract every concrete monad instance must
// satisfy, plus combinators derived purely from that contract.
//
// Go cannot parameterize over type constructors, so the contract is a
// dynamic one: an Instance operates on opaque monadic values. Concrete
// instances (see package maybe) additionally expose a fully typed generic
// API; the dynamic surface exists for callers that must stay generic over
// the instance, such as the do-block sequencer in package do.
//
// Key constructs:
// - Instance: Bind and Return over opaque monadic values
// - FailInstance: optional canonical-failure constructor
// - Extractor: try-extract predicate for instances with observable payloads
// - Map, Then, Join, CatValues, FilterMap: contract-derived combinators
package monad
