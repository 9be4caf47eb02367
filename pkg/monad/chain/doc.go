// Package chain provides a fluent wrapper around a monadic value for
// building straight-line chains without the do-block sequencer.
//
// It composes the contract operations behind a convenient Chain type, so a
// pipeline of optional or failing steps reads top to bottom instead of
// nesting continuations.
//
// Key operations:
// - Start/FromValue: begin a chain from a monadic value or a plain value
// - Then: bind a function that returns a new monadic value
// - Map: transform the payload with a pure function
// - Ensure: run a side effect on the payload without changing the result
// - Or: fall back to an alternative chain when empty
// - Finally: collapse the chain into a final value via handlers
//
// Or and Finally observe the success shape and therefore need the instance
// to implement monad.Extractor; the other operations work with any
// monad.Instance.
package chain
