// Package laws provides reusable checks for the three monad laws over any
// monad.Instance. Equality over monadic values is instance-specific, so
// every check takes it as a function.
//
// The checks are meant for instance test suites: pick representative
// values and continuations, run each law, and fail the test on false.
package laws
