// Package taskx runs a single blocking operation off the calling goroutine
// and hands its outcome back exactly once.
//
// The package is split in two pieces that are tested independently:
//
//   - Task execution (Go, Task.Poll): the operation runs on its own goroutine
//     and reports through a buffered, single-consumer completion channel.
//     If the goroutine dies without reporting (a panic), the consumer sees
//     ErrNoResult instead of waiting forever.
//   - Display-floor pacing (Await, Run): the caller polls the task while
//     ticking an Indicator, and keeps ticking until a minimum visible
//     duration has passed, so very fast operations do not flash.
//
// There is no cancellation and no timeout once a task is dispatched. An
// operation that never returns keeps Await polling indefinitely.
package taskx
