// Package future is the asynchronous capture half of duo: a Future[T] is a
// deferred computation whose outcome is observed as a duo.Result[T] or
// duo.Option[T].
//
// A Future always completes successfully from the awaiter's point of view:
// errors and panics raised by the computation are folded into the container,
// and context cancellation while awaiting surfaces as a failure carrying
// ctx.Err(). All awaits many futures concurrently, Any scans them in
// argument order.
package future
