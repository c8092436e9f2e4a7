// Package logging provides a minimal logging facade for the hqc module.
//
// The Logger interface wraps a subset of log/slog, small enough that
// callers can swap in a custom implementation for testing or for a
// house redaction policy.
//
// # Security considerations
//
// - Never log secret keys, sampled x/y/r1/r2/e vectors, recovered
// messages, or shared secrets.
// - Use logging.Redacted to mark an attribute that was intentionally
// withheld rather than omitting it silently.
package logging
