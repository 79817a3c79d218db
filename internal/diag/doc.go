// Package diag defines the diagnostic model shared by the tokenizer, the
// document builder and the layout engine.
//
// Malformed notation never aborts a run. Every phase reports what it could not
// understand through a Reporter and carries on with a best-effort value; the
// caller receives the (possibly partial) document together with a Bag.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable ID (LEX1001, SYN2001, LAY3001, IO4001).
//   - Message – the human-readable line surfaced to the user.
//   - Primary – byte span into the chant text the diagnostic is about.
//   - Notes – optional secondary spans.
//
// # Ordering
//
// A Bag is append-only and keeps discovery order; it is never sorted. Messages
// returns the plain strings in that order, which is what viewers display above
// the staff.
//
// Rendering lives in internal/diagfmt.
package diag
