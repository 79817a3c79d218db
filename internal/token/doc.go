// Package token defines the tokens of the chant notation.
// Invariants:
//   - Token.Text is the whole whitespace-delimited token.
//   - Lead and every Code are substrings of Text; their spans point into the source.
//   - Directive kinds are decided by the lead alone; a directive without a
//     parenthesis group still gets its directive kind and Group == false.
package token
