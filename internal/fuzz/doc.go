// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes through
// the whole chant pipeline (source -> lexer -> parser -> width -> layout) and
// check the testkit invariants on every stage.
//
// Назначение: ловить паники, зависания и нарушения инвариантов на произвольном вводе.
package fuzztests
