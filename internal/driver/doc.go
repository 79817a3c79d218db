// Package driver runs chant files through tokenize, parse, width and layout,
// one file synchronously or a directory in parallel, with an optional plan cache.
package driver
