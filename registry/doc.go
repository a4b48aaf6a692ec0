// Package registry assigns integer identities to input patterns.
//
// Every input occurrence receives its own identity, counting up from BaseID
// in input order, so duplicate lines stay distinct vertices of the
// compatibility graph. A reverse lookup from pattern text to identity is kept
// as well; when a string repeats, the last identity seen wins.
//
// A Registry is built once per run and is read-only afterwards, so it is safe
// to share between goroutines once New returns.
//
// Identity ↔ table index:
//
//	index = id - BaseID      (zero-based row/column of the adjacency table)
//	id    = index + BaseID
package registry
