// Package reduce collapses a group of mutually compatible patterns into one
// merged pattern by column-wise reduction.
//
// For each column, Merge takes the first member (in group order) whose
// symbol is defined and copies it; a column where every member is X stays X.
// Because group members are pairwise compatible, no column can hold both a
// 0 and a 1, so the first defined symbol equals the value a full scan would
// find. Check performs that full scan and reports ErrConflict; a conflict
// means the group was built wrongly upstream.
package reduce
