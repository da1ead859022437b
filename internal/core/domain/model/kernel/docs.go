// Package kernel contains shared value objects used across the domain model.
//
// It provides UUID identifiers and WGS-84 geographic points. Both are
// immutable value objects whose zero values are invalid; they must be
// created through their constructors, which enforce all invariants.
package kernel
