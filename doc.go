// Package gridscan is an in-memory toolkit for region analysis over dense
// 2D integer grids — from the safe container itself to connected-component
// measurement.
//
// 🚀 What is gridscan?
//
//	A small, deterministic library that brings together:
//		• grid/   — a bounds-checked rectangular container over a flat
//		            row-major buffer, with safe At/Set, Clone, and a
//		            deterministic visitor
//		• region/ — a 4-connectivity scanner that measures the largest
//		            contiguous run of equal-valued cells, per value and
//		            globally, without mutating the input
//
// ✨ Why choose gridscan?
//
//   - No panics on user input – every public surface returns sentinel errors
//   - Deterministic – fixed row-major traversal, no map-order dependence
//   - Iterative flood fill – explicit work-list, immune to deep recursion
//   - Pure Go – no cgo, the only dependency is testify for tests
//
// Quick ASCII example:
//
//	1 1 2      the two 1s on the left and the 1 below them form one
//	1 3 2      region of size 3; the 2-column on the right has size 2
//
// Start with grid.From2D to build a container, then region.Largest to
// measure it. See each package's doc.go for options, errors and complexity.
//
//	go get github.com/katalvlaran/gridscan
package gridscan
