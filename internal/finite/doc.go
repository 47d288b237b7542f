// Package finite holds the debug-only finite-operand assertions shared by
// the relaxed arithmetic entry points in the relaxed, fmath and vec
// packages.
//
// Default builds compile the assertions away entirely, preserving the
// performance intent of the relaxed contract. Building with -tags
// finitecheck turns a violated precondition into a panic naming the
// offending operation and operands.
package finite
