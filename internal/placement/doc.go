// Package placement resolves the final, collision-free name for a sample and
// populates the destination tree with it.
//
// The destination is reached only through the Tree capability (ensure a
// directory, list a directory, place a file, check whether an existing entry
// already holds a source), so the naming rules can be exercised against an
// in-memory tree. Name collisions are resolved with a short deterministic
// disambiguator derived from the original name: repeated runs over the same
// input produce the same names.
package placement
