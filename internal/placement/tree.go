package placement

// Tree is the destination filesystem capability. Paths are slash separated
// and relative to the destination root.
type Tree interface {
	// Root is the absolute destination root.
	Root() string
	// EnsureDir creates dir and its parents; existing directories are fine.
	EnsureDir(dir string) error
	// Names lists the entries of dir. A missing dir has no entries.
	Names(dir string) ([]string, error)
	// Place puts src at rel using mode and reports what it did.
	Place(src, rel string, mode Mode) (Action, error)
	// Holds reports whether the entry at rel already is, or links to, src.
	Holds(rel, src string) bool
}
