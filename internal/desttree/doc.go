// Package desttree provides the destination trees the placer writes into.
//
// Disk is the real destination, reached through a go-billy osfs rooted at the
// destination directory plus the fileutil placement primitives. Memory is a
// go-billy memfs fake used by tests. Preview layers a Memory over a read-only
// Disk so a dry run sees earlier planned placements exactly like a live run
// would, without mutating anything.
package desttree
