// Package fileutil implements the filesystem primitives used to populate the
// destination tree: verified copies, moves that survive device boundaries, and
// the symlink, hard link, copy fallback chain.
package fileutil
