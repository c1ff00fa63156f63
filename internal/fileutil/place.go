package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Method records how a file ended up at its destination.
type Method string

const (
	MethodMoved      Method = "moved"
	MethodCopied     Method = "copied"
	MethodSymlinked  Method = "symlinked"
	MethodHardlinked Method = "hardlinked"
)

// Indirections for tests that need a filesystem without link support.
var (
	symlink  = os.Symlink
	hardlink = os.Link
	rename   = os.Rename
)

// MoveFile relocates src to dst. Moves across devices fall back to a verified
// copy followed by removal of the source.
func MoveFile(src, dst string) (Method, error) {
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("move %s: %w", dst, os.ErrExist)
	}
	err := rename(src, dst)
	if err == nil {
		return MethodMoved, nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, unix.EXDEV) {
		return "", err
	}
	if err := CopyFilePreserving(src, dst); err != nil {
		return "", fmt.Errorf("copy across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("remove source after copy: %w", err)
	}
	return MethodMoved, nil
}

// linkAttempt is one step of the link fallback chain.
type linkAttempt struct {
	method Method
	run    func(src, dst string) error
}

func linkAttempts(target string) []linkAttempt {
	return []linkAttempt{
		{method: MethodSymlinked, run: func(_, dst string) error { return symlink(target, dst) }},
		{method: MethodHardlinked, run: func(src, dst string) error { return hardlink(src, dst) }},
		{method: MethodCopied, run: CopyFilePreserving},
	}
}

// LinkFile points dst at src, trying a symbolic link to the resolved absolute
// source, then a hard link, then a full copy. The first success wins; an error
// is returned only when every attempt failed.
func LinkFile(src, dst string) (Method, error) {
	target, err := ResolveSource(src)
	if err != nil {
		return "", err
	}
	var errs []error
	for _, attempt := range linkAttempts(target) {
		if err := attempt.run(src, dst); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", attempt.method, err))
			continue
		}
		return attempt.method, nil
	}
	return "", errors.Join(errs...)
}

// ResolveSource returns the absolute, symlink-free path of src.
func ResolveSource(src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("resolve source: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve source: %w", err)
	}
	return resolved, nil
}

// RefersTo reports whether dst already is src: a symlink resolving to it or a
// hard link sharing its inode.
func RefersTo(dst, src string) bool {
	info, err := os.Lstat(dst)
	if err != nil {
		return false
	}
	resolvedSrc, err := ResolveSource(src)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(dst)
		return err == nil && target == resolvedSrc
	}
	srcInfo, err := os.Stat(resolvedSrc)
	if err != nil {
		return false
	}
	return os.SameFile(info, srcInfo)
}

// SameContent reports whether a and b are regular files with identical size
// and SHA256 digest.
func SameContent(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil || !ai.Mode().IsRegular() {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil || !bi.Mode().IsRegular() || ai.Size() != bi.Size() {
		return false
	}
	ad, err := fileDigest(a)
	if err != nil {
		return false
	}
	bd, err := fileDigest(b)
	if err != nil {
		return false
	}
	return ad == bd
}
