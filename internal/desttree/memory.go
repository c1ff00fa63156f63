package desttree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"samplesort/internal/placement"
)

// Memory is an in-memory destination tree. Placed files contain the source
// path; symlink placements are real memfs symlinks to the source path.
type Memory struct {
	root string
	fs   billy.Filesystem
}

// NewMemory returns an empty in-memory tree reporting root as its location.
func NewMemory(root string) *Memory {
	return &Memory{root: root, fs: memfs.New()}
}

func (m *Memory) Root() string { return m.root }

func (m *Memory) EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return m.fs.MkdirAll(dir, 0o755)
}

func (m *Memory) Names(dir string) ([]string, error) {
	return listNames(m.fs, dir)
}

func (m *Memory) Place(src, rel string, mode placement.Mode) (placement.Action, error) {
	if _, err := m.fs.Lstat(rel); err == nil {
		return "", &fs.PathError{Op: "place", Path: rel, Err: fs.ErrExist}
	}
	switch mode {
	case placement.ModeSymlink:
		if err := m.fs.Symlink(src, rel); err != nil {
			return "", err
		}
		return placement.ActionSymlinked, nil
	case placement.ModeCopy:
		if err := util.WriteFile(m.fs, rel, []byte(src), 0o644); err != nil {
			return "", err
		}
		return placement.ActionCopied, nil
	case placement.ModeMove:
		if err := util.WriteFile(m.fs, rel, []byte(src), 0o644); err != nil {
			return "", err
		}
		return placement.ActionMoved, nil
	default:
		return "", fmt.Errorf("unsupported placement mode %q", mode)
	}
}

func (m *Memory) Holds(rel, src string) bool {
	info, err := m.fs.Lstat(rel)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := m.fs.Readlink(rel)
		return err == nil && target == src
	}
	data, err := util.ReadFile(m.fs, rel)
	return err == nil && string(data) == src
}

// Files returns every regular file or symlink in the tree, slash separated.
func (m *Memory) Files() []string {
	var out []string
	_ = util.Walk(m.fs, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		out = append(out, strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/"))
		return nil
	})
	sort.Strings(out)
	return out
}
