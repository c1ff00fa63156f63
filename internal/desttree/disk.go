package desttree

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"samplesort/internal/fileutil"
	"samplesort/internal/placement"
)

// Disk is the destination tree on the local filesystem.
type Disk struct {
	root string
	fs   billy.Filesystem
}

// NewDisk roots a tree at root. Nothing is created until EnsureDir or Place.
func NewDisk(root string) *Disk {
	return &Disk{root: root, fs: osfs.New(root)}
}

func (d *Disk) Root() string { return d.root }

func (d *Disk) EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return d.fs.MkdirAll(dir, 0o755)
}

func (d *Disk) Names(dir string) ([]string, error) {
	return listNames(d.fs, dir)
}

func (d *Disk) Place(src, rel string, mode placement.Mode) (placement.Action, error) {
	dst := d.abs(rel)
	switch mode {
	case placement.ModeMove:
		method, err := fileutil.MoveFile(src, dst)
		return actionFor(method), err
	case placement.ModeCopy:
		if err := fileutil.CopyFilePreserving(src, dst); err != nil {
			return "", err
		}
		return placement.ActionCopied, nil
	case placement.ModeSymlink:
		method, err := fileutil.LinkFile(src, dst)
		return actionFor(method), err
	default:
		return "", fmt.Errorf("unsupported placement mode %q", mode)
	}
}

func (d *Disk) Holds(rel, src string) bool {
	dst := d.abs(rel)
	return fileutil.RefersTo(dst, src) || fileutil.SameContent(dst, src)
}

func (d *Disk) abs(rel string) string {
	return filepath.Join(d.root, filepath.FromSlash(rel))
}

func actionFor(method fileutil.Method) placement.Action {
	switch method {
	case fileutil.MethodMoved:
		return placement.ActionMoved
	case fileutil.MethodCopied:
		return placement.ActionCopied
	case fileutil.MethodSymlinked:
		return placement.ActionSymlinked
	case fileutil.MethodHardlinked:
		return placement.ActionHardlinked
	default:
		return ""
	}
}

func listNames(fsys billy.Filesystem, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	infos, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}
