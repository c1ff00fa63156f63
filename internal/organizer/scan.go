package organizer

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"samplesort/internal/classify"
	"samplesort/internal/failure"
)

// appleDoublePrefix marks macOS resource-fork companions such as "._kick.wav".
const appleDoublePrefix = "._"

// SampleFile is one accepted input file.
type SampleFile struct {
	// Path is absolute.
	Path string
	// Rel is Path relative to the source root, slash separated.
	Rel  string
	Stem string
	Ext  string
	// Ancestors are the directory names between the file and the source
	// root, nearest first. The source root itself is not included.
	Ancestors []string
	// PackHint is the top-level folder under the source root, empty for
	// files directly in the root.
	PackHint string
	Size     int64
}

// Name is the file name with extension.
func (s SampleFile) Name() string {
	return s.Stem + s.Ext
}

// Accepts reports whether name has an accepted extension (case-insensitive).
func Accepts(name string, includeNonAudio bool) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, candidate := range classify.AudioExtensions {
		if ext == candidate {
			return true
		}
	}
	if includeNonAudio {
		for _, candidate := range classify.NonAudioExtensions {
			if ext == candidate {
				return true
			}
		}
	}
	return false
}

// Scan walks root and returns every accepted regular file, sorted by relative
// path. Symlinks are not followed. The result is captured once; files added
// later are not seen by the run.
func Scan(ctx context.Context, root string, includeNonAudio bool) ([]SampleFile, error) {
	resolved, err := filepath.Abs(root)
	if err == nil {
		resolved, err = filepath.EvalSymlinks(resolved)
	}
	if err != nil {
		return nil, failure.Wrap(failure.ErrMissingSource, "scan", "resolve root", root, err)
	}
	root = resolved

	var files []SampleFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if strings.HasPrefix(d.Name(), appleDoublePrefix) || !Accepts(d.Name(), includeNonAudio) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, newSampleFile(path, filepath.ToSlash(rel), info.Size()))
		return nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, failure.Wrap(failure.ErrMissingSource, "scan", "walk source", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}

// Describe builds the SampleFile a scan would produce for rel, a slash
// separated path below the source root, without touching disk.
func Describe(rel string) SampleFile {
	rel = strings.Trim(filepath.ToSlash(filepath.Clean(rel)), "/")
	return newSampleFile(rel, rel, 0)
}

func newSampleFile(path, rel string, size int64) SampleFile {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	segments := strings.Split(rel, "/")
	dirs := segments[:len(segments)-1]

	ancestors := make([]string, 0, len(dirs))
	for i := len(dirs) - 1; i >= 0; i-- {
		ancestors = append(ancestors, dirs[i])
	}
	var packHint string
	if len(dirs) > 0 {
		packHint = dirs[0]
	}
	return SampleFile{
		Path:      path,
		Rel:       rel,
		Stem:      strings.TrimSuffix(name, ext),
		Ext:       ext,
		Ancestors: ancestors,
		PackHint:  packHint,
		Size:      size,
	}
}
