package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"samplesort/internal/failure"
)

// CheckSourceDirectory verifies that the source exists and can be listed and read.
func CheckSourceDirectory(path string) Result {
	const name = "Source directory"
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path), Marker: failure.ErrMissingSource}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Marker: failure.ErrMissingSource}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path), Marker: failure.ErrMissingSource}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err), Marker: failure.ErrConfiguration}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path), Marker: failure.ErrConfiguration}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Marker: failure.ErrConfiguration}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path), Marker: failure.ErrConfiguration}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err), Marker: failure.ErrConfiguration}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCreatable verifies that path is a writable directory or can be
// created: its nearest existing ancestor must be a writable directory.
func CheckCreatable(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path)
	}
	ancestor := path
	for {
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor)", path), Marker: failure.ErrConfiguration}
		}
		ancestor = parent
		if _, err := os.Stat(ancestor); err == nil {
			break
		}
	}
	result := CheckDirectoryAccess(name, ancestor)
	if !result.Passed {
		return result
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created under %s)", path, ancestor)}
}

// CheckReadable verifies that path, when it exists, is a readable directory.
// A missing path passes: a dry run reports into an empty destination.
func CheckReadable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (does not exist yet)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Marker: failure.ErrConfiguration}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path), Marker: failure.ErrConfiguration}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err), Marker: failure.ErrConfiguration}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}
