package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// MaxSourceSize bounds the size of a source listing read into memory.
const MaxSourceSize = 1 << 20

// InputUnavailableError reports a source file that cannot be read.
type InputUnavailableError struct {
	Path string
	Err  error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("file read failed for %s: %v (please check source file name and path)", e.Path, e.Err)
}

func (e *InputUnavailableError) Unwrap() error { return e.Err }

// GetPathInfo resolves relPath to an absolute path and its directory.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// OutputPath replaces the extension of inPath with ext.
func OutputPath(inPath, ext string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ext
}

// ReadSource reads a whole source listing.
func ReadSource(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &InputUnavailableError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &InputUnavailableError{Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() > MaxSourceSize {
		return nil, &InputUnavailableError{Path: path, Err: errors.Errorf("file too large: %d bytes (max %d)", info.Size(), MaxSourceSize)}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputUnavailableError{Path: path, Err: err}
	}
	return data, nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type staged struct {
	tmp, path string
}

// Staging writes output files under temporary names beside their targets.
// Commit renames all of them into place; Discard removes the rest.
type Staging struct {
	files []staged
}

// Add writes path's content through fn into a new temporary file.
func (st *Staging) Add(path string, fn func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	st.files = append(st.files, staged{tmp: f.Name(), path: path})
	if err := fn(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return errors.Wrapf(os.Chmod(f.Name(), 0o644), "chmod %s", path)
}

func (st *Staging) Commit() error {
	for len(st.files) > 0 {
		sf := st.files[0]
		if err := os.Rename(sf.tmp, sf.path); err != nil {
			return errors.Wrapf(err, "write %s", sf.path)
		}
		st.files = st.files[1:]
	}
	return nil
}

func (st *Staging) Discard() {
	for _, sf := range st.files {
		os.Remove(sf.tmp)
	}
	st.files = nil
}
