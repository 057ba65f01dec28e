// File: pkg/prompt/output.go
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

// outputFileMode is the mode new output files are created with, before the
// process umask is applied.
const outputFileMode os.FileMode = 0666

// maxSymlinkHops bounds how many links resolveTarget follows for a dangling
// destination.
const maxSymlinkHops = 40

// WriteOutput writes the rendered document to path. Symlinks are followed, so
// the link target is updated and the link is kept. Regular files are replaced
// atomically, so a failed write never leaves partial output behind. Existing
// special files (devices, pipes) are opened and written in place. Any failure
// is returned as a *WriteError naming path as given.
func WriteOutput(path, content string, logger *zap.Logger) error {
	target := resolveTarget(path)
	if target != path {
		logger.Debug("Following output symlink", zap.String("path", path), zap.String("target", target))
	}

	info, statErr := os.Stat(target)
	existed := statErr == nil

	var err error
	switch {
	case existed && info.IsDir():
		err = fmt.Errorf("%s is a directory", target)
	case existed && !info.Mode().IsRegular():
		err = writeInPlace(target, content)
	default:
		err = replaceFile(target, content, existed)
	}

	if err != nil {
		logger.Debug("Failed to write output file", zap.String("path", path), zap.Error(err))
		return &WriteError{Path: path, Err: err}
	}

	logger.Debug("Wrote output file", zap.String("path", target), zap.Int("sizeBytes", len(content)))
	return nil
}

// resolveTarget returns the file a write to path lands on. A dangling link
// resolves to the missing file it points at; a path that is not a link is
// returned unchanged.
func resolveTarget(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}

	for i := 0; i < maxSymlinkHops; i++ {
		info, err := os.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return path
		}
		link, err := os.Readlink(path)
		if err != nil {
			return path
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return path
}

// replaceFile swaps content into path through a temp file. A missing path is
// created empty first so the umask decides its mode, which the atomic
// replacement then carries over.
func replaceFile(path, content string, existed bool) error {
	if !existed {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, outputFileMode)
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	err := atomic.WriteFile(path, strings.NewReader(content))
	if err != nil && !existed {
		_ = os.Remove(path)
	}
	return err
}

// writeInPlace opens path for writing and closes it on every return path.
func writeInPlace(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	_, err = io.WriteString(f, content)
	return err
}
