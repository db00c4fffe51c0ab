// Package files writes files so that a crash or a mid-write error never
// leaves a truncated result behind. Output lands in a temporary sibling and
// is renamed over the destination only on a clean Close.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultMode is used for new files; an existing destination keeps its mode.
const defaultMode fs.FileMode = 0o644

// Writer writes one file atomically. Write as usual, then either Close to
// publish or Cleanup to discard. Cleanup after a successful Close is a
// no-op, so both can be deferred.
type Writer struct {
	dst     string
	tmp     *os.File
	tmpName string
	err     error
}

// NewWriter starts an atomic write of dst. Creation errors surface on the
// first Write or Close.
func NewWriter(dst string) *Writer {
	w := &Writer{dst: dst}
	dir, base := filepath.Dir(dst), filepath.Base(dst)
	w.tmp, w.err = os.CreateTemp(dir, base+".tmp*")
	if w.err != nil {
		return w
	}
	w.tmpName = w.tmp.Name()

	// CreateTemp makes 0600 files. Carry over the destination's mode so
	// replacing a checked-in file does not flip its permissions.
	mode := defaultMode
	if info, err := os.Stat(dst); err == nil {
		mode = info.Mode().Perm()
	}
	if err := w.tmp.Chmod(mode); err != nil {
		w.err = err
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.tmp == nil {
		return 0, fmt.Errorf("file %s already closed or cleaned up", w.dst)
	}
	n, err := w.tmp.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Close publishes the pending content as dst. On any failure the temporary
// file is removed and dst is left as it was.
func (w *Writer) Close() error {
	if w.err != nil {
		w.discard()
		return w.err
	}
	if w.tmp == nil {
		return fmt.Errorf("file %s already closed or cleaned up", w.dst)
	}
	err := w.tmp.Close()
	w.tmp = nil
	if err != nil {
		_ = os.Remove(w.tmpName)
		return err
	}
	if err := os.Rename(w.tmpName, w.dst); err != nil {
		_ = os.Remove(w.tmpName)
		return err
	}
	return nil
}

// Cleanup discards pending content that was never closed.
func (w *Writer) Cleanup() {
	w.discard()
}

func (w *Writer) discard() {
	if w.tmp == nil {
		return
	}
	_ = w.tmp.Close()
	w.tmp = nil
	_ = os.Remove(w.tmpName)
}
