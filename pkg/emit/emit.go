// Package emit writes serialized footprints to their destinations.
//
// A [Sink] receives one named document at a time. [Dir] writes each document
// to its own file; [Stream] writes documents back to back to a single
// writer, which is how the connector footprint goes to standard output.
//
// Every file write is scoped: the file is closed on all paths and a failing
// Close is reported like a failing Write. Failures carry the
// errors.ErrCodeIO code and the destination path.
package emit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/observability"
)

// Sink receives serialized documents.
type Sink interface {
	// Emit writes data under name. Implementations must be safe for
	// concurrent use.
	Emit(ctx context.Context, name string, data []byte) error
}

// Dir writes each document to <Path>/<name>.
type Dir struct {
	Path string
}

// NewDir returns a Dir sink, creating path if needed.
func NewDir(path string) (*Dir, error) {
	if path == "" {
		path = "."
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", path)
	}
	return &Dir{Path: path}, nil
}

// Emit writes data to the file name inside d.
func (d *Dir) Emit(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := errors.ValidateFootprintName(trimExt(name)); err != nil {
		return err
	}
	path := filepath.Join(d.Path, name)
	err := WriteFile(path, data)
	observability.Emit().OnEmit(ctx, path, len(data), err)
	return err
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// Stream writes every document to W in call order.
type Stream struct {
	W  io.Writer
	mu sync.Mutex
}

// NewStream returns a Stream sink on w.
func NewStream(w io.Writer) *Stream {
	return &Stream{W: w}
}

// Emit writes data to the stream; name is only used in error messages.
func (s *Stream) Emit(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.W.Write(data); err != nil {
		err = errors.Wrap(errors.ErrCodeIO, err, "write %s", name)
		observability.Emit().OnEmit(ctx, "stream", len(data), err)
		return err
	}
	observability.Emit().OnEmit(ctx, "stream", len(data), nil)
	return nil
}

// WriteFile creates path and writes data to it. The file is closed before
// WriteFile returns, and a Close error is returned if the write succeeded.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if n != len(data) {
		return errors.Wrap(errors.ErrCodeIO, io.ErrShortWrite, "write %s: %d of %d bytes", path, n, len(data))
	}
	return nil
}

// OpenOutput returns a writer for path, or stdout when path is empty or
// "-". The returned close function is a no-op for stdout.
func OpenOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	return f, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		return nil
	}, nil
}

var (
	_ Sink = (*Dir)(nil)
	_ Sink = (*Stream)(nil)
)
