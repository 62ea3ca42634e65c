package export

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// Sink persists an encoded image and reports where it went.
type Sink interface {
	Save(name string, data []byte) (fyne.URI, error)
}

// DirSink writes images into a directory, creating it when missing.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(name string, data []byte) (fyne.URI, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.Dir, err)
	}
	u, err := storage.Child(storage.NewFileURI(s.Dir), name)
	if err != nil {
		return nil, err
	}
	return u, WriteURI(u, data)
}

// WriteURI writes data to u through the Fyne storage repository.
func WriteURI(u fyne.URI, data []byte) error {
	w, err := storage.Writer(u)
	if err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return writeAndClose(w, data)
}

func writeAndClose(w fyne.URIWriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", w.URI(), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.URI(), err)
	}
	return nil
}

// SaveTo writes data to an already opened writer, such as one returned by
// a save dialog, and closes it.
func SaveTo(w fyne.URIWriteCloser, data []byte) error {
	return writeAndClose(w, data)
}
