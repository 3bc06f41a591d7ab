package version

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// IsFresh reports whether a file whose current content is existing (and
// which exists at all only if exists is true) already holds content.
func IsFresh(existing []byte, exists bool, content []byte) bool {
	return exists && bytes.Equal(existing, content)
}

// Sync makes the file at path hold exactly content and reports whether it
// had to write. A file that is already fresh is left untouched, preserving
// its modification time.
//
// A file that does not exist is created; any other failure to read it is
// returned as [ErrIO], as are failures to create or write it.
func Sync(path string, content []byte) (wrote bool, err error) {
	existing, exists, err := readExisting(path)
	if err != nil {
		return false, ErrIO.With(slog.String("path", path)).Wrap(err)
	}

	if IsFresh(existing, exists, content) {
		return false, nil
	}

	if err := writeFile(path, content); err != nil {
		return false, ErrIO.With(slog.String("path", path)).Wrap(err)
	}

	return true, nil
}

// readExisting returns the content of path, or exists=false if there is no
// such file.
func readExisting(path string) (content []byte, exists bool, err error) {
	content, err = os.ReadFile(path)

	switch {
	case err == nil:
		return content, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// writeFile truncates path and writes content through a buffered writer.
// The content is complete in memory before the file is opened.
func writeFile(path string, content []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)

	if _, err = w.Write(content); err != nil {
		return err
	}

	return w.Flush()
}
