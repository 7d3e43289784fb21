package editor

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrNoFileName reports a save attempt on a buffer with no associated
// path. Surfaced to the user as a status message, never fatal.
var ErrNoFileName = errors.New("editor: buffer has no file name")

// FileStore is the filesystem collaborator. The session never opens
// files itself; tests substitute an in-memory store.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, text string) (int, error)
}

type osFileStore struct{}

func (osFileStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", path)
	}
	return string(data), nil
}

func (osFileStore) WriteText(path, text string) (int, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}
	n, err := f.WriteString(text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
