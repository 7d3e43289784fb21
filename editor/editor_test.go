package editor

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/jankowiakdawid/pound/buffer"
	"github.com/jankowiakdawid/pound/config"
)

type fakeFileStore struct {
	files    map[string]string
	writes   int
	writeErr error
}

func (f *fakeFileStore) ReadText(path string) (string, error) {
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("not found")
	}
	return text, nil
}

func (f *fakeFileStore) WriteText(path, text string) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes++
	f.files[path] = text
	return len(text), nil
}

func newTestEditor(text string) (*Editor, *fakeFileStore) {
	fs := &fakeFileStore{files: map[string]string{}}
	e := New(config.Default())
	e.files = fs
	if text != "" {
		e.buf.Load(text)
	}
	e.view.Rows = 24
	e.view.Cols = 80
	return e, fs
}

func mustApply(t *testing.T, e *Editor, keys ...Key) {
	t.Helper()
	for _, k := range keys {
		if err := e.applyKey(k); err != nil {
			t.Fatalf("applyKey(%+v) failed: %v", k, err)
		}
	}
}

func TestInsertIntoEmptyBuffer(t *testing.T) {
	e, _ := newTestEditor("")
	mustApply(t, e, Key{Code: keyRune, Rune: 'x'})

	if got := e.buf.Contents(); got != "x" {
		t.Fatalf("buffer = %q, want %q", got, "x")
	}
	if e.dirty != 1 {
		t.Fatalf("dirty = %d, want 1", e.dirty)
	}
	want := buffer.Cursor{Line: 0, Col: 1}
	if !e.view.Cursor.Equal(want) {
		t.Fatalf("cursor = %+v, want %+v", e.view.Cursor, want)
	}
}

func TestBackspaceAtRowStartJoinsWithPreviousRow(t *testing.T) {
	e, _ := newTestEditor("ab\ncd")
	e.view.Cursor = buffer.Cursor{Line: 1, Col: 0}
	mustApply(t, e, Key{Code: keyBackspace})

	if got := e.buf.Contents(); got != "abcd" {
		t.Fatalf("buffer = %q, want %q", got, "abcd")
	}
	want := buffer.Cursor{Line: 0, Col: 2}
	if !e.view.Cursor.Equal(want) {
		t.Fatalf("cursor = %+v, want %+v", e.view.Cursor, want)
	}
	if e.dirty != 1 {
		t.Fatalf("dirty = %d, want 1", e.dirty)
	}
}

func TestBackspaceAtOriginIsNoOp(t *testing.T) {
	e, _ := newTestEditor("ab")
	mustApply(t, e, Key{Code: keyBackspace})
	if got := e.buf.Contents(); got != "ab" {
		t.Fatalf("buffer changed: %q", got)
	}
	if e.dirty != 0 {
		t.Fatalf("no-op backspace incremented dirty: %d", e.dirty)
	}
}

func TestDeleteAtRowEndJoinsNextRow(t *testing.T) {
	e, _ := newTestEditor("ab\ncd")
	e.view.Cursor = buffer.Cursor{Line: 0, Col: 2}
	mustApply(t, e, Key{Code: keyDelete})

	if got := e.buf.Contents(); got != "abcd" {
		t.Fatalf("buffer = %q, want %q", got, "abcd")
	}
	want := buffer.Cursor{Line: 0, Col: 2}
	if !e.view.Cursor.Equal(want) {
		t.Fatalf("cursor = %+v, want %+v", e.view.Cursor, want)
	}
}

func TestEnterSplitsRowAtCursor(t *testing.T) {
	e, _ := newTestEditor("abcd")
	e.view.Cursor = buffer.Cursor{Line: 0, Col: 2}
	mustApply(t, e, Key{Code: keyEnter})

	if got := e.buf.Contents(); got != "ab\ncd" {
		t.Fatalf("buffer = %q, want %q", got, "ab\ncd")
	}
	want := buffer.Cursor{Line: 1, Col: 0}
	if !e.view.Cursor.Equal(want) {
		t.Fatalf("cursor = %+v, want %+v", e.view.Cursor, want)
	}
}

func TestQuitIsImmediateWhenClean(t *testing.T) {
	e, _ := newTestEditor("ab")
	mustApply(t, e, Key{Code: keyQuit})
	if !e.quit {
		t.Fatalf("clean buffer should quit on first Ctrl-Q")
	}
}

func TestDirtyQuitTakesThreePresses(t *testing.T) {
	e, _ := newTestEditor("")
	mustApply(t, e, Key{Code: keyRune, Rune: 'x'})

	mustApply(t, e, Key{Code: keyQuit})
	if e.quit {
		t.Fatalf("quit honored on first press with unsaved changes")
	}
	if !strings.Contains(e.message(), "2 more times") {
		t.Fatalf("expected countdown warning after first press, got %q", e.message())
	}

	mustApply(t, e, Key{Code: keyQuit})
	if e.quit {
		t.Fatalf("quit honored on second press")
	}
	if !strings.Contains(e.message(), "1 more time") {
		t.Fatalf("expected countdown warning after second press, got %q", e.message())
	}

	mustApply(t, e, Key{Code: keyQuit})
	if !e.quit {
		t.Fatalf("quit not honored on third press")
	}
}

func TestAnyOtherKeyResetsQuitCountdown(t *testing.T) {
	e, _ := newTestEditor("")
	mustApply(t, e,
		Key{Code: keyRune, Rune: 'x'},
		Key{Code: keyQuit},
		Key{Code: keyQuit},
		Key{Code: keyNone}, // unbound key is still activity
		Key{Code: keyQuit},
		Key{Code: keyQuit},
	)
	if e.quit {
		t.Fatalf("countdown did not reset after intervening key")
	}
	mustApply(t, e, Key{Code: keyQuit})
	if !e.quit {
		t.Fatalf("expected quit after full countdown following reset")
	}
}

func TestSaveWithoutFileNameLeavesEverythingUnchanged(t *testing.T) {
	e, fs := newTestEditor("")
	mustApply(t, e, Key{Code: keyRune, Rune: 'x'})

	mustApply(t, e, Key{Code: keySave})
	if fs.writes != 0 {
		t.Fatalf("save without filename wrote %d files", fs.writes)
	}
	if e.dirty != 1 {
		t.Fatalf("dirty = %d after failed save, want 1", e.dirty)
	}
	if got := e.buf.Contents(); got != "x" {
		t.Fatalf("buffer changed by failed save: %q", got)
	}
	if !strings.Contains(e.message(), "no file name") {
		t.Fatalf("expected no-file-name message, got %q", e.message())
	}
}

func TestSaveWritesContentAndClearsDirty(t *testing.T) {
	e, fs := newTestEditor("hello")
	e.buf.Path = "/tmp/out.txt"
	mustApply(t, e, Key{Code: keyRune, Rune: '!'})

	mustApply(t, e, Key{Code: keySave})
	if got := fs.files["/tmp/out.txt"]; got != "!hello\n" {
		t.Fatalf("written content = %q, want %q", got, "!hello\n")
	}
	if e.dirty != 0 {
		t.Fatalf("dirty = %d after save, want 0", e.dirty)
	}
	if !strings.Contains(e.message(), "bytes written") {
		t.Fatalf("expected save confirmation, got %q", e.message())
	}
}

func TestSaveIoErrorSurfacesAsMessage(t *testing.T) {
	e, fs := newTestEditor("hello")
	e.buf.Path = "/tmp/out.txt"
	fs.writeErr = errors.New("disk full")
	mustApply(t, e, Key{Code: keyRune, Rune: '!'})

	mustApply(t, e, Key{Code: keySave})
	if e.dirty != 1 {
		t.Fatalf("dirty = %d after failed save, want 1", e.dirty)
	}
	if !strings.Contains(e.message(), "disk full") {
		t.Fatalf("expected I/O error message, got %q", e.message())
	}
}

func TestSavePreservesCRLF(t *testing.T) {
	e, fs := newTestEditor("one\r\ntwo\r\n")
	e.buf.Path = "/tmp/crlf.txt"
	mustApply(t, e, Key{Code: keySave})
	if got := fs.files["/tmp/crlf.txt"]; got != "one\r\ntwo\r\n" {
		t.Fatalf("CRLF not preserved on save: %q", got)
	}
}

func TestMessageExpiresLazily(t *testing.T) {
	e, _ := newTestEditor("")
	e.setMessage("hello there")
	if e.message() != "hello there" {
		t.Fatalf("fresh message not returned")
	}
	e.statusTime = time.Now().Add(-e.cfg.MessageTimeout() - time.Second)
	if got := e.message(); got != "" {
		t.Fatalf("expired message still visible: %q", got)
	}
	if e.statusMsg != "" {
		t.Fatalf("expired message not cleared on read")
	}
}

func TestCutLineCopiesAndRemovesRow(t *testing.T) {
	e, _ := newTestEditor("one\ntwo\nthree")
	e.view.Cursor = buffer.Cursor{Line: 1, Col: 2}
	mustApply(t, e, Key{Code: keyCutLine})

	if got := e.buf.Contents(); got != "one\nthree" {
		t.Fatalf("buffer after cut = %q", got)
	}
	if e.dirty != 1 {
		t.Fatalf("dirty = %d after cut, want 1", e.dirty)
	}
	checkCursorInvariant(t, &e.view, e.buf)
}

func TestExternalChangeSetsFlagAndWarning(t *testing.T) {
	e, _ := newTestEditor("data")
	e.buf.Path = "/tmp/watched.txt"
	e.noteExternalChange()
	if !e.buf.ExternallyModified {
		t.Fatalf("external change flag not set")
	}
	if !strings.Contains(e.message(), "changed on disk") {
		t.Fatalf("expected disk-change warning, got %q", e.message())
	}
}

func TestExternalChangeIgnoredRightAfterOwnSave(t *testing.T) {
	e, _ := newTestEditor("data")
	e.buf.Path = "/tmp/watched.txt"
	mustApply(t, e, Key{Code: keySave})
	e.noteExternalChange()
	if e.buf.ExternallyModified {
		t.Fatalf("own save echoed back as external change")
	}
}

func TestOpenMissingFileStartsNamedEmptyBuffer(t *testing.T) {
	e := New(config.Default())
	e.files = missingFileStore{}
	if err := e.Open("/tmp/new.txt"); err != nil {
		t.Fatalf("open of missing file should not fail: %v", err)
	}
	if e.buf.Path != "/tmp/new.txt" || e.buf.RowCount() != 0 {
		t.Fatalf("unexpected buffer state: path=%q rows=%d", e.buf.Path, e.buf.RowCount())
	}
}

func TestOpenLoadsExistingFile(t *testing.T) {
	e, fs := newTestEditor("")
	fs.files["/tmp/a.txt"] = "hello\nworld\n"
	if err := e.Open("/tmp/a.txt"); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if e.buf.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", e.buf.RowCount())
	}
	if e.buf.Path != "/tmp/a.txt" {
		t.Fatalf("path = %q", e.buf.Path)
	}
}

type missingFileStore struct{}

func (missingFileStore) ReadText(path string) (string, error) {
	return "", fs.ErrNotExist
}

func (missingFileStore) WriteText(path, text string) (int, error) {
	return len(text), nil
}
