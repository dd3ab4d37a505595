package clipboard

import (
	"errors"
	"testing"

	errs "bclip/internal/errors"
)

type fakeBackend struct {
	name      string
	available bool
	data      []byte
	readErr   error
	writeErr  error
	writes    int
}

func (f *fakeBackend) Name() string          { return f.name }
func (f *fakeBackend) Available() bool       { return f.available }
func (f *fakeBackend) Read() ([]byte, error) { return f.data, f.readErr }

func (f *fakeBackend) Write(data []byte) error {
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data = append([]byte(nil), data...)
	return nil
}

func TestSystem_FirstAvailableWins(t *testing.T) {
	a := &fakeBackend{name: "a"}
	b := &fakeBackend{name: "b", available: true}
	c := &fakeBackend{name: "c", available: true}
	s := &System{backends: []backend{a, b, c}}

	if err := s.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}
	if a.writes != 0 || b.writes != 1 || c.writes != 0 {
		t.Errorf("writes = %d/%d/%d, want 0/1/0", a.writes, b.writes, c.writes)
	}

	got, err := s.Read()
	if err != nil || string(got) != "hi" {
		t.Errorf("Read() = %q, %v", got, err)
	}
}

func TestSystem_NoBackend(t *testing.T) {
	s := &System{backends: []backend{&fakeBackend{name: "a"}}}

	if _, err := s.Read(); !errs.Is(err, errs.ErrUnavailable) {
		t.Errorf("Read err = %v, want ErrUnavailable", err)
	}
	if err := s.Write([]byte("x")); !errs.Is(err, errs.ErrUnavailable) {
		t.Errorf("Write err = %v, want ErrUnavailable", err)
	}
	if err := s.Clear(); !errs.Is(err, errs.ErrUnavailable) {
		t.Errorf("Clear err = %v, want ErrUnavailable", err)
	}
}

func TestSystem_Empty(t *testing.T) {
	s := &System{backends: []backend{&fakeBackend{name: "a", available: true}}}
	if _, err := s.Read(); !errs.Is(err, errs.ErrClipboardEmpty) {
		t.Errorf("err = %v, want ErrClipboardEmpty", err)
	}
}

func TestSystem_BackendErrors(t *testing.T) {
	boom := errors.New("xclip exited 1")
	f := &fakeBackend{name: "a", available: true, readErr: boom, writeErr: boom}
	s := &System{backends: []backend{f}}

	if _, err := s.Read(); !errs.Is(err, errs.ErrUnavailable) {
		t.Errorf("Read err = %v, want ErrUnavailable", err)
	}
	if err := s.Write([]byte("x")); !errs.Is(err, errs.ErrUnavailable) {
		t.Errorf("Write err = %v, want ErrUnavailable", err)
	}
}

func TestSystem_Clear(t *testing.T) {
	f := &fakeBackend{name: "a", available: true, data: []byte("old")}
	s := &System{backends: []backend{f}}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(f.data) != 0 {
		t.Errorf("data = %q, want empty", f.data)
	}
}

func TestNew_Order(t *testing.T) {
	s := New(nil)
	if len(s.backends) != 2 {
		t.Fatalf("backends = %d, want 2", len(s.backends))
	}
	names := map[string]bool{}
	for _, b := range s.backends {
		names[b.Name()] = true
	}
	if !names["command"] || !names["native"] {
		t.Errorf("unexpected backends %v", names)
	}
}
