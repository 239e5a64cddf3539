package recording

import (
	"slices"
	"testing"

	"github.com/gogpu/stateautomaton/graphic"
)

// mockBackend records what a playback sent to it.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int

	strokes []Stroke
	fills   []graphic.Color
	texts   []TextRun
	clears  []Rect
	paths   []*Path
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) StrokePath(p *Path, s Stroke) {
	b.paths = append(b.paths, p)
	b.strokes = append(b.strokes, s)
}

func (b *mockBackend) FillPath(p *Path, c graphic.Color) {
	b.paths = append(b.paths, p)
	b.fills = append(b.fills, c)
}

func (b *mockBackend) FillText(run TextRun) { b.texts = append(b.texts, run) }
func (b *mockBackend) ClearRect(r Rect)     { b.clears = append(b.clears, r) }

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	formats = make(map[string]Format)
}

func mockFormat(name, ext string) Format {
	return Format{Name: name, Extension: ext, New: func() Backend { return newMockBackend(name) }}
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(mockFormat("test", "tst"))

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatalf("NewBackend returned %T, want *mockBackend", backend)
	}
	if mock.name != "test" {
		t.Errorf("name = %q, want %q", mock.name, "test")
	}

	// Each call yields a fresh instance.
	other, _ := NewBackend("test")
	if other == backend {
		t.Error("NewBackend returned the same instance twice")
	}

	f, ok := Lookup("test")
	if !ok || f.Extension != "tst" {
		t.Errorf("Lookup(test) = %+v, %v", f, ok)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := NewBackend("nope"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{"empty name", func() { Register(mockFormat("", "x")) }},
		{"nil factory", func() { Register(Format{Name: "nil"}) }},
		{"duplicate name", func() {
			Register(mockFormat("dup", "a"))
			Register(mockFormat("dup", "b"))
		}},
		{"duplicate extension", func() {
			Register(mockFormat("one", "png"))
			Register(mockFormat("two", ".PNG"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRegistry()
			defer resetRegistry()
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.setup()
		})
	}
}

func TestFormatFor(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(mockFormat("raster", ".png"))
	Register(mockFormat("svg", "svg"))
	Register(mockFormat("memory", ""))

	tests := []struct {
		path string
		want string
	}{
		{"out/automaton.png", "raster"},
		{"AUTOMATON.SVG", "svg"},
		{"automaton.html", ""},
		{"automaton", ""},
	}
	for _, tt := range tests {
		f, ok := FormatFor(tt.path)
		if ok != (tt.want != "") || f.Name != tt.want {
			t.Errorf("FormatFor(%q) = %q, %v, want %q", tt.path, f.Name, ok, tt.want)
		}
	}
}

func TestBackends(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "raster", "html"} {
		Register(mockFormat(name, name))
	}
	if got, want := Backends(), []string{"html", "raster", "svg"}; !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup found an unregistered backend")
	}
	if _, ok := FormatFor("a.missing"); ok {
		t.Error("FormatFor found an unregistered backend")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	done := make(chan bool)
	go func() {
		for i := 0; i < 100; i++ {
			name := "concurrent" + string(rune('A'+i%26)) + string(rune('0'+i/26))
			Register(mockFormat(name, ""))
		}
		done <- true
	}()
	go func() {
		for i := 0; i < 100; i++ {
			_ = Backends()
			_, _ = FormatFor("x.png")
		}
		done <- true
	}()
	<-done
	<-done

	if n := len(Backends()); n != 100 {
		t.Errorf("len(Backends()) = %d, want 100", n)
	}
}
