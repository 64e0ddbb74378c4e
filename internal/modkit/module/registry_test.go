package module

import (
	"testing"

	phttp "hyperflow/internal/platform/net/http"
)

type readerPort interface{ Read() string }
type writerPort interface{ Write(string) }

type fakeReader struct{ v string }

func (f fakeReader) Read() string { return f.v }

type fakeWriter struct{}

func (fakeWriter) Write(string) {}

// fakeModule is a minimal Module for registry and ports tests
type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	type bundle struct{ Reader readerPort }
	Register("inbox", bundle{Reader: fakeReader{v: "x"}})

	got, ok := PortsAs[bundle]("inbox")
	if !ok {
		t.Fatalf("PortsAs should find registered bundle")
	}
	if got.Reader.Read() != "x" {
		t.Fatalf("bundle round-trip mismatch")
	}

	// unknown name
	if _, ok := PortsAs[bundle]("nope"); ok {
		t.Fatalf("PortsAs should miss unknown name")
	}

	// wrong type assert
	if _, ok := PortsAs[string]("inbox"); ok {
		t.Fatalf("PortsAs should fail on wrong type")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("m", 1)
	Register("m", 2)
	got, ok := PortsAs[int]("m")
	if !ok || got != 2 {
		t.Fatalf("Register should overwrite: got %d ok=%v", got, ok)
	}
}

func TestReset(t *testing.T) {
	Register("gone", 1)
	Reset()
	if _, ok := PortsAs[int]("gone"); ok {
		t.Fatalf("Reset should clear the registry")
	}
}
