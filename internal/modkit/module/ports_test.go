package module

import (
	"strings"
	"testing"
)

func TestPortsOfDirectAssert(t *testing.T) {
	m := fakeModule{name: "direct", ports: fakeReader{v: "a"}}
	got, ok := PortsOf[readerPort](m)
	if !ok || got.Read() != "a" {
		t.Fatalf("direct assert failed: %v ok=%v", got, ok)
	}
}

func TestPortsOfStructFieldWalk(t *testing.T) {
	type bundle struct {
		Writer writerPort
		Reader readerPort
	}
	m := fakeModule{name: "walk", ports: bundle{
		Writer: fakeWriter{},
		Reader: fakeReader{v: "b"},
	}}

	r, ok := PortsOf[readerPort](m)
	if !ok || r.Read() != "b" {
		t.Fatalf("field walk for reader failed: %v ok=%v", r, ok)
	}
	if _, ok := PortsOf[writerPort](m); !ok {
		t.Fatalf("field walk for writer failed")
	}
}

func TestPortsOfUnexportedFieldsSkipped(t *testing.T) {
	type hidden struct {
		reader readerPort
	}
	m := fakeModule{name: "hidden", ports: hidden{reader: fakeReader{v: "x"}}}
	if _, ok := PortsOf[readerPort](m); ok {
		t.Fatalf("unexported fields should not be walked")
	}
}

func TestPortsOfNilPorts(t *testing.T) {
	m := fakeModule{name: "empty", ports: nil}
	if _, ok := PortsOf[readerPort](m); ok {
		t.Fatalf("nil ports should never match")
	}
}

func TestMustPortsOf(t *testing.T) {
	m := fakeModule{name: "ok", ports: fakeReader{v: "c"}}
	if got := MustPortsOf[readerPort](m); got.Read() != "c" {
		t.Fatalf("MustPortsOf value mismatch")
	}

	bad := fakeModule{name: "decisions", ports: nil}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("MustPortsOf should panic when the port is missing")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "decisions") {
			t.Fatalf("panic should name the module, got %q", msg)
		}
	}()
	_ = MustPortsOf[readerPort](bad)
}
