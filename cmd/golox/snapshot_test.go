package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loxlang/golox/lox"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let n 1.5")
	mustExecute(t, s, `let msg "hi"`)
	mustExecute(t, s, "let flag true")
	mustExecute(t, s, "let nothing nil")
	mustExecute(t, s, "let p new Point 3 4")

	data, err := MarshalSnapshot(s.vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored, err := UnmarshalSnapshot(data, s.classes)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for name, want := range map[string]lox.Value{
		"n":       lox.NewNumber(1.5),
		"msg":     lox.NewText("hi"),
		"flag":    lox.NewBool(true),
		"nothing": lox.NewNil(),
	} {
		got, ok := restored[name]
		if !ok {
			t.Fatalf("%s missing from snapshot", name)
		}
		if !got.Equal(want) {
			t.Fatalf("%s = %v, want %v", name, got, want)
		}
	}

	p, ok := restored["p"]
	if !ok || p.Kind() != lox.KindInstance {
		t.Fatalf("p not restored as instance: %v", p)
	}
	inst := p.Instance()
	if inst.Class.Name != "Point" {
		t.Fatalf("p class = %q", inst.Class.Name)
	}
	x, err := inst.Get("x")
	if err != nil {
		t.Fatalf("Get x: %v", err)
	}
	if !x.Equal(lox.NewNumber(3)) {
		t.Fatalf("x = %v", x)
	}
	// Methods re-attach through the registered class.
	got, err := lox.CallMethod(inst, "length", nil)
	if err != nil {
		t.Fatalf("length on restored instance: %v", err)
	}
	if !got.Equal(lox.NewNumber(5)) {
		t.Fatalf("length = %v", got)
	}
}

func TestSnapshotSkipsCallables(t *testing.T) {
	s, _ := newTestSession(t)
	data, err := MarshalSnapshot(s.vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored, err := UnmarshalSnapshot(data, s.classes)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := restored["clock"]; ok {
		t.Fatalf("natives must not be snapshotted")
	}
	if _, ok := restored["Point"]; ok {
		t.Fatalf("classes must not be snapshotted")
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let a 1")
	mustExecute(t, s, "let b 2")
	mustExecute(t, s, "let p new Point 1 2")

	first, err := MarshalSnapshot(s.vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := MarshalSnapshot(s.vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("canonical encoding should be deterministic")
	}
}

func TestSnapshotUnknownClass(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let p new Point 1 2")
	data, err := MarshalSnapshot(s.vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	_, err = UnmarshalSnapshot(data, map[string]*lox.Class{})
	if err == nil || !strings.Contains(err.Error(), "unknown class") {
		t.Fatalf("want unknown class error, got %v", err)
	}
}

func TestSnapshotRejectsForeignBytes(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := UnmarshalSnapshot([]byte("not cbor at all"), s.classes); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestSaveAndLoadThroughFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.glox")

	s, _ := newTestSession(t)
	mustExecute(t, s, "let count 3")
	mustExecute(t, s, `let g new Greeter "Grace"`)
	mustExecute(t, s, "save "+path)

	fresh, _ := newTestSession(t)
	mustExecute(t, fresh, "load "+path)
	if got := mustExecute(t, fresh, "count"); got != "3" {
		t.Fatalf("count = %q", got)
	}
	if got := mustExecute(t, fresh, "call g sayHello"); got != "Hello, Grace!" {
		t.Fatalf("sayHello = %q", got)
	}
}
