package main

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/loxlang/golox/lox"
)

// Snapshot format: canonical CBOR for deterministic bytes. Scalars persist
// verbatim; instances persist as class name plus field table and are
// re-attached to the registered class at load. Callables and classes are
// host closures and are skipped.

const (
	snapshotMagic   = "GLOX"
	snapshotVersion = 1
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("golox: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type snapshotFile struct {
	Magic   string                   `cbor:"magic"`
	Version uint32                   `cbor:"version"`
	Vars    map[string]snapshotValue `cbor:"vars"`
}

type snapshotValue struct {
	Kind   string                   `cbor:"kind"`
	Number float64                  `cbor:"number,omitempty"`
	Text   string                   `cbor:"text,omitempty"`
	Bool   bool                     `cbor:"bool,omitempty"`
	Class  string                   `cbor:"class,omitempty"`
	Fields map[string]snapshotValue `cbor:"fields,omitempty"`
}

// MarshalSnapshot serializes the snapshottable subset of vars.
func MarshalSnapshot(vars map[string]lox.Value) ([]byte, error) {
	file := snapshotFile{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Vars:    make(map[string]snapshotValue),
	}
	for name, val := range vars {
		sv, ok, err := encodeValue(val)
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", name, err)
		}
		if ok {
			file.Vars[name] = sv
		}
	}
	return cborEncMode.Marshal(&file)
}

// UnmarshalSnapshot decodes snapshot bytes, resolving instance classes
// through the given registry.
func UnmarshalSnapshot(data []byte, classes map[string]*lox.Class) (map[string]lox.Value, error) {
	var file snapshotFile
	if err := cbor.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if file.Magic != snapshotMagic {
		return nil, fmt.Errorf("not a golox snapshot (magic %q)", file.Magic)
	}
	if file.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", file.Version)
	}
	vars := make(map[string]lox.Value, len(file.Vars))
	for name, sv := range file.Vars {
		val, err := decodeValue(sv, classes)
		if err != nil {
			return nil, fmt.Errorf("restore %q: %w", name, err)
		}
		vars[name] = val
	}
	return vars, nil
}

func encodeValue(val lox.Value) (snapshotValue, bool, error) {
	switch val.Kind() {
	case lox.KindNil:
		return snapshotValue{Kind: "nil"}, true, nil
	case lox.KindNumber:
		return snapshotValue{Kind: "number", Number: val.Number()}, true, nil
	case lox.KindText:
		return snapshotValue{Kind: "text", Text: val.Text()}, true, nil
	case lox.KindBool:
		return snapshotValue{Kind: "bool", Bool: val.Bool()}, true, nil
	case lox.KindInstance:
		inst := val.Instance()
		fields := make(map[string]snapshotValue, len(inst.Fields))
		for name, field := range inst.Fields {
			sv, ok, err := encodeValue(field)
			if err != nil {
				return snapshotValue{}, false, err
			}
			if ok {
				fields[name] = sv
			}
		}
		return snapshotValue{Kind: "instance", Class: inst.Class.Name, Fields: fields}, true, nil
	default:
		// Callables and classes hold host closures; not snapshottable.
		return snapshotValue{}, false, nil
	}
}

func decodeValue(sv snapshotValue, classes map[string]*lox.Class) (lox.Value, error) {
	switch sv.Kind {
	case "nil":
		return lox.NewNil(), nil
	case "number":
		return lox.NewNumber(sv.Number), nil
	case "text":
		return lox.NewText(sv.Text), nil
	case "bool":
		return lox.NewBool(sv.Bool), nil
	case "instance":
		cls, ok := classes[sv.Class]
		if !ok {
			return lox.NewNil(), fmt.Errorf("unknown class %q", sv.Class)
		}
		inst := &lox.Instance{Class: cls, Fields: make(map[string]lox.Value, len(sv.Fields))}
		for name, field := range sv.Fields {
			val, err := decodeValue(field, classes)
			if err != nil {
				return lox.NewNil(), err
			}
			inst.Fields[name] = val
		}
		return lox.NewInstance(inst), nil
	default:
		return lox.NewNil(), fmt.Errorf("unknown snapshot kind %q", sv.Kind)
	}
}

func (s *Session) SaveSnapshot(path string) error {
	data, err := MarshalSnapshot(s.vars)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSnapshot merges the snapshot's variables over the current table;
// registered classes and natives stay in place.
func (s *Session) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	vars, err := UnmarshalSnapshot(data, s.classes)
	if err != nil {
		return err
	}
	for name, val := range vars {
		s.vars[name] = val
	}
	return nil
}
