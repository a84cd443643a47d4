package fdt

import (
	"github.com/joshuapare/fdtkit/internal/buf"
)

// ValueKind classifies a property value. The format carries no type tags,
// so classification is best-effort: ValueBytes is the guaranteed fallback
// and interpretation never fails.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueU32
	ValueU64
	ValueString
	ValueStringList
	ValueBytes
)

func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "empty"
	case ValueU32:
		return "u32"
	case ValueU64:
		return "u64"
	case ValueString:
		return "string"
	case ValueStringList:
		return "string-list"
	}
	return "bytes"
}

// Value is an interpreted property value. Exactly the fields implied by
// Kind are set; Raw always aliases the property's stored bytes. PhandleRef
// marks a 4-byte value whose property name conventionally carries a node
// reference (phandle, linux,phandle, interrupt-parent); it is advisory.
type Value struct {
	Kind       ValueKind
	U32        uint32
	U64        uint64
	Str        string
	Strs       []string
	Raw        []byte
	PhandleRef bool
}

// Interpret classifies raw structurally:
//
//   - empty value -> ValueEmpty
//   - printable NUL-terminated runs filling the buffer -> ValueString (one
//     run) or ValueStringList (several)
//   - exactly 4 bytes -> ValueU32
//   - exactly 8 bytes -> ValueU64
//   - anything else -> ValueBytes
//
// String sniffing is tried before the width checks on purpose: a 4-byte
// value like "foo\0" is ambiguous between a u32 and a string, and printable
// content plus a trailing NUL is far stronger evidence than width alone.
func Interpret(raw []byte) Value {
	v := Value{Raw: raw}
	switch {
	case len(raw) == 0:
		v.Kind = ValueEmpty
	case sniffStrings(raw, &v):
	case len(raw) == 4:
		v.Kind = ValueU32
		v.U32 = buf.U32BE(raw)
	case len(raw) == 8:
		v.Kind = ValueU64
		v.U64 = buf.U64BE(raw)
	default:
		v.Kind = ValueBytes
	}
	return v
}

// InterpretNamed classifies raw like Interpret but first consults the
// optional well-known property-name table, and flags phandle-reference
// candidates. Name-driven typing only applies when the raw bytes actually
// fit the declared shape; otherwise the structural result stands.
func InterpretNamed(name string, raw []byte) Value {
	if kind, ok := KnownType(name); ok {
		if v, ok := coerce(kind, raw); ok {
			v.PhandleRef = isPhandleRefName(name) && len(raw) == 4
			return v
		}
	}
	v := Interpret(raw)
	if isPhandleRefName(name) && len(raw) == 4 {
		// Reference-bearing names hold a numeric id even when the bytes
		// happen to sniff as text.
		v.Kind = ValueU32
		v.U32 = buf.U32BE(raw)
		v.Str, v.Strs = "", nil
		v.PhandleRef = true
	}
	return v
}

// coerce applies a declared kind to raw, reporting ok = false when the
// bytes do not fit that shape.
func coerce(kind ValueKind, raw []byte) (Value, bool) {
	v := Value{Kind: kind, Raw: raw}
	switch kind {
	case ValueEmpty:
		return v, len(raw) == 0
	case ValueU32:
		if len(raw) != 4 {
			return Value{}, false
		}
		v.U32 = buf.U32BE(raw)
		return v, true
	case ValueU64:
		if len(raw) != 8 {
			return Value{}, false
		}
		v.U64 = buf.U64BE(raw)
		return v, true
	case ValueString:
		s := Value{}
		if !sniffStrings(raw, &s) || s.Kind != ValueString {
			return Value{}, false
		}
		v.Str = s.Str
		return v, true
	case ValueStringList:
		s := Value{}
		if !sniffStrings(raw, &s) {
			return Value{}, false
		}
		v.Strs = s.Strs
		if s.Kind == ValueString {
			v.Strs = []string{s.Str}
		}
		return v, true
	case ValueBytes:
		return v, true
	}
	return Value{}, false
}

// sniffStrings reports whether raw is one or more printable NUL-terminated
// runs exactly filling the buffer, populating v on success. Empty runs
// (double NULs) disqualify the value; they indicate binary data.
func sniffStrings(raw []byte, v *Value) bool {
	if len(raw) == 0 || raw[len(raw)-1] != 0 {
		return false
	}
	var runs []string
	start := 0
	for i, b := range raw {
		if b == 0 {
			if i == start {
				return false
			}
			runs = append(runs, string(raw[start:i]))
			start = i + 1
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	if len(runs) == 1 {
		v.Kind = ValueString
		v.Str = runs[0]
	} else {
		v.Kind = ValueStringList
		v.Strs = runs
	}
	v.Raw = raw
	return true
}

// isPhandleRefName reports whether name conventionally carries a reference
// to another node.
func isPhandleRefName(name string) bool {
	switch name {
	case "phandle", "linux,phandle", "interrupt-parent":
		return true
	}
	return false
}
