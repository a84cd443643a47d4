package fdt

// wellKnownTypes maps standard property names to their specified value
// kinds. The table is consulted only by InterpretNamed, never by the core
// parser: typing stays advisory, and unknown names fall back to structural
// classification.
var wellKnownTypes = map[string]ValueKind{
	"#address-cells":     ValueU32,
	"#size-cells":        ValueU32,
	"#interrupt-cells":   ValueU32,
	"phandle":            ValueU32,
	"linux,phandle":      ValueU32,
	"virtual-reg":        ValueU32,
	"clock-frequency":    ValueU32,
	"timebase-frequency": ValueU32,
	"compatible":         ValueStringList,
	"model":              ValueString,
	"status":             ValueString,
	"name":               ValueString,
	"device_type":        ValueString,
	"bootargs":           ValueString,
	"stdout-path":        ValueString,
	"stdin-path":         ValueString,
	"dma-coherent":       ValueEmpty,
	"local-mac-address":  ValueBytes,
	"mac-address":        ValueBytes,
}

// KnownType returns the specified value kind for a standard property name,
// with ok = false for names outside the table.
func KnownType(name string) (ValueKind, bool) {
	k, ok := wellKnownTypes[name]
	return k, ok
}
