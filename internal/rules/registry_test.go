package rules

import "testing"

func TestBuiltinRegistersArrowSpacing(t *testing.T) {
	reg := Builtin()
	names := reg.Names()
	if len(names) != 1 || names[0] != "arrow-spacing" {
		t.Fatalf("Names = %v", names)
	}
	meta, err := reg.Meta("arrow-spacing")
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if len(meta.Schema) != 2 || meta.URL == "" {
		t.Fatalf("unexpected meta %+v", meta)
	}
}
