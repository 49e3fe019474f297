package core

import (
	"testing"
)

// TestObjectType tests the ObjectType String() method
func TestObjectType(t *testing.T) {
	tests := []struct {
		typ  ObjectType
		want string
	}{
		{ObjNull, "Null"},
		{ObjBool, "Bool"},
		{ObjInt, "Int"},
		{ObjReal, "Real"},
		{ObjString, "String"},
		{ObjName, "Name"},
		{ObjArray, "Array"},
		{ObjDict, "Dict"},
		{ObjStream, "Stream"},
		{ObjOperator, "Operator"},
		{ObjectType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("ObjectType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestObjectStrings tests the textual form of each object type
func TestObjectStrings(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{"null", Null{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(-42), "-42"},
		{"real", Real(1.5), "1.5"},
		{"string", String("abc"), "abc"},
		{"name", Name("ID"), "/ID"},
		{"operator", Operator("ID"), "ID"},
		{"array", Array{Int(1), Name("G")}, "[1 /G]"},
		{"dict sorted", Dict{"W": Int(2), "BitsPerComponent": Int(8)}, "<</BitsPerComponent 8 /W 2>>"},
		{"stream", &Stream{Dict: Dict{}, Data: []byte{1, 2}}, "stream <<>> (2 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obj.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestOperatorVersusName tests that an operator and a name of the same
// spelling are distinguishable by their textual form
func TestOperatorVersusName(t *testing.T) {
	if Operator("EI").String() == Name("EI").String() {
		t.Error("operator and name should render differently")
	}
	if Operator("EI").Type() != ObjOperator {
		t.Errorf("Operator.Type() = %v", Operator("EI").Type())
	}
}

// TestArrayGetters tests bounds-checked array access
func TestArrayGetters(t *testing.T) {
	arr := Array{Name("Indexed"), Int(1)}

	if arr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", arr.Len())
	}
	if arr.Get(-1) != nil || arr.Get(2) != nil {
		t.Error("out of range Get should return nil")
	}
	if n, ok := arr.GetName(0); !ok || n != "Indexed" {
		t.Errorf("GetName(0) = %v, %v", n, ok)
	}
	if _, ok := arr.GetName(1); ok {
		t.Error("GetName(1) should fail for an Int")
	}
}

// TestDictGetters tests typed dictionary access
func TestDictGetters(t *testing.T) {
	d := Dict{
		"Width":       Int(10),
		"Height":      Real(4.9),
		"ColorSpace":  Name("DeviceRGB"),
		"Decode":      Array{Int(1), Int(0)},
		"DecodeParms": Dict{"K": Int(-1)},
		"ImageMask":   Bool(true),
	}

	if v, ok := d.GetInt("Width"); !ok || v != 10 {
		t.Errorf("GetInt(Width) = %v, %v", v, ok)
	}
	if _, ok := d.GetInt("Height"); ok {
		t.Error("GetInt(Height) should fail for a Real")
	}
	if v, ok := d.GetNumber("Height"); !ok || v != 4 {
		t.Errorf("GetNumber(Height) = %v, %v", v, ok)
	}
	if v, ok := d.GetNumber("Width"); !ok || v != 10 {
		t.Errorf("GetNumber(Width) = %v, %v", v, ok)
	}
	if _, ok := d.GetNumber("ColorSpace"); ok {
		t.Error("GetNumber(ColorSpace) should fail")
	}
	if v, ok := d.GetName("ColorSpace"); !ok || v != "DeviceRGB" {
		t.Errorf("GetName(ColorSpace) = %v, %v", v, ok)
	}
	if v, ok := d.GetArray("Decode"); !ok || len(v) != 2 {
		t.Errorf("GetArray(Decode) = %v, %v", v, ok)
	}
	if v, ok := d.GetDict("DecodeParms"); !ok || !v.Has("K") {
		t.Errorf("GetDict(DecodeParms) = %v, %v", v, ok)
	}
	if v, ok := d.GetBool("ImageMask"); !ok || !bool(v) {
		t.Errorf("GetBool(ImageMask) = %v, %v", v, ok)
	}
	if d.Has("Missing") {
		t.Error("Has(Missing) should be false")
	}

	d.Set("Missing", Null{})
	if !d.Has("Missing") {
		t.Error("Set did not store the value")
	}

	keys := d.Keys()
	if len(keys) != 7 || keys[0] != "ColorSpace" {
		t.Errorf("Keys() = %v", keys)
	}
}
