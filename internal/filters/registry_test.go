package filters

import (
	"bytes"
	"errors"
	"testing"
)

// TestDefaultRegistry tests that every supported filter is registered
func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	for _, name := range []string{
		"FlateDecode", "LZWDecode", "ASCIIHexDecode", "ASCII85Decode",
		"RunLengthDecode", "CCITTFaxDecode", "DCTDecode", "JPXDecode",
	} {
		if reg[name] == nil {
			t.Errorf("filter %s not registered", name)
		}
	}
	if _, ok := reg["JBIG2Decode"]; ok {
		t.Error("JBIG2Decode should not be registered by default")
	}
}

// TestRegistryWith tests that overrides replace handlers without mutating the base
func TestRegistryWith(t *testing.T) {
	errFail := errors.New("fail")
	base := DefaultRegistry()
	merged := base.With(Registry{
		"FlateDecode": func([]byte, Params) ([]byte, error) { return nil, errFail },
		"JBIG2Decode": Passthrough,
	})

	if _, err := merged["FlateDecode"](nil, nil); !errors.Is(err, errFail) {
		t.Errorf("override not applied, got err %v", err)
	}
	if merged["JBIG2Decode"] == nil {
		t.Error("new entry not added")
	}
	if _, ok := base["JBIG2Decode"]; ok {
		t.Error("base registry was modified")
	}
	if _, err := base["FlateDecode"](zlibCompress([]byte("x")), nil); err != nil {
		t.Errorf("base FlateDecode changed: %v", err)
	}
}

// TestPassthrough tests the no-op handler
func TestPassthrough(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0x00}
	got, err := Passthrough(data, Params{"Columns": 1})
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("Passthrough = %v, %v", got, err)
	}
}
