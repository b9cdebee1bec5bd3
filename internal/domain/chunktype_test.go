package domain

import "testing"

func TestParseChunkType_Valid(t *testing.T) {
	cases := []string{"RuSt", "ruSt", "IHDR", "IEND", "tEXt", "zzZz"}
	for _, in := range cases {
		ct, err := ParseChunkType(in)
		if err != nil {
			t.Errorf("ParseChunkType(%q) returned error: %v", in, err)
			continue
		}
		if ct.String() != in {
			t.Errorf("ParseChunkType(%q).String() = %q", in, ct.String())
		}
	}
}

func TestParseChunkType_RejectsWrongLength(t *testing.T) {
	cases := []string{"", "AB", "RuS", "RuStX"}
	for _, in := range cases {
		_, err := ParseChunkType(in)
		if err == nil {
			t.Errorf("ParseChunkType(%q) should fail", in)
			continue
		}
		if !IsKind(err, KindTypeLength) {
			t.Errorf("ParseChunkType(%q): expected %s, got %v", in, KindTypeLength, err)
		}
	}
}

func TestParseChunkType_RejectsNonLetters(t *testing.T) {
	cases := []string{"Ru5t", "Ru t", "Ru;t", "R\x00St"}
	for _, in := range cases {
		_, err := ParseChunkType(in)
		if err == nil {
			t.Errorf("ParseChunkType(%q) should fail", in)
			continue
		}
		if !IsKind(err, KindTypeChars) {
			t.Errorf("ParseChunkType(%q): expected %s, got %v", in, KindTypeChars, err)
		}
	}
}

func TestChunkTypeFromBytes_StoresVerbatim(t *testing.T) {
	ct := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	if ct.String() != "RuSt" {
		t.Fatalf("expected RuSt, got %q", ct.String())
	}

	// Non-letter bytes are stored too; validity is a separate query.
	raw := ChunkTypeFromBytes([4]byte{0x00, 0xFF, '5', ' '})
	if raw.IsValid() {
		t.Fatal("expected non-letter type to be invalid")
	}
}

func TestChunkTypeProperties(t *testing.T) {
	cases := []struct {
		typ        string
		critical   bool
		public     bool
		reservedOK bool
		safeToCopy bool
	}{
		{"RuSt", true, false, true, true},
		{"ruSt", false, false, true, true},
		{"RUSt", true, true, true, true},
		{"Rust", true, false, false, true},
		{"RuST", true, false, true, false},
		{"IHDR", true, true, true, false},
	}
	for _, c := range cases {
		ct, err := ParseChunkType(c.typ)
		if err != nil {
			t.Fatalf("ParseChunkType(%q): %v", c.typ, err)
		}
		if got := ct.IsCritical(); got != c.critical {
			t.Errorf("%q IsCritical = %v, want %v", c.typ, got, c.critical)
		}
		if got := ct.IsPublic(); got != c.public {
			t.Errorf("%q IsPublic = %v, want %v", c.typ, got, c.public)
		}
		if got := ct.IsReservedBitValid(); got != c.reservedOK {
			t.Errorf("%q IsReservedBitValid = %v, want %v", c.typ, got, c.reservedOK)
		}
		if got := ct.IsSafeToCopy(); got != c.safeToCopy {
			t.Errorf("%q IsSafeToCopy = %v, want %v", c.typ, got, c.safeToCopy)
		}
	}
}

func TestChunkTypeIsValid(t *testing.T) {
	valid, err := ParseChunkType("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	if !valid.IsValid() {
		t.Error("RuSt should be valid")
	}

	// Lowercase third byte sets the reserved bit.
	reserved, err := ParseChunkType("Rust")
	if err != nil {
		t.Fatal(err)
	}
	if reserved.IsValid() {
		t.Error("Rust should be invalid (reserved bit set)")
	}
}

func TestChunkTypeEquality(t *testing.T) {
	a, err := ParseChunkType("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	b := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	if a != b {
		t.Error("expected byte-wise equality between constructors")
	}

	c, _ := ParseChunkType("ruSt")
	if a == c {
		t.Error("expected case-differing types to compare unequal")
	}
}
