package srp

import "testing"

func TestVertexBuffer_CopyDataComputesCount(t *testing.T) {
	vb := NewVertexBuffer(8)
	data := make([]byte, 24)
	vb.CopyData(8, data)
	if vb.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", vb.Count())
	}
	if got := vb.Record(1); len(got) != 8 {
		t.Fatalf("Record(1) len = %d, want 8", len(got))
	}
	if got := vb.Record(3); got != nil {
		t.Fatalf("Record(3) = %v, want nil (out of range)", got)
	}
}

func TestIndexBuffer_CopyDataAndWideningRead(t *testing.T) {
	ctx := NewContext()
	ib := NewIndexBuffer(ElementU16)
	src := []byte{0x01, 0x00, 0x02, 0x00, 0xFF, 0xFF}
	ib.CopyData(ctx, ElementU16, src)

	if ib.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", ib.Count())
	}
	if v := ib.At(0); v != 1 {
		t.Fatalf("At(0) = %d, want 1", v)
	}
	if v := ib.At(2); v != 0xFFFF {
		t.Fatalf("At(2) = %d, want 0xFFFF", v)
	}
}

func TestIndexBuffer_UnknownElementTypeEmitsErrorAndEmpties(t *testing.T) {
	var gotSeverity Severity
	var gotSource Source
	ctx := NewContext(WithMessageFunc(func(sev Severity, src Source, msg string, _ any) {
		gotSeverity, gotSource = sev, src
	}, nil))

	ib := NewIndexBuffer(ElementType(99))
	ib.CopyData(ctx, ElementType(99), []byte{1, 2, 3, 4})

	if ib.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after unknown-type copy", ib.Count())
	}
	if gotSeverity != SeverityError || gotSource != SourceBuffer {
		t.Fatalf("message = (%v,%v), want (error,buffer)", gotSeverity, gotSource)
	}
}

func TestElementType_Size(t *testing.T) {
	cases := map[ElementType]int{
		ElementU8:  1,
		ElementU16: 2,
		ElementU32: 4,
		ElementF32: 4,
		ElementU64: 8,
		ElementF64: 8,
	}
	for et, want := range cases {
		if got := et.Size(); got != want {
			t.Errorf("%v.Size() = %d, want %d", et, got, want)
		}
	}
}
