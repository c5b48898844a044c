package bitarray

import "testing"

func BenchmarkSet(b *testing.B) {
	ba := New(1 << 16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ba.Set(i & (1<<16 - 1))
	}
}

func BenchmarkFirstUnsetBit(b *testing.B) {
	ba := New(1 << 16)
	for i := range 1<<16 - 1 {
		ba.Set(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ba.FirstUnsetBit()
	}
}

func BenchmarkAtomFromIndex_Unaligned(b *testing.B) {
	ba := New(1 << 12)
	for i := 0; i < 1<<12; i += 3 {
		ba.Set(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ba.AtomFromIndex((i * 7) & (1<<12 - 1))
	}
}
