package life

import (
	"fmt"
	"testing"
)

func BenchmarkTick(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			u := New(size, size)
			u.Reset(42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

func BenchmarkToggleCell(b *testing.B) {
	u := New(256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.ToggleCell(i, i)
	}
}
