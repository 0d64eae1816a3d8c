package color565

import "testing"

func TestBijection_AllModesAllValues(t *testing.T) {
	for mode := Mode(0); mode < NumModes; mode++ {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			for x := 0; x <= 0xFFFF; x++ {
				y := Decorrelate(mode, uint16(x))
				back := Recorrelate(mode, y)
				if back != uint16(x) {
					t.Fatalf("x=%#04x decorrelate=%#04x recorrelate=%#04x, want %#04x", x, y, back, x)
				}
			}
		})
	}
}

func TestIdentityMode(t *testing.T) {
	for _, x := range []uint16{0x0000, 0xFFFF, 0xF800, 0x07E0, 0x001F} {
		if got := Decorrelate(None, x); got != x {
			t.Errorf("Decorrelate(None, %#04x) = %#04x, want unchanged", x, got)
		}
		if got := Recorrelate(None, x); got != x {
			t.Errorf("Recorrelate(None, %#04x) = %#04x, want unchanged", x, got)
		}
	}
}

func TestVariantsAreDistinct(t *testing.T) {
	// Sanity check that the three non-identity variants do not collapse
	// to the same mapping on a representative sample.
	sample := []uint16{0x1234, 0xABCD, 0xF800, 0x07E0, 0x001F, 0x5555, 0xAAAA}
	seen := map[uint16]bool{}
	for _, mode := range []Mode{Variant1, Variant2, Variant3} {
		var h uint16
		for _, x := range sample {
			h ^= Decorrelate(mode, x)
		}
		if seen[h] {
			t.Errorf("mode %s produced the same aggregate output as another variant", mode)
		}
		seen[h] = true
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{None: "None", Variant1: "Variant1", Variant2: "Variant2", Variant3: "Variant3", Mode(99): "Mode(invalid)"}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

func TestBatch(t *testing.T) {
	in := []uint16{0x1234, 0xABCD, 0xF800, 0x0000, 0xFFFF}
	for mode := Mode(0); mode < NumModes; mode++ {
		buf := append([]uint16(nil), in...)
		DecorrelateBatch(mode, buf)
		RecorrelateBatch(mode, buf)
		for i := range buf {
			if buf[i] != in[i] {
				t.Errorf("mode=%s lane=%d: round trip = %#04x, want %#04x", mode, i, buf[i], in[i])
			}
		}
	}
}
