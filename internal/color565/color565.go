// Package color565 implements the endpoint decorrelator: four bijective
// mappings over 16-bit RGB565 colour values (identity plus three YCoCg-R
// variants) used to decorrelate BC1/BC2/BC3 colour endpoints before they
// are handed to a general-purpose entropy coder.
//
// Every mapping is a pure function on a finite 16-bit domain with no
// allocation, so each one is trivially safe to call from every dispatch
// tier in internal/dsp. The single invariant that matters is bijectivity:
// Recorrelate(mode, Decorrelate(mode, x)) == x for all 65536 values of x.
// See the package-level tests for an exhaustive check of that invariant.
package color565

// Mode selects one of the four endpoint mappings.
type Mode uint8

const (
	// None is the identity mapping.
	None Mode = iota
	// Variant1 leads the subtraction chain with the red channel.
	Variant1
	// Variant2 leads the subtraction chain with the blue channel.
	Variant2
	// Variant3 is Variant1 with the luma and "blue chroma" output slots
	// swapped.
	Variant3
)

// NumModes is the number of decorrelation modes, including None.
const NumModes = 4

func (m Mode) String() string {
	switch m {
	case None:
		return "None"
	case Variant1:
		return "Variant1"
	case Variant2:
		return "Variant2"
	case Variant3:
		return "Variant3"
	default:
		return "Mode(invalid)"
	}
}

// Valid reports whether m is one of the four defined modes.
func (m Mode) Valid() bool {
	return m < NumModes
}

const (
	mask5 = 0x1F
	mask6 = 0x3F
)

// unpack565 splits a 16-bit RGB565 word into its 5/6/5-bit channels.
func unpack565(x uint16) (r, g, b uint8) {
	r = uint8(x>>11) & mask5
	g = uint8(x>>5) & mask6
	b = uint8(x) & mask5
	return
}

// pack565 reassembles 5/6/5-bit channels into a 16-bit RGB565 word.
func pack565(r, g, b uint8) uint16 {
	return uint16(r&mask5)<<11 | uint16(g&mask6)<<5 | uint16(b&mask5)
}

// lift runs the forward reversible lifting chain over two 5-bit channels
// x, z and one 6-bit channel y, returning the three lifted values in
// (w, e, d) order. w and d are 5-bit, e is 6-bit. The chain has an
// exact inverse (unlift): every intermediate value used to compute a
// later one is fully determined by values already fixed on both sides of
// the transform, which is what makes the whole chain a bijection
// regardless of the particular shift amounts chosen — the same argument
// JPEG2000's reversible colour transform and YCoCg-R both rely on.
func lift(x, y, z uint8) (w, e, d uint8) {
	d = (x - z) & mask5
	t := (z + (d >> 1)) & mask5
	e = (y - t) & mask6
	w = (t + (e >> 1)) & mask5
	return
}

// unlift is the exact inverse of lift.
func unlift(w, e, d uint8) (x, y, z uint8) {
	t := (w - (e >> 1)) & mask5
	y = (e + t) & mask6
	z = (t - (d >> 1)) & mask5
	x = (z + d) & mask5
	return
}

// Decorrelate applies the forward mapping for mode to a single RGB565
// endpoint value.
func Decorrelate(mode Mode, x uint16) uint16 {
	switch mode {
	case None:
		return x
	case Variant1:
		r, g, b := unpack565(x)
		w, e, d := lift(r, g, b)
		return pack565(w, e, d)
	case Variant2:
		r, g, b := unpack565(x)
		w, e, d := lift(b, g, r)
		return pack565(w, e, d)
	case Variant3:
		r, g, b := unpack565(x)
		w, e, d := lift(r, g, b)
		return pack565(d, e, w)
	default:
		return x
	}
}

// Recorrelate applies the inverse mapping for mode, undoing Decorrelate.
func Recorrelate(mode Mode, x uint16) uint16 {
	switch mode {
	case None:
		return x
	case Variant1:
		w, e, d := unpack565(x)
		r, g, b := unlift(w, e, d)
		return pack565(r, g, b)
	case Variant2:
		w, e, d := unpack565(x)
		b, g, r := unlift(w, e, d)
		return pack565(r, g, b)
	case Variant3:
		d, e, w := unpack565(x)
		r, g, b := unlift(w, e, d)
		return pack565(r, g, b)
	default:
		return x
	}
}
