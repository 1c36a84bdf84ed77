package pnm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVariant is returned by ParseVariant for anything other than
// "ascii" or "binary".
var ErrUnsupportedVariant = errors.New("unsupported PNM variant")

// Format is one of the four PNM sub-formats handled by this package.
type Format int

const (
	// P2 is grayscale with ASCII samples.
	P2 Format = 2
	// P3 is RGB with ASCII samples.
	P3 Format = 3
	// P5 is grayscale with binary samples.
	P5 Format = 5
	// P6 is RGB with binary samples.
	P6 Format = 6
)

// ParseMagic maps a magic number such as "P5" to its Format.
func ParseMagic(magic string) (Format, error) {
	switch magic {
	case "P2":
		return P2, nil
	case "P3":
		return P3, nil
	case "P5":
		return P5, nil
	case "P6":
		return P6, nil
	}
	return 0, fmt.Errorf("%w: magic %q", ErrUnsupportedFormat, magic)
}

// FormatFor returns the format that stores a color or grayscale image in
// the given variant.
func FormatFor(color bool, v Variant) Format {
	f := P2
	if color {
		f = P3
	}
	if v == Binary {
		f += 3
	}
	return f
}

// String returns the magic number, e.g. "P6".
func (f Format) String() string { return fmt.Sprintf("P%d", int(f)) }

// Color reports whether the format carries three channels.
func (f Format) Color() bool { return f == P3 || f == P6 }

// Binary reports whether samples are stored as raw bytes.
func (f Format) Binary() bool { return f == P5 || f == P6 }

// Channels is 3 for color formats and 1 for grayscale.
func (f Format) Channels() int {
	if f.Color() {
		return 3
	}
	return 1
}

// Variant selects ASCII or binary sample encoding on save.
type Variant int

const (
	// Binary writes P5/P6 with one byte per sample.
	Binary Variant = iota
	// ASCII writes P2/P3 with decimal samples.
	ASCII
)

func (v Variant) String() string {
	if v == ASCII {
		return "ascii"
	}
	return "binary"
}

// ParseVariant accepts "ascii" or "binary".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "ascii":
		return ASCII, nil
	case "binary":
		return Binary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}
