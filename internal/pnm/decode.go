package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/pnmedit/internal/imaging"
)

// MaxValue is the maximum sample value written by Encode and the value all
// decoded samples are rescaled to.
const MaxValue = 255

// maxInputValue is the largest maxval accepted in a header.
const maxInputValue = 65535

var (
	// ErrUnsupportedFormat is returned when the magic number is not P2, P3, P5 or P6.
	ErrUnsupportedFormat = errors.New("unsupported PNM format")

	// ErrTruncatedInput is returned when the input ends before the header or raster is complete.
	ErrTruncatedInput = errors.New("truncated PNM input")

	// ErrInvalidHeader is returned for a malformed width, height or maxval.
	ErrInvalidHeader = errors.New("invalid PNM header")

	// ErrInvalidSample is returned for a malformed ASCII sample.
	ErrInvalidSample = errors.New("invalid PNM sample")
)

// header is the parsed preamble of a PNM stream.
type header struct {
	format Format
	width  int
	height int
	maxval int
}

// decoder reads whitespace-separated tokens from a PNM stream.
type decoder struct {
	r *bufio.Reader
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// skip consumes whitespace and, when comments is set, '#' comments running
// to the end of the line.
func (d *decoder) skip(comments bool) error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(c):
		case c == '#' && comments:
			if err := d.discardLine(); err != nil {
				return err
			}
		default:
			return d.r.UnreadByte()
		}
	}
}

func (d *decoder) discardLine() error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// token returns the next token and consumes exactly one trailing whitespace
// byte. The end of input also terminates a non-empty token.
func (d *decoder) token(comments bool) (string, error) {
	if err := d.skip(comments); err != nil {
		return "", truncated(err)
	}
	var tok []byte
	for {
		c, err := d.r.ReadByte()
		if errors.Is(err, io.EOF) && len(tok) > 0 {
			return string(tok), nil
		}
		if err != nil {
			return "", truncated(err)
		}
		if isSpace(c) {
			return string(tok), nil
		}
		tok = append(tok, c)
	}
}

// number reads a header integer in [1, limit].
func (d *decoder) number(field string, limit int) (int, error) {
	tok, err := d.token(true)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", field, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > limit {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidHeader, field, tok)
	}
	return n, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedInput
	}
	return err
}

func (d *decoder) readHeader() (*header, error) {
	magic, err := d.token(true)
	if err != nil {
		return nil, fmt.Errorf("reading magic number: %w", err)
	}
	format, err := ParseMagic(magic)
	if err != nil {
		return nil, err
	}

	h := &header{format: format}
	if h.width, err = d.number("width", imaging.MaxSide); err != nil {
		return nil, err
	}
	if h.height, err = d.number("height", imaging.MaxSide); err != nil {
		return nil, err
	}
	if h.maxval, err = d.number("maxval", maxInputValue); err != nil {
		return nil, err
	}
	return h, nil
}

// rescale maps a sample in [0, maxval] onto [0, 255], rounding half up.
// Samples above maxval clamp to 255.
func rescale(v, maxval int) uint8 {
	if v >= maxval {
		return MaxValue
	}
	return uint8((2*v*MaxValue + maxval) / (2 * maxval))
}

// Decode reads a PNM image in any of the P2, P3, P5 or P6 variants.
//
// The header is a magic number, width, height and maxval separated by
// whitespace, with '#' comments allowed before each header token. A single
// whitespace byte separates maxval from the raster. Samples are rescaled
// from [0, maxval] to [0, 255]; grayscale variants produce grayscale
// buffers and color variants produce color buffers.
//
// Binary rasters always use one byte per sample, whatever maxval says.
//
// Errors wrap ErrUnsupportedFormat, ErrTruncatedInput, ErrInvalidHeader,
// ErrInvalidSample or imaging.ErrAllocation.
func Decode(r io.Reader) (*imaging.Buffer, error) {
	d := &decoder{r: bufio.NewReader(r)}

	h, err := d.readHeader()
	if err != nil {
		return nil, err
	}
	b, err := imaging.NewBuffer(h.height, h.width, h.format.Color())
	if err != nil {
		return nil, err
	}

	if h.format.Binary() {
		err = d.readBinary(b, h)
	} else {
		err = d.readASCII(b, h)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) readBinary(b *imaging.Buffer, h *header) error {
	channels := h.format.Channels()
	row := make([]byte, h.width*channels)
	var s [3]uint8

	for r := 0; r < h.height; r++ {
		if _, err := io.ReadFull(d.r, row); err != nil {
			return fmt.Errorf("reading row %d: %w", r, truncated(err))
		}
		for c := 0; c < h.width; c++ {
			for ch := 0; ch < channels; ch++ {
				s[ch] = rescale(int(row[c*channels+ch]), h.maxval)
			}
			if err := b.Set(r, c, pixel(s, channels)); err != nil {
				return err
			}
		}
	}
	return nil
}

func pixel(s [3]uint8, channels int) imaging.Pixel {
	if channels == 3 {
		return imaging.Pixel{R: s[0], G: s[1], B: s[2]}
	}
	return imaging.Gray(s[0])
}

func (d *decoder) readASCII(b *imaging.Buffer, h *header) error {
	channels := h.format.Channels()
	var s [3]uint8

	for r := 0; r < h.height; r++ {
		for c := 0; c < h.width; c++ {
			for ch := 0; ch < channels; ch++ {
				tok, err := d.token(false)
				if err != nil {
					return fmt.Errorf("reading sample at (%d,%d): %w", r, c, err)
				}
				v, err := strconv.ParseUint(tok, 10, 16)
				if err != nil {
					return fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidSample, tok, r, c)
				}
				s[ch] = rescale(int(v), h.maxval)
			}
			if err := b.Set(r, c, pixel(s, channels)); err != nil {
				return err
			}
		}
	}
	return nil
}
