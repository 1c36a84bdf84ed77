package pnm

import (
	"fmt"
	"os"

	"github.com/ironsheep/pnmedit/internal/imaging"
)

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) (*imaging.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return b, nil
}

// EncodeFile creates (or truncates) path and writes b to it with Encode.
// A file that could not be written completely is removed.
func EncodeFile(path string, b *imaging.Buffer, v Variant) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	if err := Encode(f, b, v); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close image: %w", err)
	}
	return nil
}
