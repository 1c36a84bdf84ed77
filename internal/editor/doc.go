// Package editor implements the stateful side of the PNM editor: a Session
// holding the current image and selection, and the Command values it
// executes.
//
// # Commands
//
//   - Load: read a P2, P3, P5 or P6 file and select all of it
//   - SelectAll, SelectRect: change the active selection
//   - Rotate, Crop, Apply, Equalize: transform the image
//   - Histogram: report the intensity distribution
//   - Save: write the image as ASCII or binary PNM
//   - Exit: release the image
//
// Each command yields a Result carrying the lines to print and, on failure,
// an error that wraps ErrNoImageLoaded, ErrInvalidCommand,
// ErrFileUnavailable or one of the imaging and pnm sentinels.
//
// # Atomicity
//
// A command either commits its whole effect or leaves the session exactly
// as it was. In particular a LOAD that fails keeps the previously loaded
// image.
//
// # Usage
//
//	s := editor.New(editor.WithLogger(logger))
//	res := s.Execute(editor.Load{Path: "in.ppm"})
//	for _, line := range res.Lines {
//	    fmt.Println(line)
//	}
package editor
