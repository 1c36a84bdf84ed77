package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/pnmedit/internal/imaging"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

// Session holds the image being edited and its active selection.
//
// Every command runs against a copy of the current buffer; the session
// only swaps in the result once the whole operation has succeeded, so a
// failing command leaves both image and selection exactly as they were.
//
// Session is safe for concurrent use. Commands are serialized.
type Session struct {
	mu        sync.Mutex
	image     *imaging.Buffer
	selection imaging.Selection

	id     string
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for command tracing. The session adds its
// own "session" attribute.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty session with no image loaded.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// Result is the outcome of one command.
type Result struct {
	// Lines are printed to the user in order, one per line.
	Lines []string

	// Err is nil on success. On failure it wraps one of the sentinel errors
	// of this package or of the imaging and pnm packages.
	Err error

	// Exit is set by EXIT; the caller should stop reading commands.
	Exit bool
}

func ok(lines ...string) Result { return Result{Lines: lines} }

// Failure builds the Result reported for err: one line describing it.
func Failure(err error) Result { return Result{Lines: []string{message(err)}, Err: err} }

// failAs reports err with a command-specific line unless no image is loaded.
func failAs(err error, line string) Result {
	if errors.Is(err, ErrNoImageLoaded) {
		return Failure(err)
	}
	return Result{Lines: []string{line}, Err: err}
}

// ID returns the identifier attached to this session's log records.
func (s *Session) ID() string { return s.id }

// Loaded reports whether an image is held.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image != nil
}

// Image returns a copy of the current image, or nil when none is loaded.
func (s *Session) Image() *imaging.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil {
		return nil
	}
	return s.image.Clone()
}

// Selection returns the active selection. It is the zero Selection when no
// image is loaded.
func (s *Session) Selection() imaging.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Execute runs one command and reports its outcome.
func (s *Session) Execute(cmd Command) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := "<nil>"
	if cmd != nil {
		name = cmd.Name()
	}

	res := s.execute(cmd)
	if res.Err != nil {
		s.logger.Debug("command failed", "command", name, "error", res.Err)
	} else {
		s.logger.Debug("command done", "command", name)
	}
	return res
}

func (s *Session) execute(cmd Command) Result {
	switch c := cmd.(type) {
	case Load:
		if err := s.load(c.Path); err != nil {
			return failAs(err, "Failed to load "+c.Path)
		}
		return ok("Loaded " + c.Path)

	case SelectAll:
		if s.image == nil {
			return Failure(ErrNoImageLoaded)
		}
		s.selection = imaging.SelectAll(s.image)
		return ok("Selected ALL")

	case SelectRect:
		if s.image == nil {
			return Failure(ErrNoImageLoaded)
		}
		sel, err := imaging.SelectRect(s.image, c.C1, c.R1, c.C2, c.R2)
		if err != nil {
			return Failure(err)
		}
		s.selection = sel
		return ok(fmt.Sprintf("Selected %d %d %d %d", sel.ColStart, sel.RowStart, sel.ColEnd, sel.RowEnd))

	case Rotate:
		if err := s.rotate(c.Angle); err != nil {
			return Failure(err)
		}
		return ok(fmt.Sprintf("Rotated %d", c.Angle))

	case Crop:
		if err := s.crop(); err != nil {
			return Failure(err)
		}
		return ok("Image cropped")

	case Apply:
		if err := s.apply(c.Filter); err != nil {
			return Failure(err)
		}
		return ok(fmt.Sprintf("APPLY %s done", c.Filter))

	case Histogram:
		if s.image == nil {
			return Failure(ErrNoImageLoaded)
		}
		res, err := imaging.Histogram(s.image, c.Bins, c.Stars)
		if err != nil {
			return Failure(err)
		}
		return ok(histogramLines(res)...)

	case Equalize:
		if s.image == nil {
			return Failure(ErrNoImageLoaded)
		}
		out, err := imaging.Equalize(s.image)
		if err != nil {
			return Failure(err)
		}
		s.image = out
		return ok("Equalize done")

	case Save:
		if err := s.save(c.Path, c.Variant); err != nil {
			return failAs(err, "Failed to save "+c.Path)
		}
		return ok("Saved " + c.Path)

	case Exit:
		res := Result{Exit: true}
		if s.image == nil {
			res.Lines = []string{msgNoImage}
			res.Err = ErrNoImageLoaded
		}
		s.image = nil
		s.selection = imaging.Selection{}
		s.logger.Info("session closed")
		return res
	}

	return Failure(fmt.Errorf("%w: %T", ErrInvalidCommand, cmd))
}

// load decodes path and, on success only, replaces the current image.
func (s *Session) load(path string) error {
	b, err := pnm.DecodeFile(path)
	if err != nil {
		s.logger.Warn("load failed", "path", path, "error", err)
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf("%w: %w", ErrFileUnavailable, err)
		}
		return err
	}

	s.image = b
	s.selection = imaging.SelectAll(b)
	s.logger.Info("image loaded", "path", path, "width", b.Width(), "height", b.Height(), "color", b.IsColor())
	return nil
}

func (s *Session) rotate(angle int) error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	out, err := imaging.Rotate(s.image, s.selection, angle)
	if err != nil {
		return err
	}
	s.image = out
	if s.selection.All {
		s.selection = imaging.SelectAll(out)
	}
	return nil
}

func (s *Session) crop() error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	if s.selection.All {
		return nil
	}
	out, sel, err := imaging.Crop(s.image, s.selection)
	if err != nil {
		return err
	}
	s.image, s.selection = out, sel
	return nil
}

func (s *Session) apply(name string) error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	if !s.image.IsColor() {
		return imaging.ErrGrayscaleNotSupported
	}
	f, err := imaging.ParseFilter(name)
	if err != nil {
		return err
	}
	out, err := imaging.ApplyFilter(s.image, s.selection, f)
	if err != nil {
		return err
	}
	s.image = out
	return nil
}

func (s *Session) save(path string, v pnm.Variant) error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	if err := pnm.EncodeFile(path, s.image, v); err != nil {
		s.logger.Warn("save failed", "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	s.logger.Info("image saved", "path", path, "format", pnm.FormatFor(s.image.IsColor(), v).String())
	return nil
}

// histogramLines renders one "<stars>\t|\t<row of stars>" line per bin.
func histogramLines(res *imaging.HistogramResult) []string {
	lines := make([]string, len(res.Stars))
	for i, n := range res.Stars {
		lines[i] = fmt.Sprintf("%d\t|\t%s", n, strings.Repeat("*", n))
	}
	return lines
}
