package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ironsheep/pnmedit/internal/editor"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

// Server reads editor commands line by line and prints their results.
type Server struct {
	session        *editor.Session
	logger         *slog.Logger
	prompt         string
	defaultVariant pnm.Variant
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for protocol-level events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPrompt prints p before reading each command. The default is no prompt,
// which keeps output suitable for scripts.
func WithPrompt(p string) Option {
	return func(s *Server) { s.prompt = p }
}

// WithDefaultVariant sets the encoding SAVE uses when none is given.
func WithDefaultVariant(v pnm.Variant) Option {
	return func(s *Server) { s.defaultVariant = v }
}

// New creates a server driving session.
func New(session *editor.Session, opts ...Option) *Server {
	s := &Server{
		session:        session,
		logger:         slog.Default(),
		defaultVariant: pnm.Binary,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands from in until EXIT, end of input, or ctx is done.
// Results are written to out, one line each. Blank lines are ignored.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Increase buffer size for long file paths
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	if err := s.writePrompt(out); err != nil {
		return err
	}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			if err := s.writePrompt(out); err != nil {
				return err
			}
			continue
		}

		res := s.handleLine(fields)
		for _, line := range res.Lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
		}
		if res.Exit {
			return nil
		}
		if err := s.writePrompt(out); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	s.logger.Debug("input closed without EXIT")
	return nil
}

// handleLine parses one command line and runs it against the session.
func (s *Server) handleLine(fields []string) editor.Result {
	cmd, err := ParseCommand(fields, s.defaultVariant)
	if err != nil {
		s.logger.Debug("rejected command", "line", strings.Join(fields, " "), "error", err)
		if imageFirst(fields[0]) && !s.session.Loaded() {
			return editor.Failure(editor.ErrNoImageLoaded)
		}
		return editor.Failure(err)
	}
	return s.session.Execute(cmd)
}

func (s *Server) writePrompt(out io.Writer) error {
	if s.prompt == "" {
		return nil
	}
	if _, err := io.WriteString(out, s.prompt); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}
