package server

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/pnmedit/internal/editor"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{editor.ErrInvalidCommand}, args...)...)
}

func wantArgs(args []string, n int) error {
	if len(args) != n {
		return invalid("want %d parameters, got %d", n, len(args))
	}
	return nil
}

// ints parses every argument as a decimal integer.
func ints(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, invalid("parameter %q is not an integer", a)
		}
		out[i] = n
	}
	return out, nil
}

func noArgs(cmd editor.Command) func([]string, pnm.Variant) (editor.Command, error) {
	return func(args []string, _ pnm.Variant) (editor.Command, error) {
		if err := wantArgs(args, 0); err != nil {
			return nil, err
		}
		return cmd, nil
	}
}

func parseLoad(args []string, _ pnm.Variant) (editor.Command, error) {
	if err := wantArgs(args, 1); err != nil {
		return nil, err
	}
	return editor.Load{Path: args[0]}, nil
}

func parseSelect(args []string, _ pnm.Variant) (editor.Command, error) {
	if len(args) == 1 && args[0] == "ALL" {
		return editor.SelectAll{}, nil
	}
	if err := wantArgs(args, 4); err != nil {
		return nil, err
	}
	n, err := ints(args)
	if err != nil {
		return nil, err
	}
	return editor.SelectRect{C1: n[0], R1: n[1], C2: n[2], R2: n[3]}, nil
}

func parseRotate(args []string, _ pnm.Variant) (editor.Command, error) {
	if err := wantArgs(args, 1); err != nil {
		return nil, err
	}
	n, err := ints(args)
	if err != nil {
		return nil, err
	}
	return editor.Rotate{Angle: n[0]}, nil
}

func parseApply(args []string, _ pnm.Variant) (editor.Command, error) {
	if err := wantArgs(args, 1); err != nil {
		return nil, err
	}
	return editor.Apply{Filter: args[0]}, nil
}

// parseHistogram reads "<stars> <bins>".
func parseHistogram(args []string, _ pnm.Variant) (editor.Command, error) {
	if err := wantArgs(args, 2); err != nil {
		return nil, err
	}
	n, err := ints(args)
	if err != nil {
		return nil, err
	}
	return editor.Histogram{Stars: n[0], Bins: n[1]}, nil
}

func parseSave(args []string, defaultVariant pnm.Variant) (editor.Command, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, invalid("want 1 or 2 parameters, got %d", len(args))
	}
	cmd := editor.Save{Path: args[0], Variant: defaultVariant}
	if len(args) == 2 {
		v, err := pnm.ParseVariant(args[1])
		if err != nil {
			return nil, invalid("%v", err)
		}
		cmd.Variant = v
	}
	return cmd, nil
}
