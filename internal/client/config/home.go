package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/neumodiag/internal/filex"
)

// DevRootMarker identifies a development checkout of the CLI.
const DevRootMarker = "go.mod"

var ErrNoHome = errors.New("cannot resolve home directory")

// HomeInputs carries everything ResolveHome looks at.
type HomeInputs struct {
	// Override is an explicitly configured directory (Config.HomeDir).
	Override string
	// Executable is the path of the running binary; may be empty.
	Executable string
	// WorkDir is the current working directory; may be empty.
	WorkDir string
	// Exists reports whether a path exists.
	Exists func(string) bool
}

// ResolveHome picks the directory holding the session files:
//
//  1. Override, if set (relative paths are taken from WorkDir);
//  2. the nearest ancestor of the executable's directory that contains
//     DevRootMarker (a development build);
//  3. WorkDir, as is.
//
// It only reads from in, so the same inputs always give the same answer.
func ResolveHome(in HomeInputs) (string, error) {
	if in.Override != "" {
		if filepath.IsAbs(in.Override) || in.WorkDir == "" {
			return filepath.Clean(in.Override), nil
		}
		return filepath.Join(in.WorkDir, in.Override), nil
	}

	exists := in.Exists
	if exists == nil {
		exists = func(string) bool { return false }
	}

	if in.Executable != "" {
		if dir, ok := filex.FindUp(filepath.Dir(in.Executable), DevRootMarker, exists); ok {
			return dir, nil
		}
	}

	if in.WorkDir != "" {
		return filepath.Clean(in.WorkDir), nil
	}
	return "", ErrNoHome
}

// HomeInputsFromOS gathers HomeInputs from the running process. Lookup
// failures leave the corresponding field empty.
func HomeInputsFromOS(override string) HomeInputs {
	in := HomeInputs{Override: override, Exists: filex.Exists}

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		in.Executable = exe
	}
	if wd, err := os.Getwd(); err == nil {
		in.WorkDir = wd
	}
	return in
}
