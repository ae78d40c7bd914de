package cli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// FilePicker opens a graphical file chooser.
type FilePicker interface {
	// Available reports whether a chooser can be shown on this machine.
	Available() bool
	// Pick returns the chosen path. ok is false when the user closed the
	// dialog without choosing.
	Pick(ctx context.Context) (path string, ok bool, err error)
}

// zenityPicker shells out to zenity, which is present on most Linux
// desktops.
type zenityPicker struct {
	bin string
}

func newZenityPicker() *zenityPicker {
	bin, err := exec.LookPath("zenity")
	if err != nil {
		bin = ""
	}
	return &zenityPicker{bin: bin}
}

func (z *zenityPicker) Available() bool { return z.bin != "" }

func (z *zenityPicker) Pick(ctx context.Context) (string, bool, error) {
	if z.bin == "" {
		return "", false, errors.New("zenity not found")
	}

	cmd := exec.CommandContext(ctx, z.bin,
		"--file-selection",
		"--title=Seleccione una imagen",
		"--file-filter=Imagen | *.jpg *.jpeg *.png",
	)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		// exit status 1 means the dialog was closed
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("running zenity: %w", err)
	}

	path := strings.TrimSpace(string(out))
	return path, path != "", nil
}
