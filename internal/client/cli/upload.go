package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/neumodiag/internal/client/client"
	"github.com/dmitrijs2005/neumodiag/internal/taskx"
)

const (
	methodPicker = "Seleccionar archivo (GUI)"
	methodManual = "Ingresar ruta manualmente"
)

// UploadPhoto asks for an image and uploads it as the profile picture.
func (a *App) UploadPhoto(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Debe iniciar sesión antes de subir una foto de perfil.")
		return nil
	}

	path, ok, err := a.askImagePath(ctx)
	if err != nil || !ok {
		return err
	}

	token := a.session.Token()
	_, err = taskx.Run(a.pacer, a.indicator("Subiendo la imagen..."), func() (struct{}, error) {
		return struct{}{}, a.auth.UploadPhoto(ctx, token, path)
	})
	reportOutcome(a.out, err, "de la subida", "Fallo la subida",
		"Imagen de perfil cargada exitosamente.")
	if errors.Is(err, client.ErrUnauthorized) {
		fmt.Fprintln(a.out, "La sesión ya no es válida. Cierre sesión e inicie sesión de nuevo.")
	}
	return nil
}

// askImagePath returns the chosen path; ok is false when the user cancelled
// or nothing was chosen.
func (a *App) askImagePath(ctx context.Context) (string, bool, error) {
	methods := []string{methodManual, optCancel}
	if a.picker != nil && a.picker.Available() {
		methods = append([]string{methodPicker}, methods...)
	}

	idx, err := a.prompt.Select("¿Cómo desea elegir la imagen?", methods, 0)
	if err != nil {
		return "", false, err
	}

	switch methods[idx] {
	case optCancel:
		fmt.Fprintln(a.out, "Operación cancelada. Volviendo al menú.")
		return "", false, nil

	case methodPicker:
		path, ok, err := a.picker.Pick(ctx)
		if err != nil {
			a.logger.Warn(ctx, "file picker failed", "error", err)
		}
		if err != nil || !ok {
			fmt.Fprintln(a.out, "No se seleccionó un archivo o el diálogo no está disponible.")
			return "", false, nil
		}
		return path, true, nil

	default:
		raw, err := a.prompt.Text("Ruta del archivo de imagen")
		if err != nil {
			return "", false, err
		}
		path := cleanPath(raw)
		if path == "" {
			fmt.Fprintln(a.out, "Ruta vacía: operación cancelada.")
			return "", false, nil
		}
		return path, true, nil
	}
}

// cleanPath strips whitespace and the quotes terminals add around dragged
// files.
func cleanPath(raw string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"'`))
}
