package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/neumodiag/internal/client/auth"
	"github.com/dmitrijs2005/neumodiag/internal/client/models"
	"github.com/dmitrijs2005/neumodiag/internal/client/services"
	"github.com/dmitrijs2005/neumodiag/internal/common"
	"github.com/dmitrijs2005/neumodiag/internal/taskx"
)

// Login asks for credentials, authenticates, and on success asks whether
// the session should be remembered on this machine.
func (a *App) Login(ctx context.Context) error {
	idx, err := a.prompt.Select("¿Desea continuar con el inicio de sesión o cancelar?", continueOrCancel, 0)
	if err != nil {
		return err
	}
	if idx == 1 {
		fmt.Fprintln(a.out, "Inicio de sesión cancelado. Volviendo al menú.")
		return nil
	}
	clearPreviousLines(a.out, a.outTTY, selectLines(len(continueOrCancel)))

	email, err := a.prompt.Text("Correo electrónico")
	if err != nil {
		return err
	}
	password, err := a.prompt.Password("Contraseña")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := taskx.Run(a.pacer, a.indicator("Iniciando sesión..."), func() (*models.AuthResponse, error) {
		return a.auth.Login(ctx, email, string(password))
	})
	switch {
	case errors.Is(err, taskx.ErrNoResult):
		fmt.Fprintln(a.out, "Fallo interno: no se pudo obtener el resultado del inicio de sesión.")
		return nil
	case services.IsInvalidCredentials(err):
		fmt.Fprintln(a.out, "Credenciales inválidas: correo o contraseña incorrectos.")
		return nil
	case err != nil:
		fmt.Fprintf(a.out, "Fallo al iniciar sesión: %v\n", err)
		return nil
	}

	rememberIdx, err := a.prompt.Select("¿Recordar esta sesión en este equipo?", yesNo, 1)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, resp.Token, rememberIdx == 0); err != nil {
		fmt.Fprintf(a.out, "No se pudo guardar la sesión: %v\n", err)
	}

	if name, ok := auth.DisplayName(resp.Token); ok {
		fmt.Fprintf(a.out, "Sesión iniciada. Bienvenido, %s.\n", name)
	} else {
		fmt.Fprintln(a.out, "Sesión iniciada.")
	}
	return nil
}
