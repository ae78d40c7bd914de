package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/neumodiag/internal/client/models"
	"github.com/dmitrijs2005/neumodiag/internal/common"
	"github.com/dmitrijs2005/neumodiag/internal/taskx"
)

var roleChoices = []string{"Doctor", "Paciente"}

// Register walks the user through the registration form and submits it.
// Cancelling at any step returns to the menu. Only prompt errors are
// returned; remote failures are printed.
func (a *App) Register(ctx context.Context) error {
	idx, err := a.prompt.Select("¿Desea continuar con el registro o cancelar?", continueOrCancel, 0)
	if err != nil {
		return err
	}
	if idx == 1 {
		fmt.Fprintln(a.out, "Registro cancelado. Volviendo al menú.")
		return nil
	}
	clearPreviousLines(a.out, a.outTTY, selectLines(len(continueOrCancel)))

	name, err := a.prompt.Text("Nombre completo")
	if err != nil {
		return err
	}
	age, err := a.askAge()
	if err != nil {
		return err
	}
	roleIdx, err := a.prompt.Select("Rol", roleChoices, 1)
	if err != nil {
		return err
	}
	id, err := a.prompt.Text("Identificación")
	if err != nil {
		return err
	}
	email, err := a.prompt.Text("Correo electrónico")
	if err != nil {
		return err
	}

	password, ok, err := a.askNewPassword()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Registro cancelado. Volviendo al menú.")
		return nil
	}
	defer common.WipeByteArray(password)

	consentIdx, err := a.prompt.Select("¿Acepta el tratamiento de datos?", yesNo, 1)
	if err != nil {
		return err
	}
	accepts := consentIdx == 0

	printSeparator(a.out)
	printSection(a.out, "NeumoDiagnostics - Resumen de registro")
	fmt.Fprintf(a.out, "Nombre: %s\n", name)
	fmt.Fprintf(a.out, "Edad: %d\n", age)
	fmt.Fprintf(a.out, "Rol: %s\n", roleChoices[roleIdx])
	fmt.Fprintf(a.out, "Identificación: %s\n", id)
	fmt.Fprintf(a.out, "Correo: %s\n", email)
	fmt.Fprintf(a.out, "Acepta tratamiento de datos: %s\n", yesNoText(accepts))
	printSeparator(a.out)

	confirmIdx, err := a.prompt.Select("¿Confirmar registro con los datos mostrados?", yesNo, 0)
	if err != nil {
		return err
	}
	if confirmIdx != 0 {
		fmt.Fprintln(a.out, "Registro cancelado. Revise sus datos e intente de nuevo.")
		return nil
	}

	req := models.RegisterRequest{
		FullName:       name,
		Age:            age,
		Role:           models.Role(strings.ToLower(roleChoices[roleIdx])),
		Identification: id,
		Email:          email,
		Password:       string(password),
		AcceptsDataUse: accepts,
	}

	_, err = taskx.Run(a.pacer, a.indicator("Registrando..."), func() (struct{}, error) {
		return struct{}{}, a.auth.Register(ctx, req)
	})
	reportOutcome(a.out, err, "del registro", "Fallo el registro",
		"Registrado exitosamente, por favor inicie sesión.")
	return nil
}

// askAge asks until the answer is a whole number.
func (a *App) askAge() (int, error) {
	for {
		s, err := a.prompt.Text("Edad")
		if err != nil {
			return 0, err
		}
		age, err := strconv.Atoi(s)
		if err == nil {
			return age, nil
		}
		fmt.Fprintln(a.out, "Ingrese un número entero.")
	}
}

// askNewPassword asks for a password twice. On mismatch the user can retry
// just the password or cancel, in which case ok is false.
func (a *App) askNewPassword() (password []byte, ok bool, err error) {
	for {
		p, err := a.prompt.Password("Contraseña")
		if err != nil {
			return nil, false, err
		}
		confirm, err := a.prompt.Password("Confirmar contraseña")
		if err != nil {
			common.WipeByteArray(p)
			return nil, false, err
		}

		match := bytes.Equal(p, confirm)
		common.WipeByteArray(confirm)
		if match {
			return p, true, nil
		}
		common.WipeByteArray(p)

		fmt.Fprintln(a.out, "Las contraseñas no coinciden.")
		idx, err := a.prompt.Select("¿Desea reintentar la contraseña o cancelar el registro?",
			[]string{optRetry, optCancel}, 0)
		if err != nil {
			return nil, false, err
		}
		if idx == 1 {
			return nil, false, nil
		}
	}
}
