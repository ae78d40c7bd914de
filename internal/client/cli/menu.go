package cli

import (
	"context"
	"fmt"
	"io"
)

const (
	itemRegister = "Registrarse"
	itemLogin    = "Iniciar sesión"
	itemUpload   = "Subir foto de perfil"
	itemLogout   = "Cerrar sesión"
	itemExit     = "Salir"
)

// menuActions is the command surface the menu needs. *App satisfies it;
// tests provide a stub.
type menuActions interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	Logout(ctx context.Context) error
}

func menuItems(loggedIn bool) []string {
	if loggedIn {
		return []string{itemUpload, itemLogout, itemExit}
	}
	return []string{itemRegister, itemLogin, itemExit}
}

// runMenu shows the main menu until the user picks "Salir", which returns
// nil. Actions report remote failures themselves; an error from an action
// or from the prompt ends the loop and is returned.
func runMenu(ctx context.Context, a menuActions, p Prompter, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printHeader(w)
		items := menuItems(a.isLoggedIn())
		idx, err := p.Select("", items, 0)
		if err != nil {
			return err
		}

		switch items[idx] {
		case itemRegister:
			printSection(w, "NeumoDiagnostics - Registro")
			err = a.Register(ctx)
			printSeparator(w)
		case itemLogin:
			printSection(w, "NeumoDiagnostics - Iniciar sesión")
			err = a.Login(ctx)
		case itemUpload:
			printSection(w, "NeumoDiagnostics - Subir foto de perfil")
			err = a.UploadPhoto(ctx)
		case itemLogout:
			err = a.Logout(ctx)
		case itemExit:
			fmt.Fprintln(w, "Saliendo...")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
}
