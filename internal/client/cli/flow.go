package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/neumodiag/internal/taskx"
)

const (
	optContinue = "Continuar"
	optCancel   = "Cancelar"
	optRetry    = "Reintentar"
	optYes      = "Sí"
	optNo       = "No"
)

var (
	continueOrCancel = []string{optContinue, optCancel}
	yesNo            = []string{optYes, optNo}
)

func yesNoText(b bool) string {
	if b {
		return optYes
	}
	return optNo
}

// reportOutcome prints the result of a background operation. what names
// the operation in the internal-fault message ("del registro").
func reportOutcome(w io.Writer, err error, what, failPrefix, success string) {
	switch {
	case errors.Is(err, taskx.ErrNoResult):
		fmt.Fprintf(w, "Fallo interno: no se pudo obtener el resultado %s.\n", what)
	case err != nil:
		fmt.Fprintf(w, "%s: %v\n", failPrefix, err)
	default:
		fmt.Fprintln(w, success)
	}
}
