package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidDate        = errors.New("fecha inválida, se espera DD-MM-YYYY")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrIncompleteEntries el cierre nocturno debe incluir todos los ítems comprados en la fecha.
	ErrIncompleteEntries = errors.New("faltan ítems en el cierre de stock")
	// ErrItemClosed el ítem ya tiene cierre nocturno para la fecha de la compra.
	ErrItemClosed = errors.New("el ítem ya tiene cierre nocturno")
)
