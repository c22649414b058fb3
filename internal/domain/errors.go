package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrBatchTooLarge = errors.New("el lote supera el máximo de líneas")
)
