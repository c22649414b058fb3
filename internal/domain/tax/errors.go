package tax

import "errors"

// Errores del motor de descomposición de impuestos.
var (
	ErrNegativeRate    = errors.New("el porcentaje de impuesto no puede ser negativo")
	ErrDegenerateRates = errors.New("combinación de IVA y retención sin base posible (denominador <= 0)")
	ErrNonFiniteAmount = errors.New("importe no finito (NaN o Inf)")
)
