package ventas

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain"
)

// StockInsuficienteError la primera línea cuya cantidad convertida a unidades
// base supera el stock disponible. El caller puede reintentar con
// ConfirmarSinStock=true para vender igual descontando hasta cero.
type StockInsuficienteError struct {
	ProductoID     string
	ProductoNombre string
	Disponible     decimal.Decimal
	Solicitado     decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %s, solicitado %s",
		e.ProductoNombre, e.Disponible, e.Solicitado)
}

// Unwrap permite errors.Is(err, domain.ErrStockInsuficiente).
func (e *StockInsuficienteError) Unwrap() error {
	return domain.ErrStockInsuficiente
}
