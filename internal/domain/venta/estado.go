// Package venta contiene las reglas de negocio del ciclo de vida de una
// venta: estados del pedido, estados de pago y la tabla de transiciones.
package venta

// Estado del pedido dentro del ciclo de preparación y entrega.
type Estado string

// Estados de pedido (deben coincidir con el CHECK de la tabla ventas).
const (
	EstadoPendiente   Estado = "pendiente"
	EstadoPreparacion Estado = "preparacion"
	EstadoListo       Estado = "listo"
	EstadoEntregado   Estado = "entregado"
	EstadoCompletada  Estado = "completada"
	EstadoCancelada   Estado = "cancelada"
)

// Estados de pago.
const (
	PagoPagado    = "pagado"
	PagoPendiente = "pendiente"
)

// transiciones permitidas por estado. La tabla es deliberadamente permisiva
// (el negocio aún no fijó reglas estrictas), pero completada y cancelada son
// terminales.
var transiciones = map[Estado][]Estado{
	EstadoPendiente:   {EstadoPreparacion, EstadoListo, EstadoEntregado, EstadoCompletada, EstadoCancelada},
	EstadoPreparacion: {EstadoPendiente, EstadoListo, EstadoEntregado, EstadoCompletada, EstadoCancelada},
	EstadoListo:       {EstadoPendiente, EstadoPreparacion, EstadoEntregado, EstadoCompletada, EstadoCancelada},
	EstadoEntregado:   {EstadoCompletada, EstadoCancelada},
	EstadoCompletada:  {},
	EstadoCancelada:   {},
}

// EsValido indica si el estado pertenece al conjunto definido.
func (e Estado) EsValido() bool {
	_, ok := transiciones[e]
	return ok
}

// EsTerminal indica si el estado no admite más transiciones.
func (e Estado) EsTerminal() bool {
	destinos, ok := transiciones[e]
	return ok && len(destinos) == 0
}

// PuedeTransicionar indica si la transición desde→hacia está permitida.
func PuedeTransicionar(desde, hacia Estado) bool {
	for _, destino := range transiciones[desde] {
		if destino == hacia {
			return true
		}
	}
	return false
}

// EstadosActivos estados que cuentan como venta vigente en el dashboard
// (excluye cancelada y entregado; entregado se consolida como completada).
func EstadosActivos() []Estado {
	return []Estado{EstadoCompletada, EstadoPendiente, EstadoPreparacion, EstadoListo}
}

// EstadosEnCurso estados de pedidos aún no entregados, para el widget de
// ventas pendientes.
func EstadosEnCurso() []Estado {
	return []Estado{EstadoPendiente, EstadoPreparacion, EstadoListo}
}
