package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// KPIs del mes en curso comparados contra el mes anterior. Los montos van
// redondeados a entero y los porcentajes a dos decimales.
type DashboardStatsDTO struct {
	// Ventas del mes en curso (estados activos: completada, pendiente,
	// preparacion, listo)
	IngresosTotales decimal.Decimal `json:"ingresos_totales"` // suma de totales del mes
	VentasUltimoMes int             `json:"ventas_ultimo_mes"`
	VentasMesAnt    int             `json:"ventas_mes_anterior"`
	ValorPromedio   decimal.Decimal `json:"valor_promedio"` // ingresos / cantidad de ventas

	// Pendientes de cobro del mes (cualquier estado de pedido)
	PedidosPendientePago     decimal.Decimal `json:"pedidos_pendiente_pago"` // alias histórico de total_pedidos_pendientes
	CantidadVentasPendientes int             `json:"cantidad_ventas_pendientes"`
	TotalPedidosPendientes   decimal.Decimal `json:"total_pedidos_pendientes"`

	// Variaciones intermensuales en porcentaje
	CrecimientoIngresos               decimal.Decimal `json:"crecimiento_ingresos"`
	CrecimientoVentas                 decimal.Decimal `json:"crecimiento_ventas"`
	CrecimientoValor                  decimal.Decimal `json:"crecimiento_valor"`
	CrecimientoPedidosPendientes      decimal.Decimal `json:"crecimiento_pedidos_pendientes"`
	PorcentajePedidosPendientes       decimal.Decimal `json:"porcentaje_pedidos_pendientes"` // pendientes / ventas del mes * 100
	PorcentajeCantVentasPendCambio    decimal.Decimal `json:"porcentaje_cantidad_ventas_pendientes_change"`

	// Clientes
	ClientesNuevosMes   int             `json:"clientes_nuevos_mes"`
	CrecimientoClientes decimal.Decimal `json:"crecimiento_clientes"`

	// Gastos y beneficios (beneficio = ingresos - gastos activos)
	GastosMesActual       decimal.Decimal `json:"gastos_mes_actual"`
	GastosMesAnterior     decimal.Decimal `json:"gastos_mes_anterior"`
	CrecimientoGastos     decimal.Decimal `json:"crecimiento_gastos"`
	BeneficiosMesActual   decimal.Decimal `json:"beneficios_mes_actual"`
	BeneficiosMesAnterior decimal.Decimal `json:"beneficios_mes_anterior"`
	CrecimientoBeneficios decimal.Decimal `json:"crecimiento_beneficios"`
}

// VentaMensualDTO un mes del gráfico anual de ventas.
type VentaMensualDTO struct {
	Mes     string          `json:"mes"` // abreviatura: Ene, Feb, ...
	Ventas  decimal.Decimal `json:"ventas"`
	Pedidos int             `json:"pedidos"`
}

// ProductoRankingDTO entrada de los rankings de productos más y menos
// vendidos. En el top-5, la cola se agrupa bajo id "others" / nombre "Otros".
type ProductoRankingDTO struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	CantidadVendida decimal.Decimal `json:"cantidadVendida"`
	Porcentaje      int             `json:"porcentaje"` // entero redondeado sobre el total vendido
	Color           string          `json:"color"`
}

// VentaPendienteDTO venta en curso para el widget de pedidos pendientes.
type VentaPendienteDTO struct {
	ID            string          `json:"id"`
	ClienteNombre string          `json:"cliente_nombre"`
	Fecha         string          `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	Estado        string          `json:"estado"`
	EstadoPago    string          `json:"estado_pago"`
}

// DeudorDTO cliente con deuda pendiente de cobro.
type DeudorDTO struct {
	ClienteID     string          `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre"`
	Deuda         decimal.Decimal `json:"deuda"`
	Ventas        int             `json:"ventas"` // cantidad de ventas impagas
}
