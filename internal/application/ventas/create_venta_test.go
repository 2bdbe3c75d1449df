package ventas

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
)

const (
	testCompanyID = "empresa-1"
	testUserID    = "user-1"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func nuevoEntorno(productos ...*entity.Producto) (*CreateVentaUseCase, *fakeVentaRepo, *fakeProductoRepo, *fakeClienteRepo) {
	clienteRepo := newFakeClienteRepo(&entity.Cliente{
		ID:        "cliente-1",
		CompanyID: testCompanyID,
		Nombre:    "María Pérez",
		Estado:    entity.ClienteActivo,
	})
	productoRepo := newFakeProductoRepo(productos...)
	ventaRepo := newFakeVentaRepo()
	txRunner := &fakeTxRunner{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
	uc := NewCreateVentaUseCase(txRunner, clienteRepo, productoRepo, &fakeAjustesRepo{})
	return uc, ventaRepo, productoRepo, clienteRepo
}

func TestCreateVenta_DosLineasConTramo(t *testing.T) {
	// Dos milanesas a 100 más una media docena de empanadas con tramo 250.
	uc, ventaRepo, _, clienteRepo := nuevoEntorno(
		&entity.Producto{
			ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
			Precio: dec("100"), Stock: dec("20"), Estado: entity.ProductoActivo,
		},
		&entity.Producto{
			ID: "prod-b", CompanyID: testCompanyID, Nombre: "Empanada",
			Precio: dec("50"), PrecioMediaDocena: decPtr("250"),
			Stock: dec("20"), Estado: entity.ProductoActivo,
		},
	)

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("2"), TipoUnidad: "unidad"},
			{ProductoID: "prod-b", Cantidad: dec("1"), TipoUnidad: "media_docena"},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("450").Equal(resp.Total), "esperaba total 450, obtuve %s", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.True(t, dec("200").Equal(resp.Items[0].Subtotal))
	assert.True(t, dec("250").Equal(resp.Items[1].Subtotal))
	// La cantidad se guarda en unidades base.
	assert.True(t, dec("6").Equal(resp.Items[1].Cantidad))

	// Se persistió cabecera, items y acumulado del cliente.
	guardada, _ := ventaRepo.GetByID(resp.ID)
	require.NotNil(t, guardada)
	assert.True(t, dec("450").Equal(clienteRepo.incrementos["cliente-1"]))
}

func TestCreateVenta_StockInsuficientePorConversion(t *testing.T) {
	// Stock 10 y pedido de 1 docena (12 unidades base): debe cortar sin
	// escribir nada.
	uc, ventaRepo, productoRepo, clienteRepo := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("10"), Estado: entity.ProductoActivo,
	})

	_, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "docena"},
		},
	})

	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "prod-a", stockErr.ProductoID)
	assert.True(t, dec("10").Equal(stockErr.Disponible))
	assert.True(t, dec("12").Equal(stockErr.Solicitado))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Empty(t, ventaRepo.ventas, "no debe persistir la venta")
	producto, _ := productoRepo.GetByID("prod-a")
	assert.True(t, dec("10").Equal(producto.Stock), "no debe tocar el stock")
	assert.Empty(t, clienteRepo.incrementos)
}

func TestCreateVenta_ConfirmarSinStockDescuentaHastaCero(t *testing.T) {
	uc, ventaRepo, productoRepo, _ := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("10"), Estado: entity.ProductoActivo,
	})

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "docena"},
		},
		ConfirmarSinStock: true,
	})
	require.NoError(t, err)

	assert.True(t, dec("1200").Equal(resp.Total))
	producto, _ := productoRepo.GetByID("prod-a")
	assert.True(t, producto.Stock.IsZero(), "el stock queda en cero, nunca negativo")
	assert.Len(t, ventaRepo.ventas, 1)
}

func TestCreateVenta_SubtotalManualManda(t *testing.T) {
	uc, _, _, _ := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("50"), Estado: entity.ProductoActivo,
	})

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("2"), TipoUnidad: "unidad", Subtotal: decPtr("150.50")},
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("150.50").Equal(resp.Total))
}

func TestCreateVenta_PrecioUnitarioPisadoAplicaPorUnidadBase(t *testing.T) {
	uc, _, _, _ := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("50"), Estado: entity.ProductoActivo,
	})

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "media_docena", PrecioUnitario: decPtr("80")},
		},
	})
	require.NoError(t, err)
	// 80 por unidad base x 6 unidades.
	assert.True(t, dec("480").Equal(resp.Total))
}

func TestCreateVenta_UnidadDesconocidaFalla(t *testing.T) {
	uc, ventaRepo, _, _ := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("50"), Estado: entity.ProductoActivo,
	})

	_, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "tonelada"},
		},
	})
	require.Error(t, err)
	assert.Empty(t, ventaRepo.ventas)
}

func TestCreateVenta_ClienteDeOtraEmpresa(t *testing.T) {
	uc, _, _, clienteRepo := nuevoEntorno()
	clienteRepo.clientes["cliente-ajeno"] = &entity.Cliente{
		ID: "cliente-ajeno", CompanyID: "otra-empresa", Nombre: "Ajeno",
	}

	_, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-ajeno",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "unidad"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateVenta_MonedaFallback(t *testing.T) {
	uc, ventaRepo, _, _ := nuevoEntorno(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("50"), Estado: entity.ProductoActivo,
	})

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "unidad"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, MonedaPorDefecto, resp.Moneda)

	guardada, _ := ventaRepo.GetByID(resp.ID)
	assert.Equal(t, MonedaPorDefecto, guardada.Moneda)
}

func TestCreateVenta_MonedaDePreferenciasDelUsuario(t *testing.T) {
	clienteRepo := newFakeClienteRepo(&entity.Cliente{
		ID: "cliente-1", CompanyID: testCompanyID, Nombre: "María Pérez",
	})
	productoRepo := newFakeProductoRepo(&entity.Producto{
		ID: "prod-a", CompanyID: testCompanyID, Nombre: "Milanesa",
		Precio: dec("100"), Stock: dec("50"), Estado: entity.ProductoActivo,
	})
	ventaRepo := newFakeVentaRepo()
	ajustesRepo := &fakeAjustesRepo{ajustes: &entity.Ajustes{
		CompanyID: testCompanyID, UserID: testUserID, Moneda: "USD",
	}}
	uc := NewCreateVentaUseCase(&fakeTxRunner{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}, clienteRepo, productoRepo, ajustesRepo)

	resp, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
		Items: []dto.CreateVentaItemRequest{
			{ProductoID: "prod-a", Cantidad: dec("1"), TipoUnidad: "unidad"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Moneda)
}

func TestCreateVenta_SinItemsFalla(t *testing.T) {
	uc, _, _, _ := nuevoEntorno()

	_, err := uc.CreateVenta(context.Background(), testCompanyID, testUserID, dto.CreateVentaRequest{
		ClienteID: "cliente-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
