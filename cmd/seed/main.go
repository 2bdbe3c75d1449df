// seed genera un script SQL con datos de demostración (empresa, usuario admin,
// clientes, productos, ventas y gastos) para levantar un entorno local.
//
// Uso: go run ./cmd/seed [archivo_salida.sql]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
//
// El password del usuario admin demo es "admin123" (hash bcrypt precalculado).
package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	empresaID = "a0000000-0000-4000-8000-000000000001"
	adminID   = "b0000000-0000-4000-8000-000000000001"

	// bcrypt de "admin123", cost 10
	adminHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

type clienteDemo struct {
	id, nombre, email, telefono, direccion, fechaRegistro, estado string
}

type productoDemo struct {
	id, nombre, descripcion string
	precio                  string
	precioMediaDocena       string // vacío = sin tramo
	precioDocena            string
	categoria               string
	stock                   string
}

var clientes = []clienteDemo{
	{"c0000000-0000-4000-8000-000000000001", "Juan Pérez", "juan.perez@ejemplo.com", "555-123-4567", "Calle Principal 123, Ciudad", "2026-01-15", "activo"},
	{"c0000000-0000-4000-8000-000000000002", "María González", "maria.gonzalez@ejemplo.com", "555-987-6543", "Avenida Central 456, Ciudad", "2026-02-20", "activo"},
	{"c0000000-0000-4000-8000-000000000003", "Carlos Rodríguez", "carlos.rodriguez@ejemplo.com", "555-789-0123", "Plaza Mayor 789, Ciudad", "2026-03-10", "activo"},
	{"c0000000-0000-4000-8000-000000000004", "Ana Martínez", "ana.martinez@ejemplo.com", "555-456-7890", "Calle Secundaria 234, Ciudad", "2026-04-05", "inactivo"},
	{"c0000000-0000-4000-8000-000000000005", "Pedro Sánchez", "pedro.sanchez@ejemplo.com", "555-234-5678", "Avenida Principal 567, Ciudad", "2026-05-12", "activo"},
}

var productos = []productoDemo{
	{"d0000000-0000-4000-8000-000000000001", "Lasaña Clásica", "Lasaña tradicional con carne y salsa de tomate", "320", "", "", "lasañas", "5"},
	{"d0000000-0000-4000-8000-000000000002", "Lasaña Vegetariana", "Lasaña con vegetales frescos y salsa de tomate", "290", "", "", "lasañas", "3"},
	{"d0000000-0000-4000-8000-000000000003", "Pizza Margarita", "Pizza clásica con tomate, mozzarella y albahaca", "250", "", "", "pizzas", "12"},
	{"d0000000-0000-4000-8000-000000000004", "Pizza Pepperoni", "Pizza con pepperoni y queso mozzarella", "280", "", "", "pizzas", "10"},
	{"d0000000-0000-4000-8000-000000000005", "Empanada de Carne", "Empanada criolla de carne cortada a cuchillo", "60", "330", "600", "empanadas", "48"},
	{"d0000000-0000-4000-8000-000000000006", "Milanesa de Ternera", "Milanesa de nalga empanada, por kilo", "540", "", "", "milanesas", "7.5"},
	{"d0000000-0000-4000-8000-000000000007", "Salsa Bolognesa", "Salsa de carne para pastas, por kilo", "380", "", "", "salsas", "4"},
	{"d0000000-0000-4000-8000-000000000008", "Tarta de Jamón y Queso", "Tarta casera de jamón y queso", "310", "", "", "tartas", "6"},
}

func main() {
	out := "internal/infrastructure/postgres/migrations/002_seed_demo.sql"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Datos de demostración. Generado con: go run ./cmd/seed\n")
	b.WriteString("-- Usuario demo: admin@demo.local / admin123\n\n")

	fmt.Fprintf(&b, "INSERT INTO empresas (id, nombre, direccion, telefono, email, estado)\nVALUES ('%s', %s, %s, %s, %s, 'active')\nON CONFLICT (id) DO NOTHING;\n\n",
		empresaID, q("Pastas Demo SRL"), q("Av. 18 de Julio 1234, Montevideo"), q("+598 99 123 456"), q("contacto@demo.local"))

	fmt.Fprintf(&b, "INSERT INTO usuarios (id, company_id, email, password_hash, nombre, rol)\nVALUES ('%s', '%s', %s, %s, %s, 'admin')\nON CONFLICT (id) DO NOTHING;\n\n",
		adminID, empresaID, q("admin@demo.local"), q(adminHash), q("Administrador"))

	b.WriteString("-- Clientes\n")
	for _, c := range clientes {
		fmt.Fprintf(&b, "INSERT INTO clientes (id, company_id, nombre, email, telefono, direccion, fecha_registro, estado)\nVALUES ('%s', '%s', %s, %s, %s, %s, '%s', '%s')\nON CONFLICT (id) DO NOTHING;\n",
			c.id, empresaID, q(c.nombre), q(c.email), q(c.telefono), q(c.direccion), c.fechaRegistro, c.estado)
	}

	b.WriteString("\n-- Productos\n")
	for _, p := range productos {
		fmt.Fprintf(&b, "INSERT INTO productos (id, company_id, nombre, descripcion, precio, precio_media_docena, precio_docena, categoria, stock)\nVALUES ('%s', '%s', %s, %s, %s, %s, %s, %s, %s)\nON CONFLICT (id) DO NOTHING;\n",
			p.id, empresaID, q(p.nombre), q(p.descripcion), p.precio, nullable(p.precioMediaDocena), nullable(p.precioDocena), q(p.categoria), p.stock)
	}

	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Seed generado: %s (%d clientes, %d productos)\n", out, len(clientes), len(productos))
}

// q escapa comillas simples y envuelve el valor para SQL.
func q(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// nullable devuelve NULL para strings vacíos, el número tal cual si no.
func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return s
}
