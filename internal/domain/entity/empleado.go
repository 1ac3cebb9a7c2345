package entity

// Roles válidos para Empleado.
const (
	RolAdministrador  = "administrador"
	RolCocinero       = "cocinero"
	RolRepartidor     = "repartidor"
	RolMozo           = "mozo"
	RolEncargadoStock = "encargado_stock"
)

// Áreas válidas para Empleado.
const (
	AreaCocina         = "cocina"
	AreaReparto        = "reparto"
	AreaSalon          = "salon"
	AreaInventario     = "inventario"
	AreaAdministracion = "administracion"
)

// Empleado representa un empleado del restaurante.
// La baja es lógica: Activo pasa a false y el registro nunca se elimina.
type Empleado struct {
	ID           string
	Nombre       string
	Apellido     string
	Email        string // único entre empleados activos
	Telefono     string
	Rol          string
	Area         string
	FechaIngreso string // YYYY-MM-DD
	Activo       bool
}

// NombreCompleto devuelve "Nombre Apellido" para enriquecer tareas.
func (e *Empleado) NombreCompleto() string {
	return e.Nombre + " " + e.Apellido
}

// CatalogoItem entrada del catálogo de referencia de roles o áreas.
type CatalogoItem struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

// Roles devuelve el catálogo de roles (equivalente al roles.json de referencia).
func Roles() []CatalogoItem {
	return []CatalogoItem{
		{Nombre: RolAdministrador, Descripcion: "Gestión general del local", Activo: true},
		{Nombre: RolCocinero, Descripcion: "Preparación de pedidos en cocina", Activo: true},
		{Nombre: RolRepartidor, Descripcion: "Entrega de pedidos delivery", Activo: true},
		{Nombre: RolMozo, Descripcion: "Atención de mesas en salón", Activo: true},
		{Nombre: RolEncargadoStock, Descripcion: "Control de inventario e insumos", Activo: true},
	}
}

// Areas devuelve el catálogo de áreas (equivalente al areas.json de referencia).
func Areas() []CatalogoItem {
	return []CatalogoItem{
		{Nombre: AreaCocina, Descripcion: "Cocina y preparación", Activo: true},
		{Nombre: AreaReparto, Descripcion: "Logística de entregas", Activo: true},
		{Nombre: AreaSalon, Descripcion: "Atención al público", Activo: true},
		{Nombre: AreaInventario, Descripcion: "Depósito e insumos", Activo: true},
		{Nombre: AreaAdministracion, Descripcion: "Administración y caja", Activo: true},
	}
}

// RolValido verifica que el rol exista en el catálogo y esté activo.
func RolValido(rol string) bool {
	for _, r := range Roles() {
		if r.Nombre == rol && r.Activo {
			return true
		}
	}
	return false
}

// AreaValida verifica que el área exista en el catálogo y esté activa.
func AreaValida(area string) bool {
	for _, a := range Areas() {
		if a.Nombre == area && a.Activo {
			return true
		}
	}
	return false
}
