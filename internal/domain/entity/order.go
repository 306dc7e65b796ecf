package entity

import "time"

// OrderStatus estado del ciclo de vida de una orden.
type OrderStatus string

// Estados válidos, en orden estricto de avance.
const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// statusRank ordena los estados; las transiciones solo avanzan, nunca retroceden.
var statusRank = map[OrderStatus]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusShipped:    2,
	StatusDelivered:  3,
}

// IsValid indica si el estado es uno de los cuatro conocidos.
func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank devuelve la posición del estado en el ciclo de vida (-1 si es desconocido).
func (s OrderStatus) Rank() int {
	r, ok := statusRank[s]
	if !ok {
		return -1
	}
	return r
}

// CanTransitionTo devuelve true solo si next es estrictamente posterior al
// estado actual. Repetir el mismo estado o retroceder no está permitido:
// reabrir una orden implica crear una nueva.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	cur, okCur := statusRank[s]
	nxt, okNext := statusRank[next]
	return okCur && okNext && nxt > cur
}

// Order representa una orden de un cliente sobre un producto.
// El producto se referencia por texto libre (SKU o nombre); puede no existir
// en el catálogo de inventario y aun así la orden es válida.
type Order struct {
	ID           string
	Company      string // empresa dueña de la orden, usada para el alcance por rol
	CustomerName string
	Product      string
	Quantity     int64 // siempre > 0
	Status       OrderStatus
	Date         time.Time // fecha de creación, inmutable
	CreatedAt    time.Time // desempate de orden de inserción
	UpdatedAt    time.Time
}
