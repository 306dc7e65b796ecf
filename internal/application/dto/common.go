package dto

import "github.com/jhoicas/stockswift-api/internal/domain/entity"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Scope es el alcance de autorización que el caller entrega explícitamente a
// los motores de órdenes y reportes: el motor lo recibe como parámetro y lo
// confía tal cual (la autenticación es responsabilidad del borde HTTP).
type Scope struct {
	Role    string // entity.RoleClient | entity.RoleStaff
	Company string
}

// Unrestricted indica si el alcance ve todas las órdenes (rol staff).
func (s Scope) Unrestricted() bool {
	return s.Role == entity.RoleStaff
}
