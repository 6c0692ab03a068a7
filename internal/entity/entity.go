package entity

import "errors"

// ErrNotFound lo devuelven todos los repositorios cuando el id/slug no existe.
var ErrNotFound = errors.New("registro no encontrado")

// Visibility controla qué registros devuelven los listados.
// Las vistas públicas solo ven published=true; el CMS puede pedirlo todo.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityAll
)

// Patch es el conjunto de columnas a actualizar en un update parcial.
// La clave es el nombre de la columna en la base de datos.
type Patch map[string]any
