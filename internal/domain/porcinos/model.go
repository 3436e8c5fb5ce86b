package porcinos

import "time"

// Códigos de raza soportados. Se persiste el código; el nombre se
// calcula en cada lectura y nunca se guarda.
const (
	RazaYork  = 1
	RazaHamp  = 2
	RazaDuroc = 3
)

var nombresRaza = map[int]string{
	RazaYork:  "York",
	RazaHamp:  "Hamp",
	RazaDuroc: "Duroc",
}

// RazaNombre devuelve el nombre de la raza o "" si el código no está
// definido (el caller lo omite, no se corrige el dato almacenado).
func RazaNombre(code int) string { return nombresRaza[code] }

// RazaValida reporta si el código pertenece a {1, 2, 3}.
func RazaValida(code int) bool {
	_, ok := nombresRaza[code]
	return ok
}

// Porcino representa un animal registrado: pertenece a un cliente (que
// arrastra su ciclo de vida) y referencia un plan de alimentación sin
// ser dueño de él.
type Porcino struct {
	ID             string
	Identificacion string // única en todo el sistema
	Raza           int
	Edad           float64 // meses, >= 0
	Peso           float64 // kg, >= 0
	ClienteID      string
	AlimentacionID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
