package clientes

import "time"

// Cliente representa al dueño de cero o más porcinos, identificado por
// su cédula (única en todo el sistema).
type Cliente struct {
	ID      string
	Cedula  string
	Nombres string
	// Apellidos es obligatorio; dirección y teléfono son opcionales.
	Apellidos string
	Direccion string
	Telefono  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PorcinoResumen es la vista de un porcino que se anida en las lecturas
// de clientes. Se declara aquí (y no en el módulo porcinos) para que el
// módulo clientes no dependa de porcinos: la dependencia va en la otra
// dirección.
type PorcinoResumen struct {
	ID             string  `json:"id"`
	Identificacion string  `json:"identificacion"`
	Raza           int     `json:"raza"`
	RazaNombre     string  `json:"razaNombre,omitempty"`
	Edad           float64 `json:"edad"`
	Peso           float64 `json:"peso"`
	AlimentacionID string  `json:"alimentacionId"`
}
