package alimentaciones

import "time"

// Alimentacion representa un plan de alimentación que los porcinos
// referencian sin ser dueños de él.
type Alimentacion struct {
	ID          string
	Descripcion string
	Dosis       string // texto libre, p.ej. "2kg/día"

	CreatedAt time.Time
	UpdatedAt time.Time
}
