package entity

import "time"

// Opportunity es un proyecto externo de voluntariado/donación sugerido por un
// colaborador (ej. GlobalGiving), etiquetado con el SDG que ataca.
// Se consume read-only desde el núcleo de agregación.
type Opportunity struct {
	ID          string
	Name        string
	SourceOrg   string // ONG u organización origen
	SDGCode     SDGCode
	Date        time.Time
	Location    string
	Description string
	CreatedAt   time.Time
}
