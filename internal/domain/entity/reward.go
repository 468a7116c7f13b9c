package entity

import "time"

// Reward es un premio canjeable por puntos de impacto.
type Reward struct {
	ID          string
	Name        string
	Description string
	PointsCost  int
	IsActive    bool
	CreatedAt   time.Time
}
