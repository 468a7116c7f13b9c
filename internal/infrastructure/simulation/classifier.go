// Package simulation implementa los puertos externos con adaptadores
// deterministas sin red: clasificación de SDG, estimación de carbono, fuente
// de oportunidades, publicación social y geocodificación. Una integración real
// sustituye el adaptador sin tocar las capas superiores.
package simulation

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/pkg/logger"
)

var _ ports.SDGClassifier = (*Classifier)(nil)

// Classifier clasificador de SDG por palabras clave sobre la descripción.
type Classifier struct {
	log *logger.Logger
}

// NewClassifier construye el clasificador simulado.
func NewClassifier(log *logger.Logger) *Classifier {
	return &Classifier{log: log.Component("simulation")}
}

// Classify delega en el clasificador de palabras clave del dominio. Nunca
// falla: descripción vacía o sin coincidencias cae en "other".
func (c *Classifier) Classify(_ context.Context, description string) (entity.SDGCode, error) {
	code := csr.ClassifySDG(description)
	c.log.Debug().Str("sdg", string(code)).Msg("clasificación simulada de actividad")
	return code, nil
}
