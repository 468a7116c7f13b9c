package simulation

import (
	"context"
	"fmt"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/pkg/logger"
)

var _ ports.SocialPublisher = (*SocialPublisher)(nil)

// SocialPublisher arma el texto de la publicación social con el resumen del
// perfil. Nunca publica: solo devuelve el mensaje que se publicaría.
type SocialPublisher struct {
	log *logger.Logger
}

// NewSocialPublisher construye el publicador simulado.
func NewSocialPublisher(log *logger.Logger) *SocialPublisher {
	return &SocialPublisher{log: log.Component("simulation")}
}

// ShareUpdate formatea el mensaje con horas y puntos del perfil.
func (p *SocialPublisher) ShareUpdate(_ context.Context, profile *entity.EmployeeProfile) (string, error) {
	msg := fmt.Sprintf(
		"Proud to share my social impact! I have volunteered %.1f hours and earned %d impact points in our company's CSR program. #CSR #SocialImpact",
		profile.VolunteeringHours, profile.TotalImpactPoints,
	)
	p.log.Info().Str("profile_id", profile.ID).Msg("publicación social simulada (no se envía)")
	return msg, nil
}
