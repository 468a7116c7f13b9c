package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// ProfileUseCase perfiles CSR de empleados: alta, consulta con ranking,
// leaderboard, publicación social simulada y vista de canje de puntos.
type ProfileUseCase struct {
	profileRepo    repository.EmployeeProfileRepository
	departmentRepo repository.DepartmentRepository
	rewardRepo     repository.RewardRepository
	publisher      ports.SocialPublisher
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(
	profileRepo repository.EmployeeProfileRepository,
	departmentRepo repository.DepartmentRepository,
	rewardRepo repository.RewardRepository,
	publisher ports.SocialPublisher,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:    profileRepo,
		departmentRepo: departmentRepo,
		rewardRepo:     rewardRepo,
		publisher:      publisher,
	}
}

// Create da de alta el perfil CSR de un empleado. Un empleado tiene a lo sumo
// un perfil; el repositorio devuelve domain.ErrDuplicate si ya existe.
func (uc *ProfileUseCase) Create(ctx context.Context, in dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if in.EmployeeID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DepartmentID != "" {
		d, err := uc.departmentRepo.GetByID(ctx, in.DepartmentID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, domain.ErrNotFound
		}
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	now := time.Now()
	p := &entity.EmployeeProfile{
		ID:             uuid.New().String(),
		EmployeeID:     in.EmployeeID,
		Name:           in.Name,
		DepartmentID:   in.DepartmentID,
		Currency:       currency,
		DonationAmount: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// GetByID obtiene un perfil con su posición en el ranking global. El ranking
// se calcula sobre toda la población en cada consulta, no se materializa.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ranks := csr.Ranks(all)
	resp := toProfileResponse(p)
	resp.RankByTotal = ranks.ByTotal[p.ID]
	resp.RankByImprovement = ranks.ByImprovement[p.ID]
	resp.RankDisplay = fmt.Sprintf("#%d", resp.RankByTotal)
	return resp, nil
}

// List lista todos los perfiles.
func (uc *ProfileUseCase) List(ctx context.Context) (*dto.ProfileListResponse, error) {
	all, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProfileListResponse{Items: make([]dto.ProfileResponse, 0, len(all))}
	for i := range all {
		resp.Items = append(resp.Items, *toProfileResponse(&all[i]))
	}
	return resp, nil
}

// Leaderboard devuelve los perfiles ordenados descendente por puntos totales,
// con posición 1..P. Empates por ID ascendente.
func (uc *ProfileUseCase) Leaderboard(ctx context.Context) (*dto.LeaderboardResponse, error) {
	all, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ranks := csr.Ranks(all)
	sort.Slice(all, func(i, j int) bool {
		return ranks.ByTotal[all[i].ID] < ranks.ByTotal[all[j].ID]
	})
	resp := &dto.LeaderboardResponse{Items: make([]dto.ProfileResponse, 0, len(all))}
	for i := range all {
		r := toProfileResponse(&all[i])
		r.RankByTotal = ranks.ByTotal[all[i].ID]
		r.RankByImprovement = ranks.ByImprovement[all[i].ID]
		r.RankDisplay = fmt.Sprintf("#%d", r.RankByTotal)
		resp.Items = append(resp.Items, *r)
	}
	return resp, nil
}

// Share arma la publicación social con el resumen del perfil. La publicación
// es simulada: se devuelve el mensaje con posted=false, nunca hay post real.
func (uc *ProfileUseCase) Share(ctx context.Context, id string) (*dto.ShareResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	msg, err := uc.publisher.ShareUpdate(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.ShareResponse{Message: msg, Posted: false}, nil
}

// RedeemView devuelve el saldo de puntos del perfil y el catálogo de premios
// activos, marcando cuáles alcanza el saldo. Consulta pura: no descuenta nada.
func (uc *ProfileUseCase) RedeemView(ctx context.Context, id string) (*dto.RedeemViewResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	rewards, err := uc.rewardRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.RedeemViewResponse{
		ProfileID:     p.ID,
		PointsBalance: p.TotalImpactPoints,
		Rewards:       make([]dto.RewardResponse, 0, len(rewards)),
	}
	for _, r := range rewards {
		resp.Rewards = append(resp.Rewards, dto.RewardResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			PointsCost:  r.PointsCost,
			Affordable:  p.TotalImpactPoints >= r.PointsCost,
		})
	}
	return resp, nil
}

// ListRewards lista el catálogo de premios activos sin contexto de perfil:
// Affordable queda en false porque no hay saldo contra el cual compararlo.
func (uc *ProfileUseCase) ListRewards(ctx context.Context) (*dto.RewardListResponse, error) {
	rewards, err := uc.rewardRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.RewardListResponse{Items: make([]dto.RewardResponse, 0, len(rewards))}
	for _, r := range rewards {
		resp.Items = append(resp.Items, dto.RewardResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			PointsCost:  r.PointsCost,
		})
	}
	return resp, nil
}

func toProfileResponse(p *entity.EmployeeProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		Name:              p.Name,
		DepartmentID:      p.DepartmentID,
		Currency:          p.Currency,
		TotalImpactPoints: p.TotalImpactPoints,
		VolunteeringHours: p.VolunteeringHours,
		DonationAmount:    p.DonationAmount,
		LastQuarterPoints: p.LastQuarterPoints,
		PointImprovement:  p.PointImprovement,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
