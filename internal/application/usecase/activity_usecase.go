package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// ActivityUseCase ciclo de vida de actividades CSR: alta en borrador, edición,
// y las transiciones submit/approve/reject. Toda mutación posterior al alta
// pasa por la cascada de recomputación para mantener los agregados frescos.
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
	profileRepo  repository.EmployeeProfileRepository
	classifier   ports.SDGClassifier
	estimator    ports.CarbonEstimator
	recompute    *dashboard.RecomputeService
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(
	activityRepo repository.ActivityRepository,
	profileRepo repository.EmployeeProfileRepository,
	classifier ports.SDGClassifier,
	estimator ports.CarbonEstimator,
	recompute *dashboard.RecomputeService,
) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		profileRepo:  profileRepo,
		classifier:   classifier,
		estimator:    estimator,
		recompute:    recompute,
	}
}

// Create registra una actividad en estado draft. La categoría SDG y el offset
// se derivan ya en el alta; los puntos quedan en 0 hasta la aprobación. El
// departamento se desnormaliza desde el perfil del empleado.
func (uc *ActivityUseCase) Create(ctx context.Context, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if in.Name == "" || in.ProfileID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Hours < 0 || in.DonationAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	profile, err := uc.profileRepo.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	code, err := uc.classifier.Classify(ctx, in.Description)
	if err != nil {
		return nil, err
	}
	offset, err := uc.estimator.EstimateOffset(ctx, code, in.Hours)
	if err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = profile.Currency
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	a := &entity.Activity{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		ProfileID:            profile.ID,
		DepartmentID:         profile.DepartmentID,
		Date:                 date,
		Hours:                in.Hours,
		DonationAmount:       in.DonationAmount,
		Currency:             currency,
		Description:          in.Description,
		ProofFilename:        in.ProofFilename,
		Status:               entity.StatusDraft,
		SDGCategory:          code,
		CarbonOffsetEstimate: offset,
		ImpactPoints:         0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.activityRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// GetByID obtiene una actividad por ID.
func (uc *ActivityUseCase) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	a, err := uc.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toActivityResponse(a), nil
}

// Update edita los campos base de una actividad draft o submitted y rederiva
// sus campos calculados. Actividades aprobadas o rechazadas no se editan.
func (uc *ActivityUseCase) Update(ctx context.Context, id string, in dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	a, err := uc.recompute.CascadeActivity(ctx, id, func(a *entity.Activity) error {
		if !a.Editable() {
			return domain.ErrConflict
		}
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Date != nil {
			a.Date = *in.Date
		}
		if in.Hours != nil {
			if *in.Hours < 0 {
				return domain.ErrInvalidInput
			}
			a.Hours = *in.Hours
		}
		if in.DonationAmount != nil {
			if in.DonationAmount.IsNegative() {
				return domain.ErrInvalidInput
			}
			a.DonationAmount = *in.DonationAmount
		}
		if in.Description != nil {
			a.Description = *in.Description
		}
		if in.ProofFilename != nil {
			a.ProofFilename = *in.ProofFilename
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// Submit pasa la actividad de draft a submitted.
func (uc *ActivityUseCase) Submit(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	return uc.transition(ctx, id, entity.StatusDraft, entity.StatusSubmitted)
}

// Approve pasa la actividad de submitted a approved. Es la transición que
// activa los puntos de impacto y suma la actividad a todos los agregados.
func (uc *ActivityUseCase) Approve(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	return uc.transition(ctx, id, entity.StatusSubmitted, entity.StatusApproved)
}

// Reject pasa la actividad de submitted a rejected.
func (uc *ActivityUseCase) Reject(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	return uc.transition(ctx, id, entity.StatusSubmitted, entity.StatusRejected)
}

func (uc *ActivityUseCase) transition(ctx context.Context, id, from, to string) (*dto.ActivityResponse, error) {
	a, err := uc.recompute.CascadeActivity(ctx, id, func(a *entity.Activity) error {
		if a.Status != from {
			return domain.ErrInvalidTransition
		}
		a.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// List lista actividades con paginación.
func (uc *ActivityUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ActivityListResponse, error) {
	page.DefaultPage()
	list, err := uc.activityRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ActivityListResponse{
		Items: make([]dto.ActivityResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range list {
		resp.Items = append(resp.Items, *toActivityResponse(&list[i]))
	}
	return resp, nil
}

// ListByProfile lista las actividades de un perfil.
func (uc *ActivityUseCase) ListByProfile(ctx context.Context, profileID string) (*dto.ActivityListResponse, error) {
	list, err := uc.activityRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ActivityListResponse{Items: make([]dto.ActivityResponse, 0, len(list))}
	for i := range list {
		resp.Items = append(resp.Items, *toActivityResponse(&list[i]))
	}
	return resp, nil
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:                   a.ID,
		Name:                 a.Name,
		ProfileID:            a.ProfileID,
		DepartmentID:         a.DepartmentID,
		Date:                 a.Date,
		Hours:                a.Hours,
		DonationAmount:       a.DonationAmount,
		Currency:             a.Currency,
		Description:          a.Description,
		ProofFilename:        a.ProofFilename,
		Status:               a.Status,
		SDGCategory:          string(a.SDGCategory),
		SDGLabel:             a.SDGCategory.Label(),
		CarbonOffsetEstimate: a.CarbonOffsetEstimate,
		ImpactPoints:         a.ImpactPoints,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}
