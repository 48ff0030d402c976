package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/access"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

// Las solicitudes de vacaciones y de salida/entrada comparten reglas:
//   - Admin y Manager ven todas y deciden; Pracownik ve solo las suyas y no decide.
//   - Solo se decide una solicitud pendiente; decidir otra vez es ErrConflict.

// checkDecision valida quién decide y sobre qué estado.
func checkDecision(actor dto.Actor, current, next entity.RequestStatus) error {
	if !access.IsPrivileged(actor.Role) {
		return fmt.Errorf("%w: solo Admin o Manager deciden solicitudes", domain.ErrForbidden)
	}
	if next != entity.RequestApproved && next != entity.RequestRejected {
		return fmt.Errorf("%w: estado de decisión %q", domain.ErrInvalidInput, next)
	}
	if current != entity.RequestPending {
		return fmt.Errorf("%w: la solicitud ya está %q", domain.ErrConflict, current)
	}
	return nil
}

// decision devuelve el paso de estado que aplica checkDecision bajo el lock del repositorio,
// de modo que dos decisiones simultáneas no pueden pisarse.
func decision(actor dto.Actor, next entity.RequestStatus) func(entity.RequestStatus) (entity.RequestStatus, error) {
	return func(current entity.RequestStatus) (entity.RequestStatus, error) {
		if err := checkDecision(actor, current, next); err != nil {
			return current, err
		}
		return next, nil
	}
}

// LeaveUseCase solicitudes de vacaciones (Urlopy).
type LeaveUseCase struct {
	repo repository.LeaveRequestRepository
}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase(repo repository.LeaveRequestRepository) *LeaveUseCase {
	return &LeaveUseCase{repo: repo}
}

// Create registra una solicitud pendiente a nombre de actor.
func (uc *LeaveUseCase) Create(actor dto.Actor, in dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error) {
	start, err := dto.ParseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de inicio %q", domain.ErrInvalidInput, in.StartDate)
	}
	end, err := dto.ParseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de fin %q", domain.ErrInvalidInput, in.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: la fecha de fin es anterior a la de inicio", domain.ErrInvalidInput)
	}
	req := &entity.LeaveRequest{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		UserName:  actor.Name,
		LeaveType: entity.LeaveType(in.LeaveType),
		StartDate: start,
		EndDate:   end,
		Comment:   strings.TrimSpace(in.Comment),
		Status:    entity.RequestPending,
	}
	if err := uc.repo.Add(req); err != nil {
		return nil, err
	}
	return toLeaveRequestResponse(req), nil
}

// List devuelve las solicitudes visibles para actor.
func (uc *LeaveUseCase) List(actor dto.Actor) ([]dto.LeaveRequestResponse, error) {
	var (
		list []*entity.LeaveRequest
		err  error
	)
	if access.IsPrivileged(actor.Role) {
		list, err = uc.repo.List()
	} else {
		list, err = uc.repo.ListByUser(actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaveRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toLeaveRequestResponse(r))
	}
	return out, nil
}

// Decide acepta o rechaza una solicitud pendiente.
func (uc *LeaveUseCase) Decide(actor dto.Actor, id string, status entity.RequestStatus) (*dto.LeaveRequestResponse, error) {
	req, err := uc.repo.UpdateStatus(id, decision(actor, status))
	if err != nil {
		return nil, err
	}
	return toLeaveRequestResponse(req), nil
}

func toLeaveRequestResponse(r *entity.LeaveRequest) *dto.LeaveRequestResponse {
	if r == nil {
		return nil
	}
	return &dto.LeaveRequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		LeaveType: string(r.LeaveType),
		StartDate: dto.FormatDate(r.StartDate),
		EndDate:   dto.FormatDate(r.EndDate),
		Comment:   r.Comment,
		Status:    string(r.Status),
	}
}

// TimeOffUseCase solicitudes de salida anticipada o llegada tardía (Wyjścia/Wejścia).
type TimeOffUseCase struct {
	repo repository.TimeOffRequestRepository
}

// NewTimeOffUseCase construye el caso de uso.
func NewTimeOffUseCase(repo repository.TimeOffRequestRepository) *TimeOffUseCase {
	return &TimeOffUseCase{repo: repo}
}

// Create registra una solicitud pendiente a nombre de actor.
func (uc *TimeOffUseCase) Create(actor dto.Actor, in dto.CreateTimeOffRequest) (*dto.TimeOffRequestResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	req := &entity.TimeOffRequest{
		ID:          uuid.New().String(),
		UserID:      actor.UserID,
		UserName:    actor.Name,
		RequestType: entity.TimeOffType(in.RequestType),
		Date:        date,
		Time:        in.Time,
		Reason:      strings.TrimSpace(in.Reason),
		Status:      entity.RequestPending,
	}
	if err := uc.repo.Add(req); err != nil {
		return nil, err
	}
	return toTimeOffRequestResponse(req), nil
}

// List devuelve las solicitudes visibles para actor.
func (uc *TimeOffUseCase) List(actor dto.Actor) ([]dto.TimeOffRequestResponse, error) {
	var (
		list []*entity.TimeOffRequest
		err  error
	)
	if access.IsPrivileged(actor.Role) {
		list, err = uc.repo.List()
	} else {
		list, err = uc.repo.ListByUser(actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeOffRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toTimeOffRequestResponse(r))
	}
	return out, nil
}

// Decide acepta o rechaza una solicitud pendiente.
func (uc *TimeOffUseCase) Decide(actor dto.Actor, id string, status entity.RequestStatus) (*dto.TimeOffRequestResponse, error) {
	req, err := uc.repo.UpdateStatus(id, decision(actor, status))
	if err != nil {
		return nil, err
	}
	return toTimeOffRequestResponse(req), nil
}

func toTimeOffRequestResponse(r *entity.TimeOffRequest) *dto.TimeOffRequestResponse {
	if r == nil {
		return nil
	}
	return &dto.TimeOffRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		RequestType: string(r.RequestType),
		Date:        dto.FormatDate(r.Date),
		Time:        r.Time,
		Reason:      r.Reason,
		Status:      string(r.Status),
	}
}
