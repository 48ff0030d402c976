// Package analytics contiene el caso de uso del Panel Główny: saludo,
// estadísticas rápidas y comunicados.
package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

const dashboardSubtitle = "Oto co nowego w firmie. Miłego dnia!"

// DashboardUseCase genera el resumen del panel principal.
//
// Fuente de datos: los repositorios de registros (solo lectura).
// Los contadores se calculan en cada llamada, no se cachean.
type DashboardUseCase struct {
	releases      repository.WarehouseReleaseRepository
	returns       repository.CustomerReturnRepository
	leave         repository.LeaveRequestRepository
	timeOff       repository.TimeOffRequestRepository
	announcements []entity.Announcement
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	releases repository.WarehouseReleaseRepository,
	returns repository.CustomerReturnRepository,
	leave repository.LeaveRequestRepository,
	timeOff repository.TimeOffRequestRepository,
	announcements []entity.Announcement,
) *DashboardUseCase {
	return &DashboardUseCase{
		releases:      releases,
		returns:       returns,
		leave:         leave,
		timeOff:       timeOff,
		announcements: announcements,
	}
}

// GetSummary construye el DashboardDTO para el usuario indicado.
//
// Cuatro recuentos en paralelo:
//  1. WZ en estado Tymczasowe        → ReleasesToEnter
//  2. ZW pendientes de verificación  → ReturnsToVerify
//  3. Vacaciones pendientes          → PendingLeave
//  4. Salidas/entradas pendientes    → PendingTimeOff
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor dto.Actor) (*dto.DashboardDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	releasesCh := make(chan countResult, 1)
	returnsCh := make(chan countResult, 1)
	leaveCh := make(chan countResult, 1)
	timeOffCh := make(chan countResult, 1)

	go func() {
		list, err := uc.releases.List()
		releasesCh <- countResult{count(list, func(w *entity.WarehouseRelease) bool { return w.Status == entity.ReleaseTemporary }), err}
	}()
	go func() {
		list, err := uc.returns.List()
		returnsCh <- countResult{count(list, func(r *entity.CustomerReturn) bool { return r.Status == entity.ReturnPending }), err}
	}()
	go func() {
		list, err := uc.leave.List()
		leaveCh <- countResult{count(list, func(r *entity.LeaveRequest) bool { return r.Status == entity.RequestPending }), err}
	}()
	go func() {
		list, err := uc.timeOff.List()
		timeOffCh <- countResult{count(list, func(r *entity.TimeOffRequest) bool { return r.Status == entity.RequestPending }), err}
	}()

	results := [4]countResult{}
	for i, ch := range []chan countResult{releasesCh, returnsCh, leaveCh, timeOffCh} {
		select {
		case results[i] = <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for _, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %w", r.err)
		}
	}

	announcements := make([]dto.AnnouncementDTO, 0, len(uc.announcements))
	for _, a := range uc.announcements {
		announcements = append(announcements, dto.AnnouncementDTO{ID: a.ID, Title: a.Title, Date: a.Date, Content: a.Content})
	}

	return &dto.DashboardDTO{
		Greeting: fmt.Sprintf("Witaj z powrotem, %s!", firstName(actor.Name)),
		Subtitle: dashboardSubtitle,
		Stats: dto.QuickStatsDTO{
			ReleasesToEnter: results[0].n,
			ReturnsToVerify: results[1].n,
			PendingLeave:    results[2].n,
			PendingTimeOff:  results[3].n,
		},
		Announcements: announcements,
	}, nil
}

func count[T any](list []*T, keep func(*T) bool) int {
	n := 0
	for _, it := range list {
		if keep(it) {
			n++
		}
	}
	return n
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}
