package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okasc/intranet-api/internal/application/analytics"
	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/infrastructure/memory"
)

func newDashboard() (*analytics.DashboardUseCase, *memory.WarehouseReleaseRepository) {
	releases := memory.NewWarehouseReleaseRepository(memory.SeedWarehouseReleases()...)
	uc := analytics.NewDashboardUseCase(
		releases,
		memory.NewCustomerReturnRepository(memory.SeedCustomerReturns()...),
		memory.NewLeaveRequestRepository(memory.SeedLeaveRequests()...),
		memory.NewTimeOffRequestRepository(memory.SeedTimeOffRequests()...),
		memory.Announcements(),
	)
	return uc, releases
}

func TestGetSummary_SaludoYContadores(t *testing.T) {
	uc, _ := newDashboard()
	actor := dto.Actor{UserID: 6, Name: "Wojciech Godziek", Role: entity.RoleAdmin}

	got, err := uc.GetSummary(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, "Witaj z powrotem, Wojciech!", got.Greeting)
	assert.Equal(t, "Oto co nowego w firmie. Miłego dnia!", got.Subtitle)
	assert.Equal(t, dto.QuickStatsDTO{ReleasesToEnter: 1, ReturnsToVerify: 1, PendingLeave: 1, PendingTimeOff: 1}, got.Stats)
	require.Len(t, got.Announcements, 2)
	assert.Equal(t, "Integracja firmowa w przyszły piątek!", got.Announcements[0].Title)
}

func TestGetSummary_ContadoresEnVivo(t *testing.T) {
	uc, releases := newDashboard()
	_, err := releases.Add(func(seq int) *entity.WarehouseRelease {
		return &entity.WarehouseRelease{ID: "nuevo", Client: "Test", Status: entity.ReleaseTemporary}
	})
	require.NoError(t, err)

	got, err := uc.GetSummary(context.Background(), dto.Actor{Name: "Piotr Brzyski"})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stats.ReleasesToEnter)
}

func TestGetSummary_ContextoCancelado(t *testing.T) {
	uc, _ := newDashboard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Con el contexto ya cancelado puede ganar cualquiera de los dos casos del select;
	// solo se exige que no bloquee y que un error sea de contexto.
	_, err := uc.GetSummary(ctx, dto.Actor{Name: "Piotr"})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
