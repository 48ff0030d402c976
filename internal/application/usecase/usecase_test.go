package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/infrastructure/memory"
	"github.com/okasc/intranet-api/pkg/password"
)

func init() { password.Cost = bcrypt.MinCost }

var (
	admin    = dto.Actor{UserID: 1, Name: "Piotr Brzyski", Title: "Administrator", Role: entity.RoleAdmin}
	manager  = dto.Actor{UserID: 2, Name: "Jacek Strzadała", Title: "Kierownik Biura", Role: entity.RoleManager}
	dawid    = dto.Actor{UserID: 3, Name: "Dawid Strzadała", Title: "Pracownik Magazynu", Role: entity.RoleEmployee}
	adrian   = dto.Actor{UserID: 4, Name: "Adrian Strządała", Title: "Specjalista ds. Sprzedaży", Role: entity.RoleEmployee}
	fixedNow = func() time.Time { return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC) }
)

// ─── Wydania Magazynowe (WZ) ────────────────────────────────────────────────

func TestWarehouseRelease_CreateSobreSemillaAsigna003Temporal(t *testing.T) {
	uc := usecase.NewWarehouseReleaseUseCase(memory.NewWarehouseReleaseRepository(memory.SeedWarehouseReleases()...))
	uc.SetNow(fixedNow)

	wz, err := uc.Create(manager, dto.CreateWarehouseReleaseRequest{
		Client: "Test",
		Items:  []dto.LineItemRequest{{Name: "Cement", Quantity: decimal.NewFromInt(10), Unit: "wor."}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WZ/2025/03/003", wz.DocNumber)
	assert.Equal(t, string(entity.ReleaseTemporary), wz.Status)
	assert.Equal(t, "2025-03-14", wz.IssueDate)
	assert.Equal(t, manager.Name, wz.IssuedBy)
	assert.Equal(t, 1, wz.Items[0].Lp)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, wz.ID, list[0].ID)
}

func TestWarehouseRelease_CantidadCeroRechazada(t *testing.T) {
	uc := usecase.NewWarehouseReleaseUseCase(memory.NewWarehouseReleaseRepository())
	_, err := uc.Create(manager, dto.CreateWarehouseReleaseRequest{
		Client: "Test",
		Items:  []dto.LineItemRequest{{Name: "Cement", Quantity: decimal.Zero, Unit: "wor."}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseRelease_MarkEnteredNoVuelveAtras(t *testing.T) {
	uc := usecase.NewWarehouseReleaseUseCase(memory.NewWarehouseReleaseRepository(memory.SeedWarehouseReleases()...))
	list, _ := uc.List()
	id := list[0].ID
	require.Equal(t, string(entity.ReleaseTemporary), list[0].Status)

	first, err := uc.MarkEntered(id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReleaseEntered), first.Status)

	second, err := uc.MarkEntered(id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReleaseEntered), second.Status)
}

func TestWarehouseRelease_NoEncontrado(t *testing.T) {
	uc := usecase.NewWarehouseReleaseUseCase(memory.NewWarehouseReleaseRepository())
	_, err := uc.MarkEntered("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseRelease_FechaYNumeroEnHoraPolaca(t *testing.T) {
	uc := usecase.NewWarehouseReleaseUseCase(memory.NewWarehouseReleaseRepository())
	// 28.02 23:30 UTC ya es 1 de marzo en Varsovia.
	uc.SetNow(func() time.Time { return time.Date(2025, time.February, 28, 23, 30, 0, 0, time.UTC) })

	wz, err := uc.Create(manager, dto.CreateWarehouseReleaseRequest{
		Client: "Test",
		Items:  []dto.LineItemRequest{{Name: "Cement", Quantity: decimal.NewFromInt(1), Unit: "wor."}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WZ/2025/03/001", wz.DocNumber)
	assert.Equal(t, "2025-03-01", wz.IssueDate)
}

// ─── Zwroty (ZW) ────────────────────────────────────────────────────────────

func TestCustomerReturn_CreateYAccept(t *testing.T) {
	uc := usecase.NewCustomerReturnUseCase(memory.NewCustomerReturnRepository(memory.SeedCustomerReturns()...))
	uc.SetNow(fixedNow)

	zw, err := uc.Create(dawid, dto.CreateCustomerReturnRequest{
		Client:           "Klient B",
		OriginalWzNumber: "WZ/2025/03/003",
		Items: []dto.ReturnItemRequest{
			{Name: "Klej", Quantity: decimal.RequireFromString("2.5"), Unit: "kg", Reason: "Uszkodzony"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ZW/2025/03/003", zw.DocNumber)
	assert.Equal(t, string(entity.ReturnPending), zw.Status)
	assert.Equal(t, dawid.Name, zw.ReceivedBy)

	accepted, err := uc.Accept(zw.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReturnAccepted), accepted.Status)

	again, err := uc.Accept(zw.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReturnAccepted), again.Status)
}

func TestCustomerReturn_NumeroWZMalFormadoRechazado(t *testing.T) {
	uc := usecase.NewCustomerReturnUseCase(memory.NewCustomerReturnRepository())
	_, err := uc.Create(dawid, dto.CreateCustomerReturnRequest{
		Client:           "Klient B",
		OriginalWzNumber: "ZW/2025/03/003",
		Items:            []dto.ReturnItemRequest{{Name: "Klej", Quantity: decimal.NewFromInt(1), Unit: "kg"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Produkcja y Usługi ─────────────────────────────────────────────────────

func TestProduction_CreateYToggleIdaYVuelta(t *testing.T) {
	uc := usecase.NewProductionUseCase(memory.NewProductionOrderRepository(memory.SeedProductionOrders()...))
	uc.SetNow(fixedNow)

	order, err := uc.Create(adrian, dto.CreateProductionOrderRequest{
		Client: "Budimex",
		Items: []dto.ProductionItemRequest{
			{Palette: "Atlas", ProductType: "Tynk", Base: "A", Color: "Biały", Capacity: "25kg", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "PROD/2025/03/003", order.OrderNumber)
	assert.Equal(t, adrian.Name, order.CreatedBy)
	assert.Equal(t, string(entity.ProductionToDo), order.Status)

	done, err := uc.ToggleStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ProductionDone), done.Status)

	back, err := uc.ToggleStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ProductionToDo), back.Status)
}

func TestProduction_TogglesSimultaneosNoSePierden(t *testing.T) {
	uc := usecase.NewProductionUseCase(memory.NewProductionOrderRepository(memory.SeedProductionOrders()...))
	list, _ := uc.List()
	order := list[0]

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.ToggleStatus(order.ID)
		}()
	}
	wg.Wait()

	after, err := uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Status, after.Status, "un número par de toggles deja el estado inicial")
}

func TestProduction_ValidaLineas(t *testing.T) {
	uc := usecase.NewProductionUseCase(memory.NewProductionOrderRepository())

	_, err := uc.Create(adrian, dto.CreateProductionOrderRequest{Client: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(adrian, dto.CreateProductionOrderRequest{
		Client: "X",
		Items:  []dto.ProductionItemRequest{{Palette: "Atlas", ProductType: "Tynk", Color: "Biały", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(adrian, dto.CreateProductionOrderRequest{
		Client: "X",
		Items:  []dto.ProductionItemRequest{{Palette: "Dulux", ProductType: "Tynk", Color: "Biały", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_CreateYToggleSettled(t *testing.T) {
	uc := usecase.NewServiceUseCase(memory.NewServiceRepository())
	price := decimal.RequireFromString("450.00")

	svc, err := uc.Create(manager, dto.CreateServiceRequest{
		ClientName:    "Jan Nowak",
		Location:      "Rybnik",
		ServiceDate:   "2025-03-10",
		DurationHours: decimal.RequireFromString("3.5"),
		Kilometers:    42,
		Description:   "Pomiar okien",
		AgreedPrice:   &price,
	})
	require.NoError(t, err)
	assert.False(t, svc.IsSettled)
	assert.Equal(t, "Do rozliczenia", svc.SettlementLabel)
	assert.Equal(t, manager.Name, svc.CreatedBy)

	settled, err := uc.ToggleSettled(svc.ID)
	require.NoError(t, err)
	assert.True(t, settled.IsSettled)
	assert.Equal(t, "Rozliczone", settled.SettlementLabel)

	unsettled, err := uc.ToggleSettled(svc.ID)
	require.NoError(t, err)
	assert.False(t, unsettled.IsSettled)
}

func TestService_DuracionCeroRechazada(t *testing.T) {
	uc := usecase.NewServiceUseCase(memory.NewServiceRepository())
	_, err := uc.Create(manager, dto.CreateServiceRequest{
		ClientName: "X", Location: "Y", ServiceDate: "2025-03-10", Description: "Z",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Urlopy y Wyjścia/Wejścia ───────────────────────────────────────────────

func TestLeave_PracownikSoloVeLasSuyas(t *testing.T) {
	uc := usecase.NewLeaveUseCase(memory.NewLeaveRequestRepository(memory.SeedLeaveRequests()...))

	own, err := uc.List(dawid)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, r := range own {
		assert.Equal(t, dawid.UserID, r.UserID)
	}

	all, err := uc.List(manager)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLeave_CreatePendienteConAutor(t *testing.T) {
	uc := usecase.NewLeaveUseCase(memory.NewLeaveRequestRepository())
	req, err := uc.Create(adrian, dto.CreateLeaveRequest{
		LeaveType: string(entity.LeaveVacation), StartDate: "2025-07-01", EndDate: "2025-07-14",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RequestPending), req.Status)
	assert.Equal(t, adrian.UserID, req.UserID)
	assert.Equal(t, adrian.Name, req.UserName)
}

func TestLeave_FinAntesDeInicioRechazada(t *testing.T) {
	uc := usecase.NewLeaveUseCase(memory.NewLeaveRequestRepository())
	_, err := uc.Create(adrian, dto.CreateLeaveRequest{
		LeaveType: string(entity.LeaveVacation), StartDate: "2025-07-14", EndDate: "2025-07-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeave_DecideReglas(t *testing.T) {
	uc := usecase.NewLeaveUseCase(memory.NewLeaveRequestRepository())
	req, err := uc.Create(adrian, dto.CreateLeaveRequest{
		LeaveType: string(entity.LeaveOnDemand), StartDate: "2025-07-01", EndDate: "2025-07-01",
	})
	require.NoError(t, err)

	_, err = uc.Decide(adrian, req.ID, entity.RequestApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	approved, err := uc.Decide(manager, req.ID, entity.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RequestApproved), approved.Status)

	_, err = uc.Decide(admin, req.ID, entity.RequestRejected)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// barrierLeaveRepo retiene cada UpdateStatus hasta que llegan todos los participantes,
// para que las decisiones compitan de verdad por la misma solicitud.
type barrierLeaveRepo struct {
	*memory.LeaveRequestRepository
	arrived sync.WaitGroup
}

func (r *barrierLeaveRepo) UpdateStatus(id string, next func(entity.RequestStatus) (entity.RequestStatus, error)) (*entity.LeaveRequest, error) {
	r.arrived.Done()
	r.arrived.Wait()
	return r.LeaveRequestRepository.UpdateStatus(id, next)
}

func TestLeave_DecisionesSimultaneasSoloUnaGana(t *testing.T) {
	repo := &barrierLeaveRepo{LeaveRequestRepository: memory.NewLeaveRequestRepository()}
	uc := usecase.NewLeaveUseCase(repo)
	req, err := uc.Create(adrian, dto.CreateLeaveRequest{
		LeaveType: string(entity.LeaveOnDemand), StartDate: "2025-07-01", EndDate: "2025-07-02",
	})
	require.NoError(t, err)

	repo.arrived.Add(2)
	var (
		wg                    sync.WaitGroup
		approveErr, rejectErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = uc.Decide(manager, req.ID, entity.RequestApproved)
	}()
	go func() {
		defer wg.Done()
		_, rejectErr = uc.Decide(admin, req.ID, entity.RequestRejected)
	}()
	wg.Wait()

	require.True(t, (approveErr == nil) != (rejectErr == nil), "approve=%v reject=%v", approveErr, rejectErr)
	final, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	if approveErr == nil {
		assert.ErrorIs(t, rejectErr, domain.ErrConflict)
		assert.Equal(t, entity.RequestApproved, final.Status)
	} else {
		assert.ErrorIs(t, approveErr, domain.ErrConflict)
		assert.Equal(t, entity.RequestRejected, final.Status)
	}
}

func TestTimeOff_VisibilidadYDecision(t *testing.T) {
	uc := usecase.NewTimeOffUseCase(memory.NewTimeOffRequestRepository(memory.SeedTimeOffRequests()...))

	own, err := uc.List(adrian)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, string(entity.RequestPending), own[0].Status)

	rejected, err := uc.Decide(admin, own[0].ID, entity.RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RequestRejected), rejected.Status)

	_, err = uc.Decide(admin, own[0].ID, entity.RequestApproved)
	assert.ErrorIs(t, err, domain.ErrConflict)

	created, err := uc.Create(dawid, dto.CreateTimeOffRequest{
		RequestType: string(entity.TimeOffLateArrival), Date: "2025-03-20", Time: "09:30", Reason: "Urząd",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", created.Time)
	assert.Equal(t, dawid.UserID, created.UserID)
}

// ─── Użytkownicy ────────────────────────────────────────────────────────────

func newUserUseCase(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	hash, err := password.Hash(memory.DefaultPassword)
	require.NoError(t, err)
	return usecase.NewUserUseCase(memory.NewUserRepository(memory.SeedUsers(hash)...))
}

func TestUser_ListOrdenPolaco(t *testing.T) {
	uc := newUserUseCase(t)
	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Łukasz Mazur", Title: "Kierowca", Email: "l.mazur@oka.sc", Password: "tajne123", Role: "Pracownik",
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{
		Name: "Lucyna Kowal", Title: "Księgowa", Email: "l.kowal@oka.sc", Password: "tajne123", Role: "Pracownik",
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{
		"Adrian Strządała", "Dawid Strzadała", "Jacek Strzadała", "Lucyna Kowal",
		"Łukasz Mazur", "Michał Danel", "Piotr Brzyski", "Wojciech Godziek",
	}, names)
}

func TestUser_CreateAsignaIDYAvatar(t *testing.T) {
	uc := newUserUseCase(t)
	u, err := uc.Create(dto.CreateUserRequest{
		Name: "Anna Żak", Title: "Kasjerka", Email: "a.zak@oka.sc", Password: "tajne123", Role: "Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, entity.AvatarURL("Anna Żak"), u.Avatar)
	assert.Equal(t, "Manager", u.Role)

	_, err = uc.Create(dto.CreateUserRequest{
		Name: "Inna Anna", Title: "X", Email: "A.ZAK@oka.sc", Password: "tajne123", Role: "Manager",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUser_ChangeRoleYResetPassword(t *testing.T) {
	uc := newUserUseCase(t)

	u, err := uc.ChangeRole(5, dto.ChangeRoleRequest{Role: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "Manager", u.Role)

	_, err = uc.ChangeRole(5, dto.ChangeRoleRequest{Role: "Szef"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ChangeRole(99, dto.ChangeRoleRequest{Role: "Admin"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.ResetPassword(5, dto.ResetPasswordRequest{Password: "nowehaslo"}))
}

func TestUser_ActorUsaRolDelToken(t *testing.T) {
	uc := newUserUseCase(t)
	actor, err := uc.Actor(3, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "Dawid Strzadała", actor.Name)
	assert.Equal(t, "Pracownik Magazynu", actor.Title)
	assert.Equal(t, entity.RoleManager, actor.Role)
}

// ─── Nawigacja ──────────────────────────────────────────────────────────────

func TestNavigation_PaginaDenegadaUnaVez(t *testing.T) {
	nav := usecase.NewNavigationService()

	require.NoError(t, nav.Activate(3, "user-management"))
	first := nav.Render(3, entity.RoleEmployee)
	assert.True(t, first.Denied)
	assert.Equal(t, "user-management", first.Requested)
	assert.Equal(t, "dashboard", first.Page)

	second := nav.Render(3, entity.RoleEmployee)
	assert.False(t, second.Denied)
	assert.Equal(t, "dashboard", second.Page)
	assert.Equal(t, "Panel Główny", second.Label)
}

func TestNavigation_UsuariosIndependientesYReset(t *testing.T) {
	nav := usecase.NewNavigationService()
	require.NoError(t, nav.Activate(1, "services"))
	assert.Equal(t, "dashboard", nav.Render(2, entity.RoleManager).Page)
	assert.Equal(t, "services", nav.Render(1, entity.RoleAdmin).Page)

	nav.Reset(1)
	assert.Equal(t, "dashboard", nav.Render(1, entity.RoleAdmin).Page)
}

func TestNavigation_PaginaDesconocida(t *testing.T) {
	nav := usecase.NewNavigationService()
	assert.ErrorIs(t, nav.Activate(1, "kadry"), domain.ErrInvalidInput)
}

func TestNavigation_MenuPracownikSinGrupoVacio(t *testing.T) {
	nav := usecase.NewNavigationService()
	menu := nav.Menu(entity.RoleEmployee)
	require.NotEmpty(t, menu)
	for _, item := range menu {
		if item.Group != "" {
			assert.NotEmpty(t, item.Children)
			for _, ch := range item.Children {
				assert.NotEqual(t, "user-management", ch.Page)
			}
		}
		assert.NotEqual(t, "warehouse-releases", item.Page)
	}
	assert.True(t, nav.HasPageAccess(entity.RoleEmployee, entity.PageProduction))
	assert.False(t, nav.HasPageAccess(entity.RoleEmployee, entity.PageCustomerReturns))
}
