package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okasc/intranet-api/internal/domain/entity"
)

// Datos de arranque de la intranet. Se cargan una vez por proceso y se
// pierden al reiniciar.

// DefaultPassword contraseña inicial de todos los usuarios sembrados.
const DefaultPassword = "oka12345"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SeedUsers directorio inicial; passwordHash es el hash de DefaultPassword.
func SeedUsers(passwordHash string) []entity.User {
	type row struct {
		id    int64
		name  string
		title string
		email string
		role  entity.Role
	}
	rows := []row{
		{1, "Piotr Brzyski", "Administrator", "p.brzyski@oka.sc", entity.RoleAdmin},
		{2, "Jacek Strzadała", "Kierownik Biura", "j.strzadala@oka.sc", entity.RoleManager},
		{3, "Dawid Strzadała", "Pracownik Magazynu", "d.strzadala@oka.sc", entity.RoleEmployee},
		{4, "Adrian Strządała", "Specjalista ds. Sprzedaży", "a.strzadala@oka.sc", entity.RoleEmployee},
		{5, "Michał Danel", "Pracownik", "m.danel@oka.sc", entity.RoleEmployee},
		{6, "Wojciech Godziek", "Administrator", "w.godziek@oka.sc", entity.RoleAdmin},
	}
	out := make([]entity.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.User{
			ID:           r.id,
			Name:         r.name,
			Title:        r.title,
			Email:        r.email,
			Avatar:       entity.AvatarURL(r.name),
			Role:         r.role,
			PasswordHash: passwordHash,
		})
	}
	return out
}

// SeedDocuments registro de documentos inicial.
func SeedDocuments() []entity.Document {
	return []entity.Document{
		{ID: uuid.NewString(), Name: "Polityka Pracy Zdalnej.pdf", Type: entity.DocumentPDF, LastModified: day(2024, 7, 12), Size: "2.5 MB"},
		{ID: uuid.NewString(), Name: "Onboarding - Plan na pierwszy tydzień.docx", Type: entity.DocumentWord, LastModified: day(2024, 7, 10), Size: "1.2 MB"},
		{ID: uuid.NewString(), Name: "Wyniki Finansowe Q2 2024.xlsx", Type: entity.DocumentSpreadsheet, LastModified: day(2024, 7, 5), Size: "5.8 MB"},
		{ID: uuid.NewString(), Name: "Prezentacja Strategii 2025.pptx", Type: entity.DocumentPresentation, LastModified: day(2024, 6, 28), Size: "12.1 MB"},
		{ID: uuid.NewString(), Name: "Regulamin Biura.pdf", Type: entity.DocumentPDF, LastModified: day(2024, 5, 15), Size: "0.8 MB"},
	}
}

// SeedWarehouseReleases dos WZ: uno temporal y otro ya en el ERP.
func SeedWarehouseReleases() []entity.WarehouseRelease {
	return []entity.WarehouseRelease{
		{
			ID:               uuid.NewString(),
			DocNumber:        "WZ/2024/07/001",
			IssueDate:        day(2024, 7, 21),
			Client:           "Klient A",
			ConstructionSite: `Budowa biurowca "SKY TOWER"`,
			Items: []entity.LineItem{
				{Lp: 1, Name: "Okno PCV 120x150", Quantity: qty(2), Unit: "szt."},
				{Lp: 2, Name: "Roleta zewnętrzna", Quantity: qty(2), Unit: "szt."},
			},
			IssuedBy: "Jan Kowalski",
			Notes:    "Pilne zamówienie.",
			Status:   entity.ReleaseTemporary,
		},
		{
			ID:        uuid.NewString(),
			DocNumber: "WZ/2024/07/002",
			IssueDate: day(2024, 7, 20),
			Client:    "Klient B",
			Items: []entity.LineItem{
				{Lp: 1, Name: "Drzwi wejściowe", Quantity: qty(1), Unit: "szt."},
			},
			IssuedBy: "Jan Kowalski",
			Status:   entity.ReleaseEntered,
		},
	}
}

// SeedCustomerReturns dos ZW: uno pendiente y otro aceptado.
func SeedCustomerReturns() []entity.CustomerReturn {
	return []entity.CustomerReturn{
		{
			ID:               uuid.NewString(),
			DocNumber:        "ZW/2024/07/001",
			ReturnDate:       day(2024, 7, 22),
			Client:           "Klient A",
			OriginalWzNumber: "WZ/2024/07/001",
			Items: []entity.ReturnItem{
				{Lp: 1, Name: "Roleta zewnętrzna", Quantity: qty(1), Unit: "szt.", Reason: "Uszkodzona w transporcie"},
			},
			ReceivedBy: "Jan Kowalski",
			Status:     entity.ReturnPending,
		},
		{
			ID:         uuid.NewString(),
			DocNumber:  "ZW/2024/07/002",
			ReturnDate: day(2024, 7, 21),
			Client:     "Klient C",
			Items: []entity.ReturnItem{
				{Lp: 1, Name: "Parapet wewnętrzny", Quantity: qty(5), Unit: "szt.", Reason: "Zły wymiar"},
			},
			ReceivedBy: "Piotr Brzyski",
			Status:     entity.ReturnAccepted,
		},
	}
}

// SeedProductionOrders dos órdenes de tintado.
func SeedProductionOrders() []entity.ProductionOrder {
	return []entity.ProductionOrder{
		{
			ID:           uuid.NewString(),
			OrderNumber:  "PROD/2024/07/001",
			CreationDate: day(2024, 7, 22),
			Client:       "Klient Hurtowy A",
			Items: []entity.ProductionItem{
				{Lp: 1, Palette: "Atlas", ProductType: "Tynk", Base: "Baza A", Color: "A001", Capacity: "25kg", Quantity: 10},
				{Lp: 2, Palette: "Sempre", ProductType: "Farba", Base: "Baza C", Color: "S203", Capacity: "10L", Quantity: 5},
			},
			CreatedBy: "Jacek Strzadała",
			Notes:     "Pilne, dostawa na jutro rano.",
			Status:    entity.ProductionToDo,
		},
		{
			ID:           uuid.NewString(),
			OrderNumber:  "PROD/2024/07/002",
			CreationDate: day(2024, 7, 21),
			Client:       "Klient Indywidualny B",
			Items: []entity.ProductionItem{
				{Lp: 1, Palette: "Tikkurila", ProductType: "Farba", Base: "Optiva 5", Color: "NCS S 0500-N", Capacity: "5L", Quantity: 2},
			},
			CreatedBy: "Adrian Strządała",
			Status:    entity.ProductionDone,
		},
	}
}

// SeedServices tres servicios; el último sin precio pactado.
func SeedServices() []entity.Service {
	price := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []entity.Service{
		{
			ID:            uuid.NewString(),
			ClientName:    `Firma Budowlana "Murator"`,
			Location:      "Warszawa, ul. Prosta 51",
			ServiceDate:   day(2024, 7, 20),
			DurationHours: decimal.NewFromInt(8),
			Kilometers:    120,
			Description:   "Dostawa i montaż 10 okien na budowie biurowca.",
			AgreedPrice:   price(25000),
			CreatedBy:     "Jan Kowalski",
		},
		{
			ID:            uuid.NewString(),
			ClientName:    "Janina Nowak",
			Location:      "Kraków, os. Tęczowe 8/12",
			ServiceDate:   day(2024, 7, 18),
			DurationHours: decimal.NewFromInt(4),
			Kilometers:    30,
			Description:   "Wymiana drzwi wejściowych w mieszkaniu.",
			AgreedPrice:   price(3500),
			IsSettled:     true,
			CreatedBy:     "Piotr Brzyski",
		},
		{
			ID:            uuid.NewString(),
			ClientName:    "Develop Sp. z o.o.",
			Location:      "Gdańsk, ul. Morska 113",
			ServiceDate:   day(2024, 7, 15),
			DurationHours: decimal.NewFromInt(16),
			Kilometers:    450,
			Description:   "Konsultacje techniczne i pomiary na nowym osiedlu.",
			CreatedBy:     "Jan Kowalski",
		},
	}
}

// SeedLeaveRequests solicitudes de vacaciones de Dawid y Adrian.
func SeedLeaveRequests() []entity.LeaveRequest {
	return []entity.LeaveRequest{
		{ID: uuid.NewString(), UserID: 3, UserName: "Dawid Strzadała", LeaveType: entity.LeaveVacation, StartDate: day(2024, 8, 1), EndDate: day(2024, 8, 10), Comment: "Wakacje", Status: entity.RequestApproved},
		{ID: uuid.NewString(), UserID: 4, UserName: "Adrian Strządała", LeaveType: entity.LeaveOnDemand, StartDate: day(2024, 7, 29), EndDate: day(2024, 7, 29), Status: entity.RequestPending},
		{ID: uuid.NewString(), UserID: 3, UserName: "Dawid Strzadała", LeaveType: entity.LeaveOccasional, StartDate: day(2024, 9, 5), EndDate: day(2024, 9, 6), Comment: "Ślub brata", Status: entity.RequestRejected},
	}
}

// SeedTimeOffRequests solicitudes de salida/entrada.
func SeedTimeOffRequests() []entity.TimeOffRequest {
	return []entity.TimeOffRequest{
		{ID: uuid.NewString(), UserID: 4, UserName: "Adrian Strządała", RequestType: entity.TimeOffEarlyLeave, Date: day(2024, 7, 30), Time: "15:00", Reason: "Wizyta u lekarza", Status: entity.RequestPending},
		{ID: uuid.NewString(), UserID: 3, UserName: "Dawid Strzadała", RequestType: entity.TimeOffLateArrival, Date: day(2024, 7, 25), Time: "10:00", Reason: "Sprawy urzędowe", Status: entity.RequestApproved},
	}
}

// Announcements comunicados fijos del panel principal.
func Announcements() []entity.Announcement {
	return []entity.Announcement{
		{
			ID:      1,
			Title:   "Integracja firmowa w przyszły piątek!",
			Date:    "15 Lipca, 2024",
			Content: `Zapraszamy wszystkich na coroczną integrację firmową! W tym roku spotykamy się w restauracji "Pod Dębem" o godzinie 18:00. Gwarantujemy dobrą zabawę, pyszne jedzenie i świetną atmosferę. Prosimy o potwierdzenie obecności u Jacka do końca tygodnia.`,
		},
		{
			ID:      2,
			Title:   "Nowe zasady pracy zdalnej",
			Date:    "12 Lipca, 2024",
			Content: "Od 1 sierpnia wprowadzamy nowe zasady dotyczące pracy zdalnej. Każdy pracownik będzie mógł pracować zdalnie przez 2 dni w tygodniu. Szczegółowy regulamin zostanie udostępniony wkrótce w zakładce Dokumenty. Prosimy o zapoznanie się ze zmianami.",
		},
	}
}
