package dto

// QuickStatsDTO contadores del panel "Szybkie Statystyki".
type QuickStatsDTO struct {
	ReleasesToEnter int `json:"releases_to_enter"` // WZ do wprowadzenia
	ReturnsToVerify int `json:"returns_to_verify"` // Zwroty do weryfikacji
	PendingLeave    int `json:"pending_leave"`     // Wnioski urlopowe
	PendingTimeOff  int `json:"pending_time_off"`  // Wnioski o wyjście
}

// AnnouncementDTO comunicado del panel.
type AnnouncementDTO struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Greeting      string            `json:"greeting"`
	Subtitle      string            `json:"subtitle"`
	Stats         QuickStatsDTO     `json:"stats"`
	Announcements []AnnouncementDTO `json:"announcements"`
}
