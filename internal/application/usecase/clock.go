package usecase

import (
	"time"
	_ "time/tzdata"
)

// Location zona de la empresa; fechas y números de documento se fijan en hora polaca.
var Location = loadLocation("Europe/Warsaw")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// today fecha del día en Location (sin hora); los registros guardan solo el día.
func today(now func() time.Time) time.Time {
	t := now().In(Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}
