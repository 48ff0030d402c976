package entity

import "time"

// RequestStatus estado compartido por solicitudes de vacaciones y de salida/entrada.
// Pendiente -> Aceptada | Rechazada, sin retorno.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Oczekujący"
	RequestApproved RequestStatus = "Zaakceptowany"
	RequestRejected RequestStatus = "Odrzucony"
)

// LeaveType tipo de permiso (urlop).
type LeaveType string

const (
	LeaveVacation   LeaveType = "Wypoczynkowy"
	LeaveOnDemand   LeaveType = "Na żądanie"
	LeaveOccasional LeaveType = "Okolicznościowy"
	LeaveUnpaid     LeaveType = "Bezpłatny"
	LeaveChildcare  LeaveType = "Opiekuńczy"
)

// LeaveTypes lista en el orden del formulario.
var LeaveTypes = []LeaveType{LeaveVacation, LeaveOnDemand, LeaveOccasional, LeaveUnpaid, LeaveChildcare}

// LeaveRequest solicitud de vacaciones.
type LeaveRequest struct {
	ID        string
	UserID    int64
	UserName  string
	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Comment   string
	Status    RequestStatus
}

// TimeOffType salida anticipada o llegada tardía.
type TimeOffType string

const (
	TimeOffEarlyLeave  TimeOffType = "Wcześniejsze wyjście"
	TimeOffLateArrival TimeOffType = "Późniejsze przyjście"
)

// TimeOffRequest solicitud de salida/entrada fuera de horario.
type TimeOffRequest struct {
	ID          string
	UserID      int64
	UserName    string
	RequestType TimeOffType
	Date        time.Time
	Time        string // HH:MM
	Reason      string
	Status      RequestStatus
}
