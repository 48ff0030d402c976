package dto

// CreateLeaveRequest solicitud de vacaciones; el autor es el usuario autenticado.
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof='Wypoczynkowy' 'Na żądanie' 'Okolicznościowy' 'Bezpłatny' 'Opiekuńczy'"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Comment   string `json:"comment" validate:"max=1000"`
}

// LeaveRequestResponse salida de una solicitud de vacaciones.
type LeaveRequestResponse struct {
	ID        string `json:"id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Comment   string `json:"comment,omitempty"`
	Status    string `json:"status"`
}

// CreateTimeOffRequest solicitud de salida anticipada o llegada tardía.
type CreateTimeOffRequest struct {
	RequestType string `json:"request_type" validate:"required,oneof='Wcześniejsze wyjście' 'Późniejsze przyjście'"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Reason      string `json:"reason" validate:"notblank,max=1000"`
}

// TimeOffRequestResponse salida de una solicitud de salida/entrada.
type TimeOffRequestResponse struct {
	ID          string `json:"id"`
	UserID      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	RequestType string `json:"request_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}
