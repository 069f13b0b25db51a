package attendance

type PunchRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   string   `json:"address" binding:"required"`
}

type PunchResponse struct {
	Action     string             `json:"action"` // "punched in" | "punched out"
	Attendance AttendanceResponse `json:"attendance"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	PunchIn      string   `json:"punch_in"`
	PunchOut     string   `json:"punch_out,omitempty"`
	HoursWorked  string   `json:"hours_worked"`
	Status       string   `json:"status"`
	PunchInLat      *float64 `json:"punch_in_lat,omitempty"`
	PunchInLng      *float64 `json:"punch_in_lng,omitempty"`
	PunchInAddress  string   `json:"punch_in_address,omitempty"`
	PunchOutLat     *float64 `json:"punch_out_lat,omitempty"`
	PunchOutLng     *float64 `json:"punch_out_lng,omitempty"`
	PunchOutAddress string   `json:"punch_out_address,omitempty"`
}

type SummaryFilter struct {
	FromDate string
	ToDate   string
	Status   string
	Page     int
	Limit    int
}

type SummaryResponse struct {
	IsPunchedIn bool                 `json:"is_punched_in"`
	TotalHours  string               `json:"total_hours"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Records     []AttendanceResponse `json:"records"`
}

type OrgFilter struct {
	EmployeeID string
	Status     string
	FromDate   string
	ToDate     string
	Search     string
	Page       int
	Limit      int
}
