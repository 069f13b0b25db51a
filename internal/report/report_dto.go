package report

type DailyReportRow struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeCode   string `json:"employee_code"`
	EmployeeStatus string `json:"employee_status"`
	Status         string `json:"status"`
	InTime         string `json:"in_time"`
	OutTime        string `json:"out_time"`
	TotalHours     string `json:"total_hours"`
	Address        string `json:"address,omitempty"`
}

type DailySummary struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Late           int `json:"late"`
	Absent         int `json:"absent"`
	HalfDay        int `json:"half_day"`
	OnLeave        int `json:"on_leave"`
}

type DailyReport struct {
	Date    string           `json:"date"`
	Summary DailySummary     `json:"summary"`
	Rows    []DailyReportRow `json:"rows"`
}

// CustomRangeRequest resolves to an inclusive date range three ways:
// a single date, a year+month, or a whole year.
type CustomRangeRequest struct {
	Date  string `form:"date"`
	Month int    `form:"month"`
	Year  int    `form:"year"`
}

type CustomReportRow struct {
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name"`
	EmployeeCode         string `json:"employee_code"`
	Present              int    `json:"present"`
	Late                 int    `json:"late"`
	Absent               int    `json:"absent"`
	HalfDays             int    `json:"half_days"`
	OnLeave              int    `json:"on_leave"`
	AttendancePercentage string `json:"attendance_percentage"`
}

type CustomReport struct {
	FromDate                   string            `json:"from_date"`
	ToDate                     string            `json:"to_date"`
	TotalWorkingDays           int               `json:"total_working_days"`
	EmployeesWithFullAttendance int              `json:"employees_with_full_attendance"`
	DaysWithFullAttendance     int               `json:"days_with_full_attendance"`
	Rows                       []CustomReportRow `json:"rows"`
}

type DashboardSummary struct {
	TotalEmployees int               `json:"total_employees"`
	PresentToday   int               `json:"present_today"`
	OnLeaveToday   int               `json:"on_leave_today"`
	Recent         []RecentEmployee  `json:"recent_employees"`
}

type RecentEmployee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	JoinedAt    string `json:"joined_at,omitempty"`
}
