package regularization

type CreateRequest struct {
	Date              string `json:"date" binding:"required"`
	Reason            string `json:"reason" binding:"required"`
	RequestedPunchIn  string `json:"requested_punch_in" binding:"required"`
	RequestedPunchOut string `json:"requested_punch_out" binding:"required"`
}

type ReviewRequest struct {
	Action  string `json:"action" binding:"required,oneof=Accept Reject"`
	Remarks string `json:"remarks"`
}

type ListFilter struct {
	Month  int
	Year   int
	Status string
	Page   int
	Limit  int
}

type RequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`

	OriginalPunchIn  string `json:"original_punch_in"`
	OriginalPunchOut string `json:"original_punch_out"`
	OriginalHours    string `json:"original_hours"`

	RequestedPunchIn  string `json:"requested_punch_in"`
	RequestedPunchOut string `json:"requested_punch_out"`
	RequestedHours    string `json:"requested_hours"`

	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}
