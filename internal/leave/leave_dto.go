package leave

type ApplyLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	FromDate    string `json:"from_date" binding:"required"`
	ToDate      string `json:"to_date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Action  string `json:"action" binding:"required,oneof=Approve Reject"`
	Remarks string `json:"remarks"`
}

// CreateDirectRequest is the org-side shortcut that records an already
// approved leave on an employee's behalf.
type CreateDirectRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	FromDate    string `json:"from_date" binding:"required"`
	ToDate      string `json:"to_date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	FromDate      string `json:"from_date"`
	ToDate        string `json:"to_date"`
	Days          int    `json:"days"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	Remarks       string `json:"remarks,omitempty"`
}

type ListFilter struct {
	Status     string
	EmployeeID string
	Page       int
	Limit      int
}

type CreateLeaveTypeRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	AnnualQuota int    `json:"annual_quota" binding:"required,min=1"`
	IsPaid      *bool  `json:"is_paid"`
}

type UpdateLeaveTypeRequest struct {
	Name        *string `json:"name"`
	AnnualQuota *int    `json:"annual_quota" binding:"omitempty,min=1"`
	IsPaid      *bool   `json:"is_paid"`
	IsActive    *bool   `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AnnualQuota int    `json:"annual_quota"`
	IsPaid      bool   `json:"is_paid"`
	IsActive    bool   `json:"is_active"`
}

type AllocateBalanceRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Quota       int    `json:"quota" binding:"required,min=1"`
}

type BalanceResponse struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Allocated   int    `json:"allocated"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}
