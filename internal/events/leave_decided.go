package events

import "time"

const LeaveDecidedTopic = "attendance.leave.decided.v1"

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	OrgID      string    `json:"org_id"`
	Status     string    `json:"status"`
	FromDate   string    `json:"from_date"`
	ToDate     string    `json:"to_date"`
	Days       int       `json:"days"`
	DecidedBy  string    `json:"decided_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
