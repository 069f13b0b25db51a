package employee

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	Designation string `json:"designation" binding:"required"`
	JoiningDate string `json:"joining_date" binding:"required"`
	Password    string `json:"password"`
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Designation *string `json:"designation"`
	JoiningDate *string `json:"joining_date"`
	Password    *string `json:"password"`
	Status      *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type ListFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	OrgID        string `json:"org_id"`
	EmployeeCode string `json:"employee_code"`
	LoginID      string `json:"login_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Designation  string `json:"designation"`
	JoiningDate  string `json:"joining_date,omitempty"`
	Status       string `json:"status"`
}

type ListResponse struct {
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Employees []EmployeeResponse `json:"employees"`
}
