package holiday

type HolidayInput struct {
	Name     string `json:"name" binding:"required"`
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date" binding:"required"`
}

type BulkUploadRequest struct {
	Holidays []HolidayInput `json:"holidays" binding:"required,min=1,dive"`
}

type BulkUploadResponse struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Year     int    `json:"year"`
	IsActive bool   `json:"is_active"`
}
