package organization

type UpdateSettingsRequest struct {
	Timezone     *string  `json:"timezone"`
	ShiftStart   *string  `json:"shift_start"`
	HalfDayHours *float64 `json:"half_day_hours"`
	WeeklyOffDay *int     `json:"weekly_off_day"`
}

type SettingsResponse struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Timezone                string  `json:"timezone"`
	ShiftStart              string  `json:"shift_start"`
	HalfDayHours            float64 `json:"half_day_hours"`
	WeeklyOffDay            int     `json:"weekly_off_day"`
	IsRegularizationEnabled bool    `json:"is_regularization_enabled"`
}
