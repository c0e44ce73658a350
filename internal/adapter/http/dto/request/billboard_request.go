package request

type CreateBillboardRequest struct {
	SiteName    string  `json:"site_name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	MonthlyRate float64 `json:"monthly_rate" binding:"required"`
}

type UpdateBillboardStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateBillboardRateRequest struct {
	MonthlyRate float64 `json:"monthly_rate" binding:"required"`
}
