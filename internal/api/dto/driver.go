package dto

type DriverResponse struct {
	DriverID string `json:"driver_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}
