package dto

type UpdateDeliveryRequest struct {
	TrackingNumber   *string `json:"tracking_number" validate:"omitempty,min=3,max=100"`
	EstimatedArrival *string `json:"estimated_arrival" validate:"omitempty,datetime=2006-01-02"`
	Note             *string `json:"note" validate:"omitempty,max=500"`
}
