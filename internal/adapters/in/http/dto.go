package http

import (
	"time"

	"zapshift/internal/core/application/usecases/queries"
)

// Request bodies. Identifiers arrive as opaque strings and are parsed into
// kernel types at the boundary; a bad format is a client error.

type createParcelRequest struct {
	CreatedBy string `json:"createdBy"`
}

type riderActionRequest struct {
	RiderID string `json:"riderId"`
}

type deliverParcelRequest struct {
	RiderID string `json:"riderId"`
	Message string `json:"message"`
}

type recordPaymentRequest struct {
	ParcelID      string  `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

type applyRiderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

type setRiderStatusRequest struct {
	Status     string `json:"status"`
	WorkStatus string `json:"workStatus"`
}

type registerUserRequest struct {
	Email string `json:"email"`
}

type setUserRoleRequest struct {
	Role string `json:"role"`
}

type appendTrackingRequest struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// Response bodies.

type createdResponse struct {
	ID string `json:"id"`
}

type registeredResponse struct {
	ID       string `json:"id"`
	Inserted bool   `json:"inserted"`
}

type deletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type updateCountsResponse struct {
	ParcelsModified int64 `json:"parcelsModified"`
	RidersModified  int64 `json:"ridersModified"`
}

type parcelResponse struct {
	ID                 string     `json:"id"`
	CreatedBy          string     `json:"createdBy"`
	DeliveryStatus     string     `json:"deliveryStatus"`
	PaymentStatus      string     `json:"paymentStatus"`
	CashoutStatus      string     `json:"cashoutStatus"`
	CashedOutAt        *time.Time `json:"cashedOutAt,omitempty"`
	AssignedRiderID    *string    `json:"assignedRiderId,omitempty"`
	AssignedRiderName  string     `json:"assignedRiderName,omitempty"`
	AssignedRiderEmail string     `json:"assignedRiderEmail,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type statusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type riderResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	District   string `json:"district"`
	Status     string `json:"status"`
	WorkStatus string `json:"workStatus"`
}

type paymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

type trackingEventResponse struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type userRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toParcelResponse(model queries.ParcelResponse) parcelResponse {
	response := parcelResponse{
		ID:                 model.ID.String(),
		CreatedBy:          model.CreatedBy,
		DeliveryStatus:     model.DeliveryStatus.String(),
		PaymentStatus:      model.PaymentStatus.String(),
		CashoutStatus:      model.CashoutStatus.String(),
		CashedOutAt:        model.CashedOutAt,
		AssignedRiderName:  model.AssignedRiderName,
		AssignedRiderEmail: model.AssignedRiderEmail,
		CreatedAt:          model.CreatedAt,
	}
	if model.AssignedRiderID.Validate() == nil {
		riderID := model.AssignedRiderID.String()
		response.AssignedRiderID = &riderID
	}
	return response
}

func toParcelResponses(models []queries.ParcelResponse) []parcelResponse {
	responses := make([]parcelResponse, len(models))
	for i, model := range models {
		responses[i] = toParcelResponse(model)
	}
	return responses
}

func toRiderResponses(models []queries.RiderResponse) []riderResponse {
	responses := make([]riderResponse, len(models))
	for i, model := range models {
		responses[i] = riderResponse{
			ID:         model.ID.String(),
			Name:       model.Name,
			Email:      model.Email,
			District:   model.District,
			Status:     model.Status.String(),
			WorkStatus: model.WorkStatus.String(),
		}
	}
	return responses
}
