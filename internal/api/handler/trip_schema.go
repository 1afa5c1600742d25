package handler

import (
	"time"

	"github.com/ridehail/admin-api/internal/core/domain"
)

type locationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createTripRequest struct {
	RiderID string          `json:"riderId" validate:"required"`
	Start   locationPayload `json:"start"`
	End     locationPayload `json:"end"`
}

type updateTripRequest struct {
	Start locationPayload `json:"start"`
	End   locationPayload `json:"end"`
}

type tripResponse struct {
	ID          string          `json:"id"`
	RiderID     string          `json:"riderId"`
	DriverID    string          `json:"driverId"`
	Start       locationPayload `json:"start"`
	End         locationPayload `json:"end"`
	Fare        float64         `json:"fare"`
	RequestTime time.Time       `json:"requestTime"`
}

type authenticatedUser struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

type listTripsResponse struct {
	AuthenticatedUser authenticatedUser `json:"authenticatedUser"`
	Trips             []tripResponse    `json:"trips"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		RiderID:     t.RiderID,
		DriverID:    t.DriverID,
		Start:       locationPayload{Lat: t.Start.Lat, Lng: t.Start.Lng},
		End:         locationPayload{Lat: t.End.Lat, Lng: t.End.Lng},
		Fare:        t.Fare,
		RequestTime: t.RequestTime,
	}
}

func toTripResponses(trips []domain.Trip) []tripResponse {
	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out
}
