package domain

import (
	"math"
	"time"
)

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Trip is a ride from a start to an end location, assigned to a driver.
type Trip struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RiderID     string    `json:"riderId" bson:"rider_id"`
	DriverID    string    `json:"driverId" bson:"driver_id"`
	Start       Location  `json:"start" bson:"start"`
	End         Location  `json:"end" bson:"end"`
	Fare        float64   `json:"fare" bson:"fare"`
	RequestTime time.Time `json:"requestTime" bson:"request_time"`
}

// Fare computes the trip price from the two endpoints.
//
// Distance is planar Euclidean over (lat, lng) treated as Cartesian, not
// geodesic. The original pricing contract is defined this way and billing
// compatibility depends on it.
func Fare(start, end Location, base, perUnit float64) float64 {
	dLat := end.Lat - start.Lat
	dLng := end.Lng - start.Lng
	return base + math.Sqrt(dLat*dLat+dLng*dLng)*perUnit
}
