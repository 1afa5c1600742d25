package domain

// Rider is a passenger profile managed by administrators.
type Rider struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// Driver is a driver profile managed by administrators.
type Driver struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Plate string `json:"plate" bson:"plate"`
}
