package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ridehail/admin-api/internal/core/domain"
)

const tripsCollection = "trips"

type TripRepository struct {
	coll *mongo.Collection
}

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{coll: db.Collection(tripsCollection)}
}

func (r *TripRepository) List(ctx context.Context) ([]domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	trips := []domain.Trip{}
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) FindByID(ctx context.Context, id string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	var t domain.Trip
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) Create(ctx context.Context, t *domain.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *TripRepository) Update(ctx context.Context, t *domain.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
