package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ridehail/admin-api/internal/core/domain"
)

const ridersCollection = "riders"

type RiderRepository struct {
	coll *mongo.Collection
}

func NewRiderRepository(db *mongo.Database) *RiderRepository {
	return &RiderRepository{coll: db.Collection(ridersCollection)}
}

func (r *RiderRepository) List(ctx context.Context) ([]domain.Rider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	riders := []domain.Rider{}
	if err := cur.All(ctx, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *RiderRepository) FindByID(ctx context.Context, id string) (*domain.Rider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	var rider domain.Rider
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRiderNotFound
		}
		return nil, err
	}
	return &rider, nil
}

func (r *RiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, rider)
	return err
}

func (r *RiderRepository) Update(ctx context.Context, rider *domain.Rider) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": rider.ID}, rider)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRiderNotFound
	}
	return nil
}

func (r *RiderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRiderNotFound
	}
	return nil
}

func (r *RiderRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
