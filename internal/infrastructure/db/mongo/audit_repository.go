package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ridehail/admin-api/internal/core/domain"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ActorID  string             `bson:"actor_id"`
	Action   string             `bson:"action"`
	Entity   string             `bson:"entity"`
	EntityID string             `bson:"entity_id"`
	At       time.Time          `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, ev *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	doc := mongoAuditEvent{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		At:       ev.At,
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []domain.AuditEvent{}
	for cur.Next(ctx) {
		var me mongoAuditEvent
		if err := cur.Decode(&me); err != nil {
			return nil, err
		}
		events = append(events, domain.AuditEvent{
			ID:       me.ID.Hex(),
			ActorID:  me.ActorID,
			Action:   me.Action,
			Entity:   me.Entity,
			EntityID: me.EntityID,
			At:       me.At.UTC(),
		})
	}
	return events, cur.Err()
}
