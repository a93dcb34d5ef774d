package mongodb

import (
	"context"
	"time"

	"github.com/programmerrush/api-bills/internal/dao/fields"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewOutboxDAO(db *mongo.Database, logger *zap.Logger) *OutboxDAO {
	return &OutboxDAO{
		outboxCollection: db.Collection(CollectionOutbox),
		logger:           logger.Named("OutboxDAO"),
	}
}

type OutboxDAO struct {
	outboxCollection *mongo.Collection
	logger           *zap.Logger
}

func (d *OutboxDAO) Create(ctx context.Context, message *models.OutboxMessage) error {
	_, err := d.outboxCollection.InsertOne(ctx, message)
	if err != nil {
		d.logger.Error("Create: InsertOne failed", zap.Error(err))
		return err
	}
	return nil
}

// ClaimAndFetchEvents atomically claims a batch of pending events. A
// lightweight id query first, then a status-guarded UpdateMany acting as an
// optimistic lock against concurrent workers, then a fetch of what this
// worker actually won.
func (d *OutboxDAO) ClaimAndFetchEvents(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: 1}}). // oldest first
		SetLimit(int64(limit)).
		SetProjection(bson.M{fields.FieldObjectId: 1})

	filter := bson.M{"status": models.OutboxStatusPending}
	cursor, err := d.outboxCollection.Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("ClaimAndFetchEvents: candidate Find failed", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		d.logger.Error("ClaimAndFetchEvents: candidate decode failed", zap.Error(err))
		return nil, err
	}
	if len(results) == 0 {
		return []*models.OutboxMessage{}, nil
	}

	ids := make([]primitive.ObjectID, len(results))
	for i, res := range results {
		ids[i] = res.ID
	}

	claimID := primitive.NewObjectID()
	updateFilter := bson.M{
		fields.FieldObjectId: bson.M{"$in": ids},
		"status":             models.OutboxStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.OutboxStatusProcessing,
			"claim_id":   claimID,
			"updated_at": time.Now(),
		},
	}
	updateResult, err := d.outboxCollection.UpdateMany(ctx, updateFilter, update)
	if err != nil {
		d.logger.Error("ClaimAndFetchEvents: claim UpdateMany failed", zap.Error(err))
		return nil, err
	}
	// Another worker got there first; not an error.
	if updateResult.ModifiedCount == 0 {
		return []*models.OutboxMessage{}, nil
	}

	claimedCursor, err := d.outboxCollection.Find(ctx, bson.M{"claim_id": claimID})
	if err != nil {
		d.logger.Error("ClaimAndFetchEvents: claimed Find failed", zap.Error(err))
		return nil, err
	}
	var claimedMessages []*models.OutboxMessage
	if err = claimedCursor.All(ctx, &claimedMessages); err != nil {
		d.logger.Error("ClaimAndFetchEvents: claimed decode failed", zap.Error(err))
		return nil, err
	}
	return claimedMessages, nil
}

func (d *OutboxDAO) MarkAsProcessed(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"status":       models.OutboxStatusProcessed,
			"processed_at": time.Now(),
		},
	}
	_, err := d.outboxCollection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	return err
}

func (d *OutboxDAO) IncrementRetry(ctx context.Context, id primitive.ObjectID, errorMessage string) error {
	update := bson.M{
		"$set": bson.M{
			"status": models.OutboxStatusPending, // reset for retry
			"error":  errorMessage,
		},
		"$inc": bson.M{"retries": 1},
	}
	_, err := d.outboxCollection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	return err
}
