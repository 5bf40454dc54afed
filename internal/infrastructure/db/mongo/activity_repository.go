package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

const activityCollection = "auth_activity"

// ActivityRepository appends auth activity entries. The trail is append-only;
// nothing in the service reads it back.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	UserID string `bson:"user_id"`
	Email  string `bson:"email"`
	Kind   string `bson:"kind"`
	Detail string `bson:"detail,omitempty"`
	At     int64  `bson:"at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		UserID: activity.UserID,
		Email:  activity.Email,
		Kind:   string(activity.Kind),
		Detail: activity.Detail,
		At:     activity.At.Unix(),
	})
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
