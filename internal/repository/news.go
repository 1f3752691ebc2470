package repository

import (
	"context"

	"minecoin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewsRepository defines announcement persistence. News is append/remove
// only; there is no update and no soft delete.
type NewsRepository interface {
	List(ctx context.Context) ([]model.NewsItem, error)
	Insert(ctx context.Context, item *model.NewsItem) error
	Delete(ctx context.Context, id string) (bool, error)
}

// MongoNewsRepository implements announcement persistence on the news collection.
type MongoNewsRepository struct {
	collection *mongo.Collection
	pub        ChangePublisher
}

func NewMongoNewsRepository(db *mongo.Database, pub ChangePublisher) *MongoNewsRepository {
	return &MongoNewsRepository{collection: db.Collection(NewsCollection), pub: pub}
}

func (r *MongoNewsRepository) List(ctx context.Context) ([]model.NewsItem, error) {
	cur, err := r.collection.Find(ctx, bson.M{}, dateDesc)
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	var items []model.NewsItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, wrapBackendErr(err)
	}
	return items, nil
}

func (r *MongoNewsRepository) Insert(ctx context.Context, item *model.NewsItem) error {
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(NewsCollection)
	return nil
}

func (r *MongoNewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, wrapBackendErr(err)
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	r.pub.Publish(NewsCollection)
	return true, nil
}
