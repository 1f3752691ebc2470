package repository

import (
	"context"

	"minecoin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfigRepository persists the singleton site configuration.
type ConfigRepository interface {
	Get(ctx context.Context) (*model.SiteConfig, error)
	Save(ctx context.Context, cfg *model.SiteConfig) error
}

type configDoc struct {
	ID               string `bson:"_id"`
	model.SiteConfig `bson:",inline"`
}

// MongoConfigRepository stores the config as one document with a fixed id.
type MongoConfigRepository struct {
	collection *mongo.Collection
	pub        ChangePublisher
}

func NewMongoConfigRepository(db *mongo.Database, pub ChangePublisher) *MongoConfigRepository {
	return &MongoConfigRepository{collection: db.Collection(ConfigCollection), pub: pub}
}

func (r *MongoConfigRepository) Get(ctx context.Context) (*model.SiteConfig, error) {
	var doc configDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": ConfigDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	cfg := doc.SiteConfig
	return &cfg, nil
}

func (r *MongoConfigRepository) Save(ctx context.Context, cfg *model.SiteConfig) error {
	doc := configDoc{ID: ConfigDocID, SiteConfig: *cfg}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": ConfigDocID}, doc, opts); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(ConfigCollection)
	return nil
}
