package repository

import (
	"context"

	"minecoin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository defines buy-order persistence. List and ListByUser
// return records in descending date order. ListByUser excludes soft-deleted
// records; List includes them so admin views can show the flag.
type TransactionRepository interface {
	List(ctx context.Context) ([]model.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	Insert(ctx context.Context, tx *model.Transaction) error
	Replace(ctx context.Context, tx *model.Transaction) error
	DeleteAll(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int, error)
}

// MongoTransactionRepository implements order persistence on the
// transactions collection.
type MongoTransactionRepository struct {
	collection *mongo.Collection
	pub        ChangePublisher
}

func NewMongoTransactionRepository(db *mongo.Database, pub ChangePublisher) *MongoTransactionRepository {
	return &MongoTransactionRepository{collection: db.Collection(TransactionsCollection), pub: pub}
}

var dateDesc = options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

func (r *MongoTransactionRepository) List(ctx context.Context) ([]model.Transaction, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoTransactionRepository) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	return r.find(ctx, bson.M{"userId": userID, "isDeleted": false})
}

func (r *MongoTransactionRepository) find(ctx context.Context, filter bson.M) ([]model.Transaction, error) {
	cur, err := r.collection.Find(ctx, filter, dateDesc)
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	var txs []model.Transaction
	if err := cur.All(ctx, &txs); err != nil {
		return nil, wrapBackendErr(err)
	}
	return txs, nil
}

func (r *MongoTransactionRepository) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	return &tx, nil
}

func (r *MongoTransactionRepository) Insert(ctx context.Context, tx *model.Transaction) error {
	if _, err := r.collection.InsertOne(ctx, tx); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(TransactionsCollection)
	return nil
}

func (r *MongoTransactionRepository) Replace(ctx context.Context, tx *model.Transaction) error {
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tx.ID}, tx); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(TransactionsCollection)
	return nil
}

func (r *MongoTransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, wrapBackendErr(err)
	}
	if res.DeletedCount > 0 {
		r.pub.Publish(TransactionsCollection)
	}
	return res.DeletedCount, nil
}

func (r *MongoTransactionRepository) CountPending(ctx context.Context) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"status": model.TxPending, "isDeleted": false})
	if err != nil {
		return 0, wrapBackendErr(err)
	}
	return int(n), nil
}
