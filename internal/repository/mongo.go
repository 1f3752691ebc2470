package repository

import (
	"context"

	"minecoin/internal/model"
	"minecoin/internal/store"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoRepositories builds the repository set over a mongo database.
func NewMongoRepositories(db *mongo.Database, pub ChangePublisher) *Repositories {
	return &Repositories{
		Users:        NewMongoUserRepository(db, pub),
		Transactions: NewMongoTransactionRepository(db, pub),
		News:         NewMongoNewsRepository(db, pub),
		Config:       NewMongoConfigRepository(db, pub),
		Resetter:     &mongoResetter{db: db, pub: pub},
	}
}

// EnsureSeedData runs the schema bootstrap once at process start: seed
// accounts and content are inserted only where missing, legacy user records
// get a status backfill, and a MASTER account is guaranteed to exist.
// Idempotent; safe to run on every start.
func EnsureSeedData(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(UsersCollection)

	n, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return wrapBackendErr(err)
	}
	if n == 0 {
		master := store.DefaultMaster()
		admin := store.DefaultAdmin()
		if _, err := users.InsertMany(ctx, []interface{}{master, admin}); err != nil {
			return wrapBackendErr(err)
		}
		log.Info("seeded default accounts", "master", master.Username, "admin", admin.Username)
	} else {
		// Backfill records created before the approval workflow existed.
		res, err := users.UpdateMany(ctx,
			bson.M{"$or": bson.A{
				bson.M{"status": bson.M{"$exists": false}},
				bson.M{"status": ""},
			}},
			bson.M{"$set": bson.M{"status": model.UserApproved}},
		)
		if err != nil {
			return wrapBackendErr(err)
		}
		if res.ModifiedCount > 0 {
			log.Info("backfilled user statuses", "count", res.ModifiedCount)
		}

		masters, err := users.CountDocuments(ctx, bson.M{"role": model.RoleMaster})
		if err != nil {
			return wrapBackendErr(err)
		}
		if masters == 0 {
			master := store.DefaultMaster()
			if _, err := users.InsertOne(ctx, master); err != nil {
				return wrapBackendErr(err)
			}
			log.Warn("no MASTER account found, restored default", "username", master.Username)
		}
	}

	news := db.Collection(NewsCollection)
	n, err = news.CountDocuments(ctx, bson.M{})
	if err != nil {
		return wrapBackendErr(err)
	}
	if n == 0 {
		items := store.DefaultNews()
		docs := make([]interface{}, len(items))
		for i := range items {
			docs[i] = items[i]
		}
		if _, err := news.InsertMany(ctx, docs); err != nil {
			return wrapBackendErr(err)
		}
	}

	configs := db.Collection(ConfigCollection)
	n, err = configs.CountDocuments(ctx, bson.M{"_id": ConfigDocID})
	if err != nil {
		return wrapBackendErr(err)
	}
	if n == 0 {
		cfg := store.DefaultConfig()
		if _, err := configs.InsertOne(ctx, configDoc{ID: ConfigDocID, SiteConfig: cfg}); err != nil {
			return wrapBackendErr(err)
		}
	}

	return nil
}

// mongoResetter drops every collection and re-seeds defaults.
type mongoResetter struct {
	db  *mongo.Database
	pub ChangePublisher
}

func (r *mongoResetter) ResetAll(ctx context.Context) error {
	for _, name := range []string{UsersCollection, TransactionsCollection, NewsCollection, ConfigCollection} {
		if err := r.db.Collection(name).Drop(ctx); err != nil {
			return wrapBackendErr(err)
		}
	}
	if err := EnsureSeedData(ctx, r.db); err != nil {
		return err
	}
	r.pub.Publish(UsersCollection)
	r.pub.Publish(TransactionsCollection)
	r.pub.Publish(NewsCollection)
	r.pub.Publish(ConfigCollection)
	return nil
}
