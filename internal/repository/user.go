package repository

import (
	"context"
	"fmt"

	"minecoin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines user persistence. Lookups that miss return
// (nil, nil); infrastructure failures wrap ErrBackendUnavailable.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
	Replace(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteWhereRoleNot(ctx context.Context, keep model.Role) (int64, error)
}

// MongoUserRepository implements user persistence on the users collection.
type MongoUserRepository struct {
	collection *mongo.Collection
	pub        ChangePublisher
}

func NewMongoUserRepository(db *mongo.Database, pub ChangePublisher) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection), pub: pub}
}

func (r *MongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, wrapBackendErr(err)
	}
	return users, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, wrapBackendErr(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *model.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(UsersCollection)
	return nil
}

func (r *MongoUserRepository) Replace(ctx context.Context, user *model.User) error {
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user); err != nil {
		return wrapBackendErr(err)
	}
	r.pub.Publish(UsersCollection)
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, wrapBackendErr(err)
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	r.pub.Publish(UsersCollection)
	return true, nil
}

func (r *MongoUserRepository) DeleteWhereRoleNot(ctx context.Context, keep model.Role) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"role": bson.M{"$ne": keep}})
	if err != nil {
		return 0, wrapBackendErr(err)
	}
	if res.DeletedCount > 0 {
		r.pub.Publish(UsersCollection)
	}
	return res.DeletedCount, nil
}

func wrapBackendErr(err error) error {
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
