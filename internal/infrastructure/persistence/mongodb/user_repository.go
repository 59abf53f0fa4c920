package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"job-portal/internal/domain/user"
)

const usersCollection = "users"

type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository ensures the uniqueness indexes the schema depends
// on. Index names are stable so duplicate-key errors can be attributed
// to the right field.
func NewUserRepository(ctx context.Context, db *mongo.Database) (*UserRepository, error) {
	col := db.Collection(usersCollection)

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_phone"),
		},
	})
	if err != nil {
		return nil, err
	}

	return &UserRepository{col: col}, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return user.User{}, mapDuplicateUserErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

// Update applies only the provided fields with a single $set, so a
// profile edit that carries no password leaves the stored hash untouched.
func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, upd user.Update) (user.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.PasswordHash != nil {
		set["password"] = *upd.PasswordHash
	}

	after := options.After
	var u user.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, mapDuplicateUserErr(err)
	}
	return u, nil
}

func mapDuplicateUserErr(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), "uniq_phone") {
		return user.ErrDuplicatePhone
	}
	return user.ErrDuplicateEmail
}
