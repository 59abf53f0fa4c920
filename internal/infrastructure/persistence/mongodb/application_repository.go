package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"job-portal/internal/domain/application"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(ctx context.Context, db *mongo.Database) (*ApplicationRepository, error) {
	col := db.Collection(applicationsCollection)

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employerID.user", Value: 1}}},
		{Keys: bson.D{{Key: "applicantID.user", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}

	return &ApplicationRepository{col: col}, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return application.Application{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (application.Application, error) {
	var a application.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}

func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]application.Application, error) {
	return r.list(ctx, bson.M{"employerID.user": employerID})
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]application.Application, error) {
	return r.list(ctx, bson.M{"applicantID.user": applicantID})
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]application.Application, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	apps := []application.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}
