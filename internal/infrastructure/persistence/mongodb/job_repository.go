package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"job-portal/internal/domain/job"
)

const jobsCollection = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(ctx context.Context, db *mongo.Database) (*JobRepository, error) {
	col := db.Collection(jobsCollection)

	// Listing reads filter on expired and sort by posting time; employer
	// dashboards filter on postedBy.
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "expired", Value: 1}, {Key: "jobPostedOn", Value: -1}}},
		{Keys: bson.D{{Key: "postedBy", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}

	return &JobRepository{col: col}, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.PostedOn.IsZero() {
		j.PostedOn = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return job.Job{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = oid
	}
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id primitive.ObjectID) (job.Job, error) {
	var j job.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx, bson.M{"expired": false})
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]job.Job, error) {
	return r.list(ctx, bson.M{"postedBy": employerID})
}

func (r *JobRepository) list(ctx context.Context, filter bson.M) ([]job.Job, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "jobPostedOn", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := []job.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, id primitive.ObjectID, upd job.Update) (job.Job, error) {
	set := bson.M{}
	unset := bson.M{}

	setStr := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setStr("title", upd.Title)
	setStr("description", upd.Description)
	setStr("category", upd.Category)
	setStr("country", upd.Country)
	setStr("city", upd.City)
	setStr("location", upd.Location)

	// Switching salary form replaces the other form in the same write.
	if upd.FixedSalary != nil {
		set["fixedSalary"] = *upd.FixedSalary
		unset["salaryFrom"] = ""
		unset["salaryTo"] = ""
	}
	if upd.SalaryFrom != nil || upd.SalaryTo != nil {
		if upd.SalaryFrom != nil {
			set["salaryFrom"] = *upd.SalaryFrom
		}
		if upd.SalaryTo != nil {
			set["salaryTo"] = *upd.SalaryTo
		}
		unset["fixedSalary"] = ""
	}
	if upd.Expired != nil {
		set["expired"] = *upd.Expired
	}

	change := bson.M{}
	if len(set) > 0 {
		change["$set"] = set
	}
	if len(unset) > 0 {
		change["$unset"] = unset
	}
	if len(change) == 0 {
		return r.GetByID(ctx, id)
	}

	after := options.After
	var j job.Job
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		change,
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *JobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}
