package application

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Application, error)
	ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]Application, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
