package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

const requestsCollection = "requests"

type MongoRequestRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{
		coll:  db.Collection(requestsCollection),
		users: db.Collection(usersCollection),
	}
}

type mongoRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	Type            string             `bson:"type"`
	Description     string             `bson:"description"`
	Status          string             `bson:"status"`
	FeedbackMessage string             `bson:"feedback_message,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func (r *MongoRequestRepository) Create(ctx context.Context, request *domain.Request) (*domain.Request, error) {
	doc := mongoRequest{
		UserID:      request.UserID,
		Type:        request.Type,
		Description: request.Description,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt.Unix(),
		UpdatedAt:   request.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *request
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoRequestRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Request, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoRequestRepository) FindAll(ctx context.Context) ([]domain.Request, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRequestRepository) find(ctx context.Context, filter bson.M) ([]domain.Request, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find requests: %w", err)
	}
	defer cur.Close(ctx)

	requests := make([]domain.Request, 0)
	for cur.Next(ctx) {
		var mr mongoRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		req := toDomainRequest(mr)
		req.Username = r.lookupUsername(ctx, mr.UserID)
		requests = append(requests, *req)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return requests, nil
}

// lookupUsername resolves the submitter's name for display, mirroring the
// populate('userId', 'username') behavior of the old panel. Best effort: a
// deleted user simply yields an empty name.
func (r *MongoRequestRepository) lookupUsername(ctx context.Context, userID string) string {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ""
	}
	var doc struct {
		Username string `bson:"username"`
	}
	if err := r.users.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"username": 1})).Decode(&doc); err != nil {
		return ""
	}
	return doc.Username
}

func (r *MongoRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, feedback string) (*domain.Request, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	set := bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}
	if feedback != "" {
		set["feedback_message"] = feedback
	}

	var mr mongoRequest
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("update request: %w", err)
	}
	return toDomainRequest(mr), nil
}

func (r *MongoRequestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func toDomainRequest(mr mongoRequest) *domain.Request {
	return &domain.Request{
		ID:              mr.ID.Hex(),
		UserID:          mr.UserID,
		Type:            mr.Type,
		Description:     mr.Description,
		Status:          domain.RequestStatus(mr.Status),
		FeedbackMessage: mr.FeedbackMessage,
		CreatedAt:       unixToTime(mr.CreatedAt),
		UpdatedAt:       unixToTime(mr.UpdatedAt),
	}
}
