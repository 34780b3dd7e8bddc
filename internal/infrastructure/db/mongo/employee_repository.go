package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

const employeesCollection = "employees"

type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(employeesCollection)}
}

type mongoEmployee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatedBy   string             `bson:"created_by"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Mobile      string             `bson:"mobile"`
	Designation string             `bson:"designation"`
	Gender      string             `bson:"gender"`
	Courses     []string           `bson:"courses"`
	Image       string             `bson:"image,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	doc := mongoEmployee{
		CreatedBy:   employee.CreatedBy,
		Name:        employee.Name,
		Email:       employee.Email,
		Mobile:      employee.Mobile,
		Designation: employee.Designation,
		Gender:      employee.Gender,
		Courses:     employee.Courses,
		Image:       employee.Image,
		CreatedAt:   employee.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cur.Close(ctx)

	employees := make([]domain.Employee, 0)
	for cur.Next(ctx) {
		var me mongoEmployee
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, *toDomainEmployee(me))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	var me mongoEmployee
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return toDomainEmployee(me), nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, id string, update ports.EmployeeUpdate) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	set := bson.M{
		"name":        update.Name,
		"email":       update.Email,
		"mobile":      update.Mobile,
		"designation": update.Designation,
		"gender":      update.Gender,
		"courses":     update.Courses,
	}
	if update.Image != "" {
		set["image"] = update.Image
	}

	var me mongoEmployee
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&me)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return toDomainEmployee(me), nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func toDomainEmployee(me mongoEmployee) *domain.Employee {
	return &domain.Employee{
		ID:          me.ID.Hex(),
		CreatedBy:   me.CreatedBy,
		Name:        me.Name,
		Email:       me.Email,
		Mobile:      me.Mobile,
		Designation: me.Designation,
		Gender:      me.Gender,
		Courses:     me.Courses,
		Image:       me.Image,
		CreatedAt:   unixToTime(me.CreatedAt),
	}
}
