package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

const applicationsCollection = "applications"
const applicationsSequence = "application_id"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db, coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID          int64  `bson:"_id"`
	UserID      int64  `bson:"user_id"`
	FullName    string `bson:"full_name"`
	Email       string `bson:"email"`
	Title       string `bson:"title"`
	CoverLetter string `bson:"cover_letter"`
	BirthDate   int64  `bson:"birth_date,omitempty"`
	Status      string `bson:"status"`
	SubmittedAt int64  `bson:"submitted_at"`
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []domain.Application
	for cursor.Next(ctx) {
		var ma mongoApplication
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		app, err := toDomainApplication(ma)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return toDomainApplication(ma)
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, applicationsSequence)
	if err != nil {
		return nil, err
	}

	doc := fromDomainApplication(app)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = id
	return &created, nil
}

// UpdateStatus sets only the status field and returns the updated record.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoApplication
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return toDomainApplication(ma)
}

// EnsureIndexes creates the lookup index on the submitter reference.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func fromDomainApplication(app *domain.Application) mongoApplication {
	doc := mongoApplication{
		ID:          app.ID,
		UserID:      app.UserID,
		FullName:    app.FullName,
		Email:       app.Email,
		Title:       app.Title,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		SubmittedAt: app.SubmittedAt.Unix(),
	}
	if app.BirthDate != nil {
		doc.BirthDate = app.BirthDate.Unix()
	}
	return doc
}

// toDomainApplication maps a stored document into the domain, rejecting
// status values outside the closed enumeration at the store boundary.
func toDomainApplication(ma mongoApplication) (*domain.Application, error) {
	status, err := domain.ParseApplicationStatus(ma.Status)
	if err != nil {
		return nil, fmt.Errorf("application %d: %w", ma.ID, err)
	}

	app := &domain.Application{
		ID:          ma.ID,
		UserID:      ma.UserID,
		FullName:    ma.FullName,
		Email:       ma.Email,
		Title:       ma.Title,
		CoverLetter: ma.CoverLetter,
		Status:      status,
		SubmittedAt: unixToTime(ma.SubmittedAt),
	}
	if ma.BirthDate != 0 {
		bd := unixToTime(ma.BirthDate)
		app.BirthDate = &bd
	}
	return app, nil
}
