package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

const casesCollection = "cases"

type CaseRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{db: db, coll: db.Collection(casesCollection)}
}

type caseDoc struct {
	ID          int64  `bson:"_id"`
	OwnerID     int64  `bson:"owner_id"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	Content     string `bson:"content"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func (d caseDoc) toDomain() *domain.Case {
	return &domain.Case{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, casesCollection)
	if err != nil {
		return nil, err
	}

	doc := caseDoc{
		ID:          id,
		OwnerID:     c.OwnerID,
		Title:       c.Title,
		Description: c.Description,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt.Unix(),
		UpdatedAt:   c.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}

	created := *c
	created.ID = id
	return &created, nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id int64) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc caseDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns every case sorted by id, which is insertion order.
func (r *CaseRepository) List(ctx context.Context) ([]domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	var cases []domain.Case
	for cur.Next(ctx) {
		var doc caseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		cases = append(cases, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) Update(ctx context.Context, id int64, title, description, content string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"content":     content,
		"updated_at":  time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}
