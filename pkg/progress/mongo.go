package progress

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/careermap/pkg/roadmap"
)

// MongoConfig configures [NewMongoStore].
type MongoConfig struct {
	URI        string
	Database   string // defaults to "careermap"
	Collection string // defaults to "progress"
}

// MongoStore keeps one document per snapshot, keyed by _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type progressDoc struct {
	ID        string    `bson:"_id"`
	Role      string    `bson:"role"`
	Skills    []string  `bson:"skills"`
	Timestamp time.Time `bson:"timestamp"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db, coll := cfg.Database, cfg.Collection
	if db == "" {
		db = "careermap"
	}
	if coll == "" {
		coll = "progress"
	}
	return &MongoStore{client: client, coll: client.Database(db).Collection(coll)}, nil
}

func (s *MongoStore) Load(ctx context.Context, id string) (*roadmap.Progress, error) {
	var doc progressDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find progress: %w", err)
	}
	return &roadmap.Progress{
		ID:        doc.ID,
		Role:      doc.Role,
		Skills:    doc.Skills,
		Timestamp: doc.Timestamp.UTC(),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, p roadmap.Progress) error {
	doc := progressDoc{ID: p.ID, Role: p.Role, Skills: p.Skills, Timestamp: p.Timestamp}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo save progress: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete progress: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
