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

	"github.com/venha/invitations-api/internal/core/domain"
)

const collectionHosts = "hosts"

// HostRepository implements ports.HostRepository using MongoDB.
type HostRepository struct {
	col *mongo.Collection
}

func NewHostRepository(db *mongo.Database) *HostRepository {
	return &HostRepository{col: db.Collection(collectionHosts)}
}

type hostDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Name           string             `bson:"name"`
	WhatsAppNumber string             `bson:"whatsapp_number"`
	PasswordHash   string             `bson:"password_hash"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d hostDoc) toDomain() *domain.Host {
	return &domain.Host{
		ID:             d.ID.Hex(),
		Email:          d.Email,
		Name:           d.Name,
		WhatsAppNumber: d.WhatsAppNumber,
		PasswordHash:   d.PasswordHash,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *HostRepository) Create(ctx context.Context, host *domain.Host) (*domain.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := hostDoc{
		ID:             primitive.NewObjectID(),
		Email:          host.Email,
		Name:           host.Name,
		WhatsAppNumber: host.WhatsAppNumber,
		PasswordHash:   host.PasswordHash,
		CreatedAt:      host.CreatedAt,
		UpdatedAt:      host.UpdatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrHostExists
		}
		return nil, fmt.Errorf("insert host: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *HostRepository) FindByEmail(ctx context.Context, email string) (*domain.Host, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *HostRepository) FindByID(ctx context.Context, id string) (*domain.Host, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHostNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *HostRepository) findOne(ctx context.Context, filter bson.M) (*domain.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc hostDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHostNotFound
		}
		return nil, fmt.Errorf("find host: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes makes host emails unique.
func (r *HostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
