package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/venha/invitations-api/internal/core/domain"
)

const collectionAttendees = "attendees"

// AttendeeRepository implements ports.AttendeeRepository using MongoDB.
type AttendeeRepository struct {
	col *mongo.Collection
}

func NewAttendeeRepository(db *mongo.Database) *AttendeeRepository {
	return &AttendeeRepository{col: db.Collection(collectionAttendees)}
}

// Create inserts a new RSVP. The unique (event_id, whatsapp_number) index
// turns a second answer from the same number into domain.ErrAlreadyRSVPd.
func (r *AttendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		a.ID = ""
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyRSVPd
		}
		return fmt.Errorf("insert attendee: %w", err)
	}
	return nil
}

func (r *AttendeeRepository) FindByWhatsApp(ctx context.Context, eventID, whatsAppNumber string) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"event_id": eventID, "whatsapp_number": whatsAppNumber}

	var a domain.Attendee
	if err := r.col.FindOne(ctx, filter).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("find attendee: %w", err)
	}
	return &a, nil
}

// ListByEvent returns the event's RSVPs in arrival order.
func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer cur.Close(ctx)

	attendees := make([]*domain.Attendee, 0)
	if err := cur.All(ctx, &attendees); err != nil {
		return nil, fmt.Errorf("decode attendees: %w", err)
	}
	return attendees, nil
}

func (r *AttendeeRepository) Update(ctx context.Context, a *domain.Attendee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         a.Name,
		"num_adults":   a.NumAdults,
		"num_children": a.NumChildren,
		"comments":     a.Comments,
		"status":       string(a.Status),
		"updated_at":   a.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, update)
	if err != nil {
		return fmt.Errorf("update attendee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAttendeeNotFound
	}
	return nil
}

// EnsureIndexes enforces one RSVP per WhatsApp number and event.
func (r *AttendeeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "event_id", Value: 1},
			{Key: "whatsapp_number", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
