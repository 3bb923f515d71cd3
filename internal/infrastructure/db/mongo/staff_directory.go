package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

const staffCollection = "staff"

// StaffDirectory resolves roles against the staff collection. Each role maps
// to at most one document.
type StaffDirectory struct {
	coll *mongo.Collection
}

func NewStaffDirectory(db *mongo.Database) *StaffDirectory {
	return &StaffDirectory{coll: db.Collection(staffCollection)}
}

type mongoStaff struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	IdentityID string             `bson:"identity_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Role       string             `bson:"role"`
}

func (d *StaffDirectory) Lookup(ctx context.Context, role domain.Role) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoStaff
	if err := d.coll.FindOne(ctx, bson.M{"role": string(role)}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}

	return &domain.Identity{
		ID:    ms.IdentityID,
		Name:  ms.Name,
		Email: ms.Email,
		Role:  domain.Role(ms.Role),
	}, nil
}

// EnsureIndexes creates the unique role index.
func (d *StaffDirectory) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create staff index: %w", err)
	}
	return nil
}

// Seed upserts staff by role and reports how many documents changed.
func (d *StaffDirectory) Seed(ctx context.Context, staff []domain.Identity) (int, error) {
	changed := 0
	for _, id := range staff {
		res, err := d.coll.UpdateOne(ctx,
			bson.M{"role": string(id.Role)},
			bson.M{"$set": bson.M{
				"identity_id": id.ID,
				"name":        id.Name,
				"email":       id.Email,
				"role":        string(id.Role),
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return changed, fmt.Errorf("seed staff %s: %w", id.Role, err)
		}
		changed += int(res.ModifiedCount + res.UpsertedCount)
	}
	return changed, nil
}
