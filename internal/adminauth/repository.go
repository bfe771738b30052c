package adminauth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists admin accounts and their pending OTP challenges.
type Repository interface {
	FindAdminByEmail(ctx context.Context, email string) (Admin, error)
	TouchLastLogin(ctx context.Context, email string, at time.Time) error
	ReplaceChallenge(ctx context.Context, ch OTPChallenge) error
	FindChallenge(ctx context.Context, email string) (OTPChallenge, error)
	BumpAttempts(ctx context.Context, email string) (int, error)
	DeleteChallenge(ctx context.Context, email string) error
}

type MongoRepository struct {
	admins *mongo.Collection
	otps   *mongo.Collection
}

func NewMongoRepository(admins, otps *mongo.Collection) *MongoRepository {
	return &MongoRepository{admins: admins, otps: otps}
}

func (r *MongoRepository) FindAdminByEmail(ctx context.Context, email string) (Admin, error) {
	var admin Admin
	err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	return admin, err
}

func (r *MongoRepository) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	_, err := r.admins.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"lastLogin": at}},
	)
	return err
}

// ReplaceChallenge upserts on email, so issuing a fresh code invalidates the
// previous one and resets the attempt counter.
func (r *MongoRepository) ReplaceChallenge(ctx context.Context, ch OTPChallenge) error {
	_, err := r.otps.ReplaceOne(ctx,
		bson.M{"email": ch.Email},
		ch,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoRepository) FindChallenge(ctx context.Context, email string) (OTPChallenge, error) {
	var ch OTPChallenge
	err := r.otps.FindOne(ctx, bson.M{"email": email}).Decode(&ch)
	return ch, err
}

func (r *MongoRepository) BumpAttempts(ctx context.Context, email string) (int, error) {
	res := r.otps.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$inc": bson.M{"attempts": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var ch OTPChallenge
	if err := res.Decode(&ch); err != nil {
		return 0, err
	}
	return ch.Attempts, nil
}

func (r *MongoRepository) DeleteChallenge(ctx context.Context, email string) error {
	_, err := r.otps.DeleteOne(ctx, bson.M{"email": email})
	return err
}
