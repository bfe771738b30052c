package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	WebsiteRequests      *mongo.Collection
	MobileAppRequests    *mongo.Collection
	CloudHostingRequests *mongo.Collection
	CRMRequests          *mongo.Collection
	HRMSRequests         *mongo.Collection
	BrandingRequests     *mongo.Collection
	SaaSRequests         *mongo.Collection
	EcommerceRequests    *mongo.Collection
	LMSRequests          *mongo.Collection
	AIContentRequests    *mongo.Collection
	Admins               *mongo.Collection
	AdminOTPs            *mongo.Collection
}

// RequestCollections lists every per-type request collection; index setup
// applies the same triage indexes to each.
func (c *Collections) RequestCollections() []*mongo.Collection {
	return []*mongo.Collection{
		c.WebsiteRequests,
		c.MobileAppRequests,
		c.CloudHostingRequests,
		c.CRMRequests,
		c.HRMSRequests,
		c.BrandingRequests,
		c.SaaSRequests,
		c.EcommerceRequests,
		c.LMSRequests,
		c.AIContentRequests,
	}
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		WebsiteRequests:      db.Collection("website_requests"),
		MobileAppRequests:    db.Collection("mobile_app_requests"),
		CloudHostingRequests: db.Collection("cloud_hosting_requests"),
		CRMRequests:          db.Collection("crm_requests"),
		HRMSRequests:         db.Collection("hrms_requests"),
		BrandingRequests:     db.Collection("branding_requests"),
		SaaSRequests:         db.Collection("saas_requests"),
		EcommerceRequests:    db.Collection("ecommerce_requests"),
		LMSRequests:          db.Collection("lms_requests"),
		AIContentRequests:    db.Collection("ai_content_requests"),
		Admins:               db.Collection("admins"),
		AdminOTPs:            db.Collection("admin_otps"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, col := range cols.RequestCollections() {
		_, err := col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "status", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "submittedAt", Value: -1}},
			},
		})
		if err != nil {
			return err
		}
	}

	_, err := cols.Admins.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.AdminOTPs.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Mongo reaps expired challenges on its own.
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}
