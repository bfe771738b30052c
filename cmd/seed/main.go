package main

import (
	"context"
	"log"
	"os"
	"time"

	"leadhub-backend/internal/config"
	"leadhub-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedAdmin struct {
	EmailEnv string
	NameEnv  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	admins := []seedAdmin{
		{EmailEnv: "ADMIN_EMAIL", NameEnv: "ADMIN_NAME"},
		{EmailEnv: "ADMIN_EMAIL_2", NameEnv: "ADMIN_NAME_2"},
	}
	for _, a := range admins {
		email := os.Getenv(a.EmailEnv)
		if email == "" {
			log.Printf("seed admin: %s missing, skipping", a.EmailEnv)
			continue
		}
		name := envOrDefault(a.NameEnv, "Admin")
		if err := upsertAdmin(ctx, cols, email, name, cfg.Timezone); err != nil {
			log.Fatalf("seed admin error for %s: %v", email, err)
		}
	}

	if envOrDefault("SEED_SAMPLES", "false") == "true" {
		if err := seedSampleRequests(ctx, cols, cfg.Timezone); err != nil {
			log.Fatalf("seed samples error: %v", err)
		}
	}

	log.Println("seed completed")
}

func upsertAdmin(ctx context.Context, cols *db.Collections, email, name string, loc *time.Location) error {
	now := time.Now().In(loc)
	update := bson.M{
		"$set": bson.M{
			"fullName":  name,
			"role":      "admin",
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"email":     email,
			"createdAt": now,
		},
	}
	_, err := cols.Admins.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	return err
}

// seedSampleRequests drops a couple of leads into the website and branding
// collections so the triage panel has something to show on a fresh database.
// Keyed by email so re-running the command does not duplicate them.
func seedSampleRequests(ctx context.Context, cols *db.Collections, loc *time.Location) error {
	now := time.Now().In(loc)

	website := bson.M{
		"$setOnInsert": bson.M{
			"_id":                primitive.NewObjectID().Hex(),
			"fullName":           "Sample Lead",
			"email":              "sample.website@example.com",
			"phone":              "+1 555 010 0001",
			"status":             "pending",
			"submittedAt":        now,
			"updatedAt":          now,
			"projectName":        "Marketing Site Refresh",
			"projectDescription": "A five-page business site with a blog and a contact form.",
			"websiteType":        "Business",
			"features":           bson.A{"Contact Form", "Blog"},
			"pageCount":          "1-5",
			"designPreference":   "Semi Custom",
			"needsHosting":       true,
			"needsDomain":        false,
			"needsMaintenance":   true,
			"budget":             "$1,000 - $5,000",
			"timeline":           "1 Month",
			"urgencyLevel":       "Medium",
		},
	}
	if err := upsertSample(ctx, cols.WebsiteRequests, "sample.website@example.com", website); err != nil {
		return err
	}

	branding := bson.M{
		"$setOnInsert": bson.M{
			"_id":                  primitive.NewObjectID().Hex(),
			"fullName":             "Sample Lead",
			"email":                "sample.branding@example.com",
			"phone":                "+1 555 010 0002",
			"status":               "pending",
			"submittedAt":          now,
			"updatedAt":            now,
			"businessName":         "Acme Coffee",
			"industry":             "Food & Beverage",
			"brandDescription":     "A neighbourhood roastery looking for a full identity.",
			"designType":           bson.A{"Logo Design", "Brand Guidelines"},
			"deliverablesRequired": bson.A{"Logo Pack (PNG, JPG, SVG)"},
			"brandStyle":           "Modern",
			"hasExistingBranding":  false,
			"budgetRange":          "$1,500 - $5,000",
			"timeline":             "1 Month",
			"urgencyLevel":         "Medium",
		},
	}
	return upsertSample(ctx, cols.BrandingRequests, "sample.branding@example.com", branding)
}

func upsertSample(ctx context.Context, col *mongo.Collection, email string, update bson.M) error {
	_, err := col.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
