package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/linkbridge/linkbridgebackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func SeedAdminUser(ctx context.Context, usersCol *mongo.Collection) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")

	if email == "" || pass == "" {
		return fmt.Errorf("missing ADMIN_EMAIL or ADMIN_PASSWORD env vars")
	}

	hash, err := HashPassword(pass)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	// Only insert if it doesn't exist
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":         email,
			"passwordHash":  hash,
			"fullName":      "Administrator",
			"role":          models.RoleAdmin,
			"isActive":      true,
			"loginAttempts": 0,
			"createdAt":     now,
			"updatedAt":     now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)

	res, err := usersCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		log.Println("Admin user seeded:", email)
	} else {
		log.Println("Admin user already exists:", email)
	}

	return nil
}

func SeedRoles(ctx context.Context, rolesCol *mongo.Collection) error {
	defaults := []models.RoleDoc{
		{Name: models.RoleAdmin, Permissions: []string{"*"}, IsActive: true},
		{Name: models.RoleAdvertiser, Permissions: []string{
			"orders:create", "orders:read", "posts:manage", "link-insertions:manage",
		}, IsActive: true},
		{Name: models.RolePublisher, Permissions: []string{
			"orders:read", "orders:progress", "websites:manage",
		}, IsActive: true},
	}

	opts := options.UpdateOne().SetUpsert(true)
	for _, r := range defaults {
		update := bson.M{"$setOnInsert": bson.M{
			"name":        r.Name,
			"permissions": r.Permissions,
			"isActive":    r.IsActive,
		}}
		if _, err := rolesCol.UpdateOne(ctx, bson.M{"name": r.Name}, update, opts); err != nil {
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
	}
	return nil
}

func SeedSystemConfig(ctx context.Context, configCol *mongo.Collection) error {
	now := time.Now().UTC()
	defaults := []models.SystemConfig{
		{
			Key:         models.ConfigTwoFactorRequired,
			Value:       "false",
			Description: "Require an emailed one-time code on every login",
			Category:    "security",
		},
		{
			Key:         models.ConfigMarketplaceOpen,
			Value:       "true",
			Description: "Accept new orders from advertisers",
			Category:    "marketplace",
		},
	}

	opts := options.UpdateOne().SetUpsert(true)
	for _, c := range defaults {
		update := bson.M{"$setOnInsert": bson.M{
			"key":         c.Key,
			"value":       c.Value,
			"description": c.Description,
			"category":    c.Category,
			"updatedAt":   now,
		}}
		if _, err := configCol.UpdateOne(ctx, bson.M{"key": c.Key}, update, opts); err != nil {
			return fmt.Errorf("seed config %s: %w", c.Key, err)
		}
	}
	return nil
}

// GetConfigBool reads a feature toggle; missing keys default to false.
func GetConfigBool(ctx context.Context, configCol *mongo.Collection, key string) bool {
	var cfg models.SystemConfig
	if err := configCol.FindOne(ctx, bson.M{"key": key}).Decode(&cfg); err != nil {
		return false
	}
	return cfg.BoolValue()
}
