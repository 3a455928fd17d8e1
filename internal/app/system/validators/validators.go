// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Collections lists every collection the service writes, in creation order.
var Collections = []string{
	"users",
	"listings",
	"reviews",
	"blogs",
	"comments",
	"account_details",
	"company",
	"checkouts",
	"subscribers",
	"addresses",
	"contact_forms",
	"upcoming_projects",
	"neighbours",
}

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, coll := range Collections {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			continue
		}
		schema, ok := schemas[coll]
		if !ok {
			continue
		}
		if err := setValidator(ctx, db, coll, schema()); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				continue
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	if exists, listErr := collectionExists(ctx, db, name); listErr == nil && exists {
		zap.L().Debug("collection exists", zap.String("collection", name))
		return false, nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func commandErrorMatches(err error, code int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErrorMatches(err, 48, "already exists", "namespace exists")
}

func isNoSuchCommand(err error) bool {
	return commandErrorMatches(err, 59, "no such command")
}

func isNotImplemented(err error) bool {
	return commandErrorMatches(err, 115, "not implemented", "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var (
	nonEmpty   = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	str        = bson.M{"bsonType": "string"}
	optStr     = bson.M{"bsonType": bson.A{"string", "null"}}
	number     = bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}}
	objectID   = bson.M{"bsonType": "objectId"}
	date       = bson.M{"bsonType": "date"}
	stringList = bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
	anyList    = bson.M{"bsonType": "array"}
)

func object(required bson.A, props bson.M) bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType":   "object",
		"required":   required,
		"properties": props,
	}}
}

var schemas = map[string]func() bson.M{
	"users": func() bson.M {
		return object(bson.A{"fname", "lname", "email", "password"}, bson.M{
			"fname":         str,
			"lname":         str,
			"email":         nonEmpty,
			"password":      nonEmpty,
			"reset_token":   str,
			"reset_expires": date,
		})
	},
	"listings": func() bson.M {
		return object(bson.A{"images"}, bson.M{
			"price":            number,
			"area":             number,
			"images":           stringList,
			"pdf_file":         optStr,
			"interior_details": anyList,
			"outdoor_details":  anyList,
			"utilities":        anyList,
			"other_features":   anyList,
		})
	},
	"reviews": func() bson.M {
		return object(bson.A{"listing_id", "date"}, bson.M{
			"listing_id": objectID,
			"date":       date,
		})
	},
	"comments": func() bson.M {
		return object(bson.A{"blog_id", "date", "replies"}, bson.M{
			"blog_id": objectID,
			"date":    date,
			"replies": bson.M{"bsonType": "array", "items": bson.M{
				"bsonType": "object",
				"required": bson.A{"name", "email", "content"},
				"properties": bson.M{
					"name":    nonEmpty,
					"email":   nonEmpty,
					"content": nonEmpty,
				},
			}},
		})
	},
	"blogs": func() bson.M {
		return object(bson.A{"title", "description", "tags", "banner_image"}, bson.M{
			"title":        nonEmpty,
			"description":  nonEmpty,
			"tags":         stringList,
			"banner_image": nonEmpty,
		})
	},
	"account_details": func() bson.M {
		return object(bson.A{"user_id"}, bson.M{"user_id": objectID})
	},
	"checkouts": func() bson.M {
		return object(bson.A{"item_details"}, bson.M{
			"item_details": bson.M{"bsonType": "array", "items": bson.M{
				"bsonType":   "object",
				"properties": bson.M{"item_id": str, "price": number},
			}},
			"total_price": number,
		})
	},
	"subscribers": func() bson.M {
		return object(bson.A{"email"}, bson.M{"email": nonEmpty})
	},
	"addresses": func() bson.M {
		return object(bson.A{"email"}, bson.M{"email": nonEmpty})
	},
	"upcoming_projects": func() bson.M {
		return object(bson.A{"project_name", "type", "address", "no_of_apartments", "investment", "file"}, bson.M{
			"project_name":     nonEmpty,
			"type":             nonEmpty,
			"address":          nonEmpty,
			"no_of_apartments": number,
			"investment":       number,
			"file":             nonEmpty,
		})
	},
	"neighbours": func() bson.M {
		return object(bson.A{"title", "distance", "description", "banner_image", "inner_image"}, bson.M{
			"title":        nonEmpty,
			"distance":     nonEmpty,
			"description":  nonEmpty,
			"banner_image": nonEmpty,
			"inner_image":  nonEmpty,
		})
	},
}
