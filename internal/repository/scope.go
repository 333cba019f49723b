package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ownedFilter matches a record by id and owner in a single query, so a
// cross-owner id and a nonexistent id produce the same not-found result.
func ownedFilter(id primitive.ObjectID, userID primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "user_id", Value: userID}}
}

// withSearch appends the case-insensitive substring OR-filter used by
// every list endpoint. An empty search term leaves the base filter
// unchanged; the term is quoted so it is matched literally, not as a
// regex.
func withSearch(base bson.D, search string, fields ...string) bson.D {
	if search == "" {
		return base
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := bson.A{}
	for _, field := range fields {
		or = append(or, bson.D{{Key: field, Value: pattern}})
	}

	return append(base, bson.E{Key: "$or", Value: or})
}
