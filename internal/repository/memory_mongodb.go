package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelmate-api/internal/domain"
	"travelmate-api/pkg/errs"
)

type MongoDBMemoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMemoryRepository(db *mongo.Database) MemoryRepository {
	return &MongoDBMemoryRepositoryImpl{db: db}
}

func (r *MongoDBMemoryRepositoryImpl) AddMemory(ctx context.Context, data domain.Memory) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("memories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddMemory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBMemoryRepositoryImpl) GetMemories(ctx context.Context, userID primitive.ObjectID, search string) (memories []domain.Memory, err error) {
	filter := withSearch(bson.D{{Key: "user_id", Value: userID}}, search, "title", "description", "location")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("memories").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMemories").Msg("")
		return
	}

	if err = cursor.All(ctx, &memories); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMemories").Msg("")
		return
	}

	return memories, nil
}

func (r *MongoDBMemoryRepositoryImpl) GetMemoryByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (memory domain.Memory, err error) {
	err = r.db.Collection("memories").FindOne(ctx, ownedFilter(id, userID)).Decode(&memory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return memory, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetMemoryByID").Msg("")
		return memory, err
	}

	return memory, nil
}

func (r *MongoDBMemoryRepositoryImpl) UpdateMemory(ctx context.Context, data domain.Memory) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: data.Title},
		{Key: "date", Value: data.Date},
		{Key: "location", Value: data.Location},
		{Key: "description", Value: data.Description},
		{Key: "images", Value: data.Images},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("memories").UpdateOne(ctx, ownedFilter(data.ID, data.UserID), update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateMemory").Msg("Failed to update memory")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBMemoryRepositoryImpl) DeleteMemory(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (err error) {
	result, err := r.db.Collection("memories").DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteMemory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
