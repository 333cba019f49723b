package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelmate-api/internal/domain"
	"travelmate-api/pkg/errs"
)

var absenceSearchFields = []string{"employee_name", "employee_id", "location", "description"}

type MongoDBAbsenceRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewAbsenceRepository(db *mongo.Database) AbsenceRepository {
	return &MongoDBAbsenceRepositoryImpl{db: db}
}

func (r *MongoDBAbsenceRepositoryImpl) AddAbsenceRequest(ctx context.Context, data domain.WeatherAbsenceRequest) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("absence_requests").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAbsenceRequest").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBAbsenceRepositoryImpl) GetAbsenceRequests(ctx context.Context, search string) (requests []domain.WeatherAbsenceRequest, err error) {
	filter := withSearch(bson.D{}, search, absenceSearchFields...)

	return r.findAbsenceRequests(ctx, filter, "GetAbsenceRequests")
}

func (r *MongoDBAbsenceRepositoryImpl) GetAbsenceRequestsByUser(ctx context.Context, userID primitive.ObjectID, search string) (requests []domain.WeatherAbsenceRequest, err error) {
	filter := withSearch(bson.D{{Key: "user_id", Value: userID}}, search, absenceSearchFields...)

	return r.findAbsenceRequests(ctx, filter, "GetAbsenceRequestsByUser")
}

func (r *MongoDBAbsenceRepositoryImpl) GetPendingAbsenceRequests(ctx context.Context) (requests []domain.WeatherAbsenceRequest, err error) {
	filter := bson.D{{Key: "status", Value: domain.AbsenceStatusPending}}

	return r.findAbsenceRequests(ctx, filter, "GetPendingAbsenceRequests")
}

func (r *MongoDBAbsenceRepositoryImpl) findAbsenceRequests(ctx context.Context, filter bson.D, component string) (requests []domain.WeatherAbsenceRequest, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})

	cursor, err := r.db.Collection("absence_requests").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &requests); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return requests, nil
}

func (r *MongoDBAbsenceRepositoryImpl) GetAbsenceRequestByID(ctx context.Context, id primitive.ObjectID) (request domain.WeatherAbsenceRequest, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("absence_requests").FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return request, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetAbsenceRequestByID").Msg("")
		return request, err
	}

	return request, nil
}

func (r *MongoDBAbsenceRepositoryImpl) UpdateAbsenceReview(ctx context.Context, id primitive.ObjectID, status string, comment *string) (err error) {
	set := bson.D{
		{Key: "status", Value: status},
		{Key: "reviewed_at", Value: time.Now()},
	}
	if comment != nil {
		set = append(set, bson.E{Key: "comment", Value: *comment})
	}

	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("absence_requests").UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateAbsenceReview").Msg("Failed to update absence request")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBAbsenceRepositoryImpl) UpdateAbsenceVerification(ctx context.Context, id primitive.ObjectID, snapshot domain.VerificationSnapshot) (err error) {
	// Only a still-pending request may have its snapshot refreshed.
	filter := bson.D{{Key: "_id", Value: id}, {Key: "status", Value: domain.AbsenceStatusPending}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "verification", Value: snapshot}}}}

	result, err := r.db.Collection("absence_requests").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateAbsenceVerification").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBAbsenceRepositoryImpl) DeleteAbsenceRequest(ctx context.Context, id primitive.ObjectID) (err error) {
	return r.deleteAbsence(ctx, bson.D{{Key: "_id", Value: id}}, "DeleteAbsenceRequest")
}

func (r *MongoDBAbsenceRepositoryImpl) DeleteAbsenceRequestByOwner(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (err error) {
	return r.deleteAbsence(ctx, ownedFilter(id, userID), "DeleteAbsenceRequestByOwner")
}

func (r *MongoDBAbsenceRepositoryImpl) deleteAbsence(ctx context.Context, filter bson.D, component string) (err error) {
	result, err := r.db.Collection("absence_requests").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
