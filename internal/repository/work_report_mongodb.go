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

type MongoDBWorkReportRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewWorkReportRepository(db *mongo.Database) WorkReportRepository {
	return &MongoDBWorkReportRepositoryImpl{db: db}
}

func (r *MongoDBWorkReportRepositoryImpl) AddWorkReport(ctx context.Context, data domain.WorkReport) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("work_reports").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddWorkReport").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBWorkReportRepositoryImpl) GetWorkReports(ctx context.Context, userID primitive.ObjectID, search string) (reports []domain.WorkReport, err error) {
	filter := withSearch(bson.D{{Key: "user_id", Value: userID}}, search, "project", "tasks", "location", "status")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("work_reports").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWorkReports").Msg("")
		return
	}

	if err = cursor.All(ctx, &reports); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWorkReports").Msg("")
		return
	}

	return reports, nil
}

func (r *MongoDBWorkReportRepositoryImpl) GetWorkReportByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (report domain.WorkReport, err error) {
	err = r.db.Collection("work_reports").FindOne(ctx, ownedFilter(id, userID)).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return report, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetWorkReportByID").Msg("")
		return report, err
	}

	return report, nil
}

func (r *MongoDBWorkReportRepositoryImpl) UpdateWorkReport(ctx context.Context, data domain.WorkReport) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "date", Value: data.Date},
		{Key: "project", Value: data.Project},
		{Key: "tasks", Value: data.Tasks},
		{Key: "location", Value: data.Location},
		{Key: "status", Value: data.Status},
		{Key: "hours", Value: data.Hours},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("work_reports").UpdateOne(ctx, ownedFilter(data.ID, data.UserID), update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateWorkReport").Msg("Failed to update work report")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBWorkReportRepositoryImpl) DeleteWorkReport(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (err error) {
	result, err := r.db.Collection("work_reports").DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteWorkReport").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
