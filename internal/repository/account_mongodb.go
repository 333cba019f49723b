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

type MongoDBAccountRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewAccountRepository(db *mongo.Database) AccountRepository {
	return &MongoDBAccountRepositoryImpl{db: db}
}

func (r *MongoDBAccountRepositoryImpl) AddAccount(ctx context.Context, data domain.Account) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("accounts").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAccount").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBAccountRepositoryImpl) GetAccountByEmail(ctx context.Context, email string) (account domain.Account, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("accounts").FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return account, errs.ErrAccountNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetAccountByEmail").Msg("")
		return account, err
	}

	return account, nil
}

func (r *MongoDBAccountRepositoryImpl) GetAccountByID(ctx context.Context, id primitive.ObjectID) (account domain.Account, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("accounts").FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return account, errs.ErrAccountNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetAccountByID").Msg("")
		return account, err
	}

	return account, nil
}

func (r *MongoDBAccountRepositoryImpl) GetAccounts(ctx context.Context) (accounts []domain.Account, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("accounts").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAccounts").Msg("")
		return
	}

	if err = cursor.All(ctx, &accounts); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAccounts").Msg("")
		return
	}

	return accounts, nil
}
