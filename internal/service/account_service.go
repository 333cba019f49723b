package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"travelmate-api/config"
	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/repository"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/utils"
)

type AccountServiceImpl struct {
	repo   repository.AccountRepository
	config config.Config
}

func CreateNewAccountService(repo repository.AccountRepository, config config.Config) AccountService {
	return &AccountServiceImpl{repo: repo, config: config}
}

func (s *AccountServiceImpl) Register(ctx context.Context, role string, payload dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		return resp, errs.ErrMissingFields
	}

	_, err = s.repo.GetAccountByEmail(ctx, payload.Email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrAccountNotFound {
		return resp, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, err
	}

	account := domain.Account{
		Email:          payload.Email,
		HashedPassword: string(hash),
		Name:           payload.Name,
		Avatar:         utils.AvatarURL(payload.Name),
		Role:           role,
		EmployeeNumber: ulid.Make().String(),
		CreatedAt:      time.Now(),
	}

	id, err := s.repo.AddAccount(ctx, account)
	if err != nil {
		return resp, err
	}
	account.ID = id

	token, err := utils.CreateJWTToken(id.Hex(), account.Email, account.Role, s.config.JWTSecret)
	if err != nil {
		return resp, err
	}

	resp.Token = token
	resp.User = toAccountResponse(account)

	return resp, nil
}

func (s *AccountServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (resp dto.AuthResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return resp, errs.ErrMissingFields
	}

	account, err := s.repo.GetAccountByEmail(ctx, payload.Email)
	if err != nil {
		if err == errs.ErrAccountNotFound {
			return resp, errs.ErrInvalidCredentialsEmail
		}
		return resp, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(account.ID.Hex(), account.Email, account.Role, s.config.JWTSecret)
	if err != nil {
		return resp, err
	}

	resp.Token = token
	resp.User = toAccountResponse(account)

	return resp, nil
}

func (s *AccountServiceImpl) GetAccounts(ctx context.Context) (resp []dto.AccountResponse, err error) {
	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		return
	}

	for _, account := range accounts {
		resp = append(resp, toAccountResponse(account))
	}

	return resp, nil
}

func (s *AccountServiceImpl) GetAccountByID(ctx context.Context, id string) (resp dto.AccountResponse, err error) {
	accountID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return resp, errs.ErrAccountNotFound
	}

	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return resp, err
	}

	return toAccountResponse(account), nil
}

func toAccountResponse(account domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             account.ID.Hex(),
		Email:          account.Email,
		Name:           account.Name,
		Avatar:         account.Avatar,
		Role:           account.Role,
		EmployeeNumber: account.EmployeeNumber,
	}
}
