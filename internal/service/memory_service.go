package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/repository"
	"travelmate-api/pkg/errs"
)

type MemoryServiceImpl struct {
	repo repository.MemoryRepository
}

func CreateNewMemoryService(repo repository.MemoryRepository) MemoryService {
	return &MemoryServiceImpl{repo: repo}
}

func (s *MemoryServiceImpl) GetMemories(ctx context.Context, actor dto.Identity, search string) ([]domain.Memory, error) {
	return s.repo.GetMemories(ctx, actor.ID, search)
}

func (s *MemoryServiceImpl) GetMemoryByID(ctx context.Context, actor dto.Identity, id string) (memory domain.Memory, err error) {
	memoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return memory, errs.ErrNotFound
	}

	return s.repo.GetMemoryByID(ctx, memoryID, actor.ID)
}

func (s *MemoryServiceImpl) AddMemory(ctx context.Context, actor dto.Identity, payload dto.MemoryRequest) (memory domain.Memory, err error) {
	if payload.Title == "" {
		return memory, errs.ErrMissingFields
	}

	now := time.Now()
	memory = domain.Memory{
		UserID:      actor.ID,
		Title:       payload.Title,
		Date:        payload.Date,
		Location:    payload.Location,
		Description: payload.Description,
		Images:      toMemoryImages(payload.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.AddMemory(ctx, memory)
	if err != nil {
		return memory, err
	}
	memory.ID = id

	return memory, nil
}

func (s *MemoryServiceImpl) UpdateMemory(ctx context.Context, actor dto.Identity, id string, payload dto.MemoryUpdateRequest) (memory domain.Memory, err error) {
	memoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return memory, errs.ErrNotFound
	}

	memory, err = s.repo.GetMemoryByID(ctx, memoryID, actor.ID)
	if err != nil {
		return memory, err
	}

	if payload.Title != nil {
		memory.Title = *payload.Title
	}
	if payload.Date != nil {
		memory.Date = *payload.Date
	}
	if payload.Location != nil {
		memory.Location = *payload.Location
	}
	if payload.Description != nil {
		memory.Description = *payload.Description
	}
	if payload.Images != nil {
		memory.Images = toMemoryImages(*payload.Images)
	}
	memory.UpdatedAt = time.Now()

	if err = s.repo.UpdateMemory(ctx, memory); err != nil {
		return memory, err
	}

	return memory, nil
}

func (s *MemoryServiceImpl) DeleteMemory(ctx context.Context, actor dto.Identity, id string) error {
	memoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	return s.repo.DeleteMemory(ctx, memoryID, actor.ID)
}

func toMemoryImages(images []dto.MemoryImageRequest) []domain.MemoryImage {
	result := make([]domain.MemoryImage, 0, len(images))
	for _, image := range images {
		result = append(result, domain.MemoryImage{
			Data:    image.Data,
			Caption: image.Caption,
		})
	}
	return result
}
