package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"gorm.io/gorm"
)

// OpenLoanCounter reports open loans on an item. Implemented by the loan repository.
type OpenLoanCounter interface {
	CountOpenByItem(ctx context.Context, db *gorm.DB, ref model.ItemRef) (int64, error)
}

type CatalogService struct {
	db                *gorm.DB
	catalogRepository *CatalogRepository
	openLoans         OpenLoanCounter
}

func NewCatalogService(db *gorm.DB, catalogRepository *CatalogRepository, openLoans OpenLoanCounter) *CatalogService {
	return &CatalogService{
		db:                db,
		catalogRepository: catalogRepository,
		openLoans:         openLoans,
	}
}

func (s *CatalogService) AddMedia(ctx context.Context, request *CreateMediaRequest) (*MediaResponse, error) {
	log := logger.FromContext(ctx)

	mediaType, ok := model.ParseMediaType(request.Type)
	if !ok {
		return nil, fmt.Errorf("media type %q: %w", request.Type, ErrInvalidMediaType)
	}

	available := true
	if request.Available != nil {
		available = *request.Available
	}

	item, _ := model.NewItem(mediaType, request.Name, request.Creator, available)
	if err := s.catalogRepository.Create(ctx, s.db, item); err != nil {
		log.Error("Failed to create media", "type", mediaType, "error", err)
		return nil, fmt.Errorf("create media: %w", err)
	}

	log.Info("Media created", "type", mediaType, "id", item.GetID())
	return toMediaResponse(item), nil
}

// ListMedia returns the whole catalog grouped by media type
func (s *CatalogService) ListMedia(ctx context.Context) (*MediaListResponse, error) {
	grouped := make(map[model.MediaType][]MediaResponse, len(model.MediaTypes))
	for _, mediaType := range model.MediaTypes {
		items, err := s.catalogRepository.FindAll(ctx, s.db, mediaType)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", mediaType, err)
		}
		grouped[mediaType] = toMediaResponses(items)
	}

	return &MediaListResponse{
		CDs:        grouped[model.MediaTypeCD],
		DVDs:       grouped[model.MediaTypeDVD],
		Books:      grouped[model.MediaTypeBook],
		BoardGames: grouped[model.MediaTypeBoardGame],
	}, nil
}

// AvailableItemsFor lists the items of a media type that are on the shelf.
// Callers use it to offer choices before building a loan request.
func (s *CatalogService) AvailableItemsFor(ctx context.Context, mediaTypeName string) ([]MediaResponse, error) {
	mediaType, ok := model.ParseMediaType(mediaTypeName)
	if !ok {
		return nil, fmt.Errorf("media type %q: %w", mediaTypeName, ErrInvalidMediaType)
	}

	items, err := s.catalogRepository.FindAvailable(ctx, s.db, mediaType)
	if err != nil {
		return nil, fmt.Errorf("find available %s: %w", mediaType, err)
	}
	return toMediaResponses(items), nil
}

func (s *CatalogService) GetMedia(ctx context.Context, mediaTypeName string, id uint32) (*MediaResponse, error) {
	mediaType, ok := model.ParseMediaType(mediaTypeName)
	if !ok {
		return nil, fmt.Errorf("media type %q: %w", mediaTypeName, ErrInvalidMediaType)
	}

	item, err := s.catalogRepository.FindByID(ctx, s.db, model.ItemRef{Type: mediaType, ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("media %s/%d: %w", mediaType, id, ErrMediaNotFound)
		}
		return nil, fmt.Errorf("find media: %w", err)
	}
	return toMediaResponse(item), nil
}

// DeleteMedia removes an item from the catalog.
// Open loans on the item are left untouched; returning them later closes the
// loan without releasing anything.
func (s *CatalogService) DeleteMedia(ctx context.Context, mediaTypeName string, id uint32) error {
	log := logger.FromContext(ctx)

	mediaType, ok := model.ParseMediaType(mediaTypeName)
	if !ok {
		return fmt.Errorf("media type %q: %w", mediaTypeName, ErrInvalidMediaType)
	}
	ref := model.ItemRef{Type: mediaType, ID: id}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if s.openLoans != nil {
			open, err := s.openLoans.CountOpenByItem(ctx, tx, ref)
			if err != nil {
				return fmt.Errorf("count open loans: %w", err)
			}
			if open > 0 {
				log.Warn("Deleting media with open loans", "type", mediaType, "id", id, "open_loans", open)
			}
		}

		deleted, err := s.catalogRepository.Delete(ctx, tx, ref)
		if err != nil {
			log.Error("Failed to delete media", "type", mediaType, "id", id, "error", err)
			return fmt.Errorf("delete media: %w", err)
		}
		if !deleted {
			return fmt.Errorf("media %s/%d: %w", mediaType, id, ErrMediaNotFound)
		}

		log.Info("Media deleted", "type", mediaType, "id", id)
		return nil
	})
}

func toMediaResponses(items []model.Item) []MediaResponse {
	responses := make([]MediaResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *toMediaResponse(item))
	}
	return responses
}

func toMediaResponse(item model.Item) *MediaResponse {
	response := &MediaResponse{
		ID:        item.GetID(),
		Type:      item.Type().String(),
		Name:      item.GetName(),
		Available: item.IsAvailable(),
	}

	switch v := item.(type) {
	case *model.CD:
		response.Artist = v.Artist
	case *model.DVD:
		response.Director = v.Director
	case *model.Book:
		response.Author = v.Author
	}
	return response
}
