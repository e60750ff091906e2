package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoardspot/hoardspot-api/internal/pkg/imaging"
	"github.com/hoardspot/hoardspot-api/internal/pkg/storage"
)

const maxPhotosPerSpace = 12

// SpaceCoverSetter lets the photo service push the cover URL back onto
// the listing without importing the space domain.
type SpaceCoverSetter interface {
	SetCoverPhoto(ctx context.Context, spaceID uuid.UUID, url string) error
}

// Service handles space photo uploads
type Service struct {
	repo      Repository
	store     storage.Storage
	processor *imaging.Processor
	covers    SpaceCoverSetter
}

// NewService creates photo service
func NewService(repo Repository, store storage.Storage, processor *imaging.Processor, covers SpaceCoverSetter) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		processor: processor,
		covers:    covers,
	}
}

// Upload processes and stores one photo for a space
func (s *Service) Upload(ctx context.Context, spaceID uuid.UUID, filename string, size int64, reader io.Reader) (*Photo, error) {
	if !imaging.ValidateType(filename) {
		return nil, ErrInvalidFileType
	}
	if !imaging.ValidateSize(size) {
		return nil, ErrFileTooLarge
	}

	count, err := s.repo.CountBySpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if count >= maxPhotosPerSpace {
		return nil, ErrTooManyPhotos
	}

	processed, err := s.processor.Process(reader, filename)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := fmt.Sprintf("spaces/%s/%s", spaceID, id)
	thumbKey := key + "_thumb"

	if err := s.store.Save(ctx, key, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		// Original is already up; remove it so storage doesn't leak
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	p := &Photo{
		ID:           id,
		SpaceID:      spaceID,
		Key:          key,
		ThumbKey:     thumbKey,
		URL:          s.store.GetURL(key),
		ThumbURL:     s.store.GetURL(thumbKey),
		OriginalName: filename,
		MimeType:     processed.ContentType,
		SizeBytes:    int64(len(processed.Original)),
		IsCover:      count == 0, // first photo becomes the cover
		SortOrder:    count,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.store.Delete(ctx, key)
		_ = s.store.Delete(ctx, thumbKey)
		return nil, err
	}

	if p.IsCover && s.covers != nil {
		if err := s.covers.SetCoverPhoto(ctx, spaceID, p.ThumbURL); err != nil {
			log.Warn().Err(err).Str("space_id", spaceID.String()).Msg("Failed to set listing cover photo")
		}
	}

	return p, nil
}

// ListBySpace returns photos for a space in display order
func (s *Service) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*Photo, error) {
	return s.repo.ListBySpace(ctx, spaceID)
}

// Delete removes a photo and its stored files
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPhotoNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Storage cleanup is best-effort
	if err := s.store.Delete(ctx, p.Key); err != nil {
		log.Warn().Err(err).Str("key", p.Key).Msg("Failed to delete photo from storage")
	}
	if err := s.store.Delete(ctx, p.ThumbKey); err != nil {
		log.Warn().Err(err).Str("key", p.ThumbKey).Msg("Failed to delete thumbnail from storage")
	}

	return nil
}

// SetCover marks a photo as the space's cover image
func (s *Service) SetCover(ctx context.Context, spaceID, photoID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if p == nil || p.SpaceID != spaceID {
		return ErrPhotoNotFound
	}

	if err := s.repo.SetCover(ctx, spaceID, photoID); err != nil {
		return err
	}

	if s.covers != nil {
		if err := s.covers.SetCoverPhoto(ctx, spaceID, p.ThumbURL); err != nil {
			log.Warn().Err(err).Str("space_id", spaceID.String()).Msg("Failed to set listing cover photo")
		}
	}
	return nil
}
