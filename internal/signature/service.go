package signature

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/onemapafrica/member-hub-api/internal/config"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/shared/database"
	"gorm.io/gorm"
)

// Image is a detached copy of the current signature bytes, safe for the
// renderer to hold across a slow compose without pinning a DB row.
type Image struct {
	ContentType string
	Data        []byte
}

type SignatureService struct {
	db            *gorm.DB
	repository    *SignatureRepository
	maxUploadSize int64
	publicBaseURL string
}

func NewSignatureService(db *gorm.DB, cfg *config.Config, repository *SignatureRepository) *SignatureService {
	return &SignatureService{
		db:            db,
		repository:    repository,
		maxUploadSize: cfg.Signature.MaxUploadSize,
		publicBaseURL: strings.TrimSuffix(cfg.App.PublicBaseURL, "/"),
	}
}

// UploadImage validates and stores one uploaded image as an asset. The size
// and content-type checks run before anything touches storage, so a rejected
// upload leaves no row behind.
func (s *SignatureService) UploadImage(ctx context.Context, contentType string, size int64, body io.Reader) (*UploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrSignatureBadType
	}
	if size > s.maxUploadSize {
		return nil, ErrSignatureTooLarge
	}

	// The declared size passed, but the body is still capped in case the two
	// disagree.
	data, err := io.ReadAll(io.LimitReader(body, s.maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}
	if int64(len(data)) > s.maxUploadSize {
		return nil, ErrSignatureTooLarge
	}

	asset := &model.Asset{
		ID:          uuid.NewString(),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
	if err := s.repository.CreateAsset(ctx, s.db, asset); err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}

	return &UploadResponse{
		Success: true,
		Message: "Image uploaded successfully.",
		Asset: AssetRef{
			ID:  asset.ID,
			URL: s.assetURL(asset.ID),
		},
	}, nil
}

func (s *SignatureService) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	asset, err := s.repository.FindAsset(ctx, s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return asset, nil
}

// Get returns the current signature reference, if one has been set.
func (s *SignatureService) Get(ctx context.Context) (*SignatureResponse, error) {
	sig, err := s.repository.FindSignature(ctx, s.db)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSignatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find signature: %w", err)
	}

	return &SignatureResponse{
		AssetID:   sig.AssetID,
		URL:       s.assetURL(sig.AssetID),
		UpdatedAt: sig.UpdatedAt,
	}, nil
}

// Set points the singleton at the given asset, creating the row on first use
// and replacing the reference in place thereafter.
func (s *SignatureService) Set(ctx context.Context, assetID string) (*SignatureResponse, error) {
	var response *SignatureResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.repository.FindAsset(ctx, tx, assetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return fmt.Errorf("find asset: %w", err)
		}

		sig, err := s.repository.FindSignature(ctx, tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sig = &model.Signature{AssetID: assetID}
		} else if err != nil {
			return fmt.Errorf("find signature: %w", err)
		} else {
			sig.AssetID = assetID
		}

		if err := s.repository.SaveSignature(ctx, tx, sig); err != nil {
			return fmt.Errorf("save signature: %w", err)
		}

		response = &SignatureResponse{
			AssetID:   sig.AssetID,
			URL:       s.assetURL(sig.AssetID),
			UpdatedAt: sig.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// Delete removes the singleton. Deleting when nothing is set is an error so
// the client can distinguish "cleared" from "was already empty".
func (s *SignatureService) Delete(ctx context.Context) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		sig, err := s.repository.FindSignature(ctx, tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSignatureNotFound
		}
		if err != nil {
			return fmt.Errorf("find signature: %w", err)
		}
		return s.repository.DeleteSignature(ctx, tx, sig.ID)
	})
}

// Snapshot resolves the current signature to its image bytes. The returned
// copy stays valid even if the signature is replaced mid-render.
func (s *SignatureService) Snapshot(ctx context.Context) (*Image, error) {
	sig, err := s.repository.FindSignature(ctx, s.db)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSignatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find signature: %w", err)
	}

	asset, err := s.repository.FindAsset(ctx, s.db, sig.AssetID)
	if err != nil {
		return nil, fmt.Errorf("find signature asset: %w", err)
	}

	data := make([]byte, len(asset.Data))
	copy(data, asset.Data)

	return &Image{ContentType: asset.ContentType, Data: data}, nil
}

func (s *SignatureService) assetURL(id string) string {
	return s.publicBaseURL + "/assets/" + id
}
