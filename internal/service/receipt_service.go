package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	MaxReceiptSize = 5 * 1024 * 1024 // 5MB decoded
	ThumbnailWidth = 200
	JPEGQuality    = 85
)

var (
	ErrReceiptTooLarge      = errors.New("receipt too large. Maximum size is 5MB")
	ErrInvalidReceiptFormat = errors.New("invalid format. Supported: JPEG, PNG, GIF")
	ErrInvalidReceiptData   = errors.New("invalid receipt data")
)

// allowedReceiptFormats contains the supported image MIME types.
var allowedReceiptFormats = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ReceiptService stores data-URI encoded receipt images and derives a
// small JPEG thumbnail for list views.
type ReceiptService struct {
	receiptRepo domain.ReceiptRepository
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo domain.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// Save validates and stores a receipt image, plus its thumbnail, and
// returns the key to reference from a transaction's receiptPath.
func (s *ReceiptService) Save(filename, dataURI string) (string, error) {
	payload, mimeType, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if !allowedReceiptFormats[mimeType] {
		return "", ErrInvalidReceiptFormat
	}
	if len(payload) > MaxReceiptSize {
		return "", ErrReceiptTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return "", ErrInvalidReceiptData
	}

	key, err := s.receiptRepo.Save(filename, dataURI)
	if err != nil {
		return "", err
	}

	// Thumbnail failures leave the original intact.
	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("Failed to encode receipt thumbnail")
		return key, nil
	}
	thumbURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if _, err := s.receiptRepo.Save("thumb_"+filename, thumbURI); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("Failed to store receipt thumbnail")
	}
	return key, nil
}

// Get returns the stored data URI for a receipt key.
func (s *ReceiptService) Get(key string) (string, error) {
	return s.receiptRepo.Get(key)
}

// GetThumbnail returns the thumbnail data URI for a receipt key, falling
// back to the original when no thumbnail was stored.
func (s *ReceiptService) GetThumbnail(key string) (string, error) {
	dataURI, err := s.receiptRepo.Get(thumbnailKey(key))
	if errors.Is(err, domain.ErrReceiptNotFound) {
		return s.receiptRepo.Get(key)
	}
	return dataURI, err
}

// Delete removes a receipt and its thumbnail.
func (s *ReceiptService) Delete(key string) error {
	if err := s.receiptRepo.Remove(thumbnailKey(key)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to remove receipt thumbnail")
	}
	return s.receiptRepo.Remove(key)
}

func thumbnailKey(key string) string {
	return strings.Replace(key, "receipt_", "receipt_thumb_", 1)
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" string into the
// decoded payload and its MIME type.
func decodeDataURI(dataURI string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return nil, "", ErrInvalidReceiptData
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrInvalidReceiptData
	}
	mimeType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return nil, "", ErrInvalidReceiptData
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", ErrInvalidReceiptData
	}
	return payload, mimeType, nil
}
