package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/realty-dashboard-api/internal/dto"
)

var ErrInvalidWidgetContext = errors.New("invalid widget context")

// Platform keys
const (
	PlatformMLS      = "mls"
	PlatformSISU     = "sisu"
	PlatformDotloop  = "dotloop"
	PlatformSkyslope = "skyslope"
)

var defaultPlatforms = []dto.PlatformDTO{
	{Key: PlatformMLS, Name: "MLS", Description: "Property Search & Listings", URL: "https://www.mls.com"},
	{Key: PlatformSISU, Name: "SISU.co", Description: "Real Estate Analytics", URL: "https://www.sisu.co"},
	{Key: PlatformDotloop, Name: "Dotloop", Description: "Transaction Documents", URL: "https://www.dotloop.com"},
	{Key: PlatformSkyslope, Name: "Skyslope", Description: "Transaction Management", URL: "https://www.skyslope.com"},
}

// WidgetService serves what the embedded widget needs from its host CRM
type WidgetService struct {
	platforms []dto.PlatformDTO
}

// NewWidgetService creates a new WidgetService. urls overrides platform links by key;
// empty values keep the default link.
func NewWidgetService(urls map[string]string) *WidgetService {
	platforms := make([]dto.PlatformDTO, len(defaultPlatforms))
	copy(platforms, defaultPlatforms)
	for i := range platforms {
		if url := urls[platforms[i].Key]; url != "" {
			platforms[i].URL = url
		}
	}
	return &WidgetService{platforms: platforms}
}

// Platforms returns the external platform links in display order
func (s *WidgetService) Platforms() []dto.PlatformDTO {
	platforms := make([]dto.PlatformDTO, len(s.platforms))
	copy(platforms, s.platforms)
	return platforms
}

// DecodeContext decodes the base64 JSON object the CRM appends to the iframe URL.
// Both the standard and the URL-safe alphabet are accepted, with or without padding.
func (s *WidgetService) DecodeContext(raw string) (map[string]interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidWidgetContext)
	}

	decoded, err := decodeBase64(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidgetContext, err)
	}

	var context map[string]interface{}
	if err := json.Unmarshal(decoded, &context); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidgetContext, err)
	}
	if context == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidWidgetContext)
	}

	return context, nil
}

func decodeBase64(raw string) ([]byte, error) {
	unpadded := strings.TrimRight(raw, "=")
	encodings := []*base64.Encoding{base64.RawStdEncoding, base64.RawURLEncoding}

	var lastErr error
	for _, enc := range encodings {
		decoded, err := enc.DecodeString(unpadded)
		if err == nil {
			return decoded, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
