package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContext(t *testing.T) {
	service := NewWidgetService(nil)
	payload := []byte(`{"contactId":"c-42","name":"Ann Lee ~?"}`)

	encodings := map[string]*base64.Encoding{
		"std padded":   base64.StdEncoding,
		"std raw":      base64.RawStdEncoding,
		"url padded":   base64.URLEncoding,
		"url unpadded": base64.RawURLEncoding,
	}

	for name, enc := range encodings {
		t.Run(name, func(t *testing.T) {
			context, err := service.DecodeContext(enc.EncodeToString(payload))
			require.NoError(t, err)
			assert.Equal(t, "c-42", context["contactId"])
			assert.Equal(t, "Ann Lee ~?", context["name"])
		})
	}
}

func TestDecodeContext_Invalid(t *testing.T) {
	service := NewWidgetService(nil)

	cases := map[string]string{
		"empty":      "",
		"not base64": "%%%",
		"not json":   base64.StdEncoding.EncodeToString([]byte("hello")),
		"array":      base64.StdEncoding.EncodeToString([]byte(`[1,2]`)),
		"null":       base64.StdEncoding.EncodeToString([]byte(`null`)),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			context, err := service.DecodeContext(raw)
			assert.ErrorIs(t, err, ErrInvalidWidgetContext)
			assert.Nil(t, context)
		})
	}
}

func TestPlatforms(t *testing.T) {
	service := NewWidgetService(map[string]string{
		PlatformDotloop: "https://crm.example.com/dotloop",
		PlatformSISU:    "",
	})

	platforms := service.Platforms()
	require.Len(t, platforms, 4)
	assert.Equal(t, "MLS", platforms[0].Name)
	assert.Equal(t, "https://www.sisu.co", platforms[1].URL)
	assert.Equal(t, "https://crm.example.com/dotloop", platforms[2].URL)
	assert.Equal(t, "Transaction Management", platforms[3].Description)

	platforms[0].URL = "mutated"
	assert.Equal(t, "https://www.mls.com", service.Platforms()[0].URL)
	assert.Equal(t, "https://www.mls.com", NewWidgetService(nil).Platforms()[0].URL)
}
