package nanobanana

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00")
	webpBytes = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
)

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		expected  string
		supported bool
	}{
		{"png", pngBytes, "image/png", true},
		{"jpeg", jpegBytes, "image/jpeg", true},
		{"gif", gifBytes, "image/gif", true},
		{"webp", webpBytes, "image/webp", true},
		{"bmp", []byte("BM\x00\x00\x00\x00"), "image/bmp", false},
		{"plain text", []byte("hello world"), "text/plain", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ok := DetectMimeType(tt.data)
			assert.Equal(t, tt.expected, mime)
			assert.Equal(t, tt.supported, ok)
		})
	}
}

func TestNewImageInput(t *testing.T) {
	t.Run("accepts supported image", func(t *testing.T) {
		in, err := NewImageInput("cat.png", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "image/png", in.MimeType)
		assert.Equal(t, "cat.png", in.Source)
		assert.Equal(t, base64.StdEncoding.EncodeToString(pngBytes), in.Base64())
	})

	t.Run("rejects unsupported image", func(t *testing.T) {
		_, err := NewImageInput("notes.txt", []byte("hello"))
		var unsupported *UnsupportedImageFormatError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "notes.txt", unsupported.Source)
		assert.Equal(t, "text/plain", unsupported.MimeType)
	})
}

func TestParseImagePolicy(t *testing.T) {
	tests := []struct {
		in       string
		expected ImagePolicy
		wantErr  bool
	}{
		{"", ImagePolicyStrict, false},
		{"strict", ImagePolicyStrict, false},
		{" SKIP ", ImagePolicySkip, false},
		{"lenient", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseImagePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}
