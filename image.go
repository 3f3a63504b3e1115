package nanobanana

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// ImageProvider defines the interface for Gemini image generation clients.
type ImageProvider interface {
	// GenerateImage creates an image from a text prompt and writes it to outputPath.
	GenerateImage(ctx context.Context, prompt, outputPath string, opts ...ImageOption) (*Response, error)
	// EditImage transforms the given reference images according to the prompt.
	EditImage(ctx context.Context, prompt string, imageSources []string, outputPath string, opts ...ImageOption) (*Response, error)
}

// ImageInput is a reference image attached to a request.
type ImageInput struct {
	// Source is the path or URL the image was loaded from.
	Source string
	// MimeType is one of image/jpeg, image/png, image/gif, image/webp.
	MimeType string
	// Data is the raw image bytes.
	Data []byte
}

// Base64 returns the standard base64 encoding of the image bytes.
func (in ImageInput) Base64() string {
	return base64.StdEncoding.EncodeToString(in.Data)
}

// supportedMimeTypes maps sniffed content types to the type sent to the API.
var supportedMimeTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
	"image/gif":  "image/gif",
	"image/webp": "image/webp",
}

// DetectMimeType sniffs the content type of data. It returns the detected
// type and whether it is one of the supported image formats; for supported
// formats the returned type is normalised (image/jpg becomes image/jpeg).
func DetectMimeType(data []byte) (string, bool) {
	detected := http.DetectContentType(data)
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = strings.TrimSpace(detected[:i])
	}
	if mime, ok := supportedMimeTypes[detected]; ok {
		return mime, true
	}
	return detected, false
}

// NewImageInput sniffs data and returns an ImageInput, or an
// *UnsupportedImageFormatError if the format is not supported.
func NewImageInput(source string, data []byte) (ImageInput, error) {
	mime, ok := DetectMimeType(data)
	if !ok {
		return ImageInput{}, &UnsupportedImageFormatError{Source: source, MimeType: mime}
	}
	return ImageInput{Source: source, MimeType: mime, Data: data}, nil
}

// ImagePolicy decides what happens to a reference image of unsupported format.
type ImagePolicy string

const (
	// ImagePolicyStrict fails the call with ErrUnsupportedImageFormat.
	ImagePolicyStrict ImagePolicy = "strict"
	// ImagePolicySkip drops the image from the request and continues.
	ImagePolicySkip ImagePolicy = "skip"
)

// ParseImagePolicy parses "strict" or "skip". An empty string yields strict.
func ParseImagePolicy(s string) (ImagePolicy, error) {
	switch ImagePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ImagePolicyStrict:
		return ImagePolicyStrict, nil
	case ImagePolicySkip:
		return ImagePolicySkip, nil
	default:
		return "", fmt.Errorf("unknown image policy %q (want strict or skip)", s)
	}
}
