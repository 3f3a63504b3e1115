package nanobanana

// ImageOptions contains optional generation settings for a request.
type ImageOptions struct {
	AspectRatio        string
	ResponseModalities []string
}

// ImageOption is a functional option for configuring image generation requests.
type ImageOption func(*ImageOptions)

// WithAspectRatio sets the aspect ratio of the generated image, e.g. "1:1" or "16:9".
func WithAspectRatio(ratio string) ImageOption {
	return func(o *ImageOptions) {
		o.AspectRatio = ratio
	}
}

// WithResponseModalities restricts the modalities the model may return.
// Supported values: "IMAGE", "TEXT"
func WithResponseModalities(modalities ...string) ImageOption {
	return func(o *ImageOptions) {
		o.ResponseModalities = modalities
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
