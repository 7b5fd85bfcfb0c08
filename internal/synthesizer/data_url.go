package synthesizer

import "strings"

// PlaceholderImage is stored when synthesis fails: a 1x1 gray PNG.
const PlaceholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// DataURL formats base64 image data as data:<mime>;base64,<data>.
func DataURL(mimeType, data string) string {
	return "data:" + mimeType + ";base64," + data
}

// StripDataURL returns the base64 payload of a data URL. Anything that is not
// a data URL is returned unchanged.
func StripDataURL(image string) string {
	if !strings.HasPrefix(image, "data:") {
		return image
	}

	_, payload, found := strings.Cut(image, ",")
	if !found {
		return image
	}

	return payload
}
