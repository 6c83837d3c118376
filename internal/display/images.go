package display

import (
	"encoding/base64"
	"strings"
	"sync"
)

// Bucket holding product, loja and banner imagery in object storage.
const ImageBucket = "produtos"

// ImageURL resolves a stored image path to a display URL. Absolute URLs pass
// through; relative paths are joined to the storage base; an absent path or
// an unconfigured base yields the inline placeholder so no broken URL is ever
// emitted.
func ImageURL(path, baseURL string) string {
	if path == "" {
		return PlaceholderDataURL()
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if baseURL == "" {
		return PlaceholderDataURL()
	}
	path = strings.TrimPrefix(path, "/")
	return strings.TrimSuffix(baseURL, "/") + "/storage/v1/object/public/" + ImageBucket + "/" + path
}

// ImageURLPtr is ImageURL for the optional image columns.
func ImageURLPtr(path *string, baseURL string) string {
	if path == nil {
		return PlaceholderDataURL()
	}
	return ImageURL(*path, baseURL)
}

const placeholderSVG = `<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="#f8f9fa"/>
  <defs>
    <linearGradient id="turattiGradient" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#3b82f6;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#1e40af;stop-opacity:1" />
    </linearGradient>
  </defs>
  <circle cx="100" cy="80" r="35" fill="url(#turattiGradient)" opacity="0.1"/>
  <circle cx="60" cy="130" r="20" fill="url(#turattiGradient)" opacity="0.08"/>
  <circle cx="140" cy="130" r="25" fill="url(#turattiGradient)" opacity="0.08"/>
  <text x="100" y="105" font-family="Arial, sans-serif" font-size="16" font-weight="bold" fill="url(#turattiGradient)" text-anchor="middle">TURATTI</text>
  <text x="100" y="125" font-family="Arial, sans-serif" font-size="12" fill="#6b7280" text-anchor="middle">Material de Construção</text>
</svg>`

var placeholderOnce = sync.OnceValue(func() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(placeholderSVG))
})

// PlaceholderDataURL returns the inline brand-mark graphic used wherever no
// image is available. It renders without any network request.
func PlaceholderDataURL() string {
	return placeholderOnce()
}
