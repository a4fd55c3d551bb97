package media

import (
	"context"
	"regexp"
)

// IMediaUsecase talks to the external object-storage service that hosts
// bot images. Deletion is best effort: implementations log failures and
// never surface them to the caller.
type IMediaUsecase interface {
	DeleteByURLs(ctx context.Context, urls []string)
}

// Uploaded file URLs carry their object key as the path segment after
// /f/, up to the query string.
var fileKeyPattern = regexp.MustCompile(`/f/([^?]+)`)

// FileKeyFromURL extracts the object key from a media URL. The second
// return value is false when the URL has no extractable key.
func FileKeyFromURL(url string) (string, bool) {
	m := fileKeyPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FileKeysFromURLs collects the extractable keys from a URL list,
// skipping empty URLs and URLs without a key.
func FileKeysFromURLs(urls []string) []string {
	var keys []string
	for _, u := range urls {
		if u == "" {
			continue
		}
		if key, ok := FileKeyFromURL(u); ok {
			keys = append(keys, key)
		}
	}
	return keys
}
