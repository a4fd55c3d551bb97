package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zanyar-dev/botarium/core/config"
	domainMedia "github.com/zanyar-dev/botarium/domains/media"
)

const mediaRequestTimeout = 10 * time.Second

type mediaService struct {
	apiURL   string
	apiToken string
	client   *http.Client
}

func NewMediaService(cfg *config.Config) domainMedia.IMediaUsecase {
	return &mediaService{
		apiURL:   cfg.Media.APIURL,
		apiToken: cfg.Media.APIToken,
		client:   &http.Client{Timeout: mediaRequestTimeout},
	}
}

// DeleteByURLs removes the uploaded objects behind the given URLs from
// the external storage service. Best effort: URLs without an
// extractable key are skipped without a call, and request failures are
// logged and swallowed so record deletion never rolls back over media.
func (s *mediaService) DeleteByURLs(ctx context.Context, urls []string) {
	keys := domainMedia.FileKeysFromURLs(urls)
	if len(keys) == 0 {
		return
	}

	if err := s.deleteFiles(ctx, keys); err != nil {
		logrus.WithError(err).Warnf("[MEDIA] failed to delete %d file(s) from storage", len(keys))
	}
}

func (s *mediaService) deleteFiles(ctx context.Context, keys []string) error {
	payload, err := json.Marshal(map[string][]string{"fileKeys": keys})
	if err != nil {
		return fmt.Errorf("failed to marshal delete request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/v6/deleteFiles", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uploadthing-Api-Key", s.apiToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("media service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("media service returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
