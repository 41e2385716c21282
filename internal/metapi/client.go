package metapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the Metropolitan Museum of Art collection API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchRandomArtworks samples up to count objects from the catalog without
// replacement. Records missing an id or a title are discarded, and a failed
// detail fetch is logged and skipped; neither aborts the batch. The call
// returns fewer than count records when the catalog runs out of untried
// identifiers, so callers must treat the result length as authoritative.
func (c *Client) FetchRandomArtworks(ctx context.Context, count int) ([]ObjectRecord, error) {
	list, err := c.fetchObjectList(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch artworks: %w", err)
	}

	total := list.Total
	if total > len(list.ObjectIDs) {
		total = len(list.ObjectIDs)
	}
	if total <= 0 {
		return nil, nil
	}

	records := make([]ObjectRecord, 0, count)
	used := make(map[int]struct{})

	for len(records) < count && len(used) < total {
		idx := rand.Intn(total)
		if _, seen := used[idx]; seen {
			continue
		}
		used[idx] = struct{}{}

		objectID := list.ObjectIDs[idx]
		record, err := c.fetchObject(ctx, objectID)
		if err != nil {
			c.logger.Warn("failed to fetch artwork detail",
				zap.Int("object_id", objectID), zap.Error(err))
			continue
		}
		if record.ObjectID == 0 || record.Title == "" {
			c.logger.Warn("discarding artwork with missing id or title",
				zap.Int("object_id", objectID))
			continue
		}
		records = append(records, *record)
	}

	return records, nil
}

func (c *Client) fetchObjectList(ctx context.Context) (*objectListResponse, error) {
	var list objectListResponse
	if err := c.getJSON(ctx, c.baseURL+"/objects", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) fetchObject(ctx context.Context, objectID int) (*ObjectRecord, error) {
	var record ObjectRecord
	endpoint := fmt.Sprintf("%s/objects/%d", c.baseURL, objectID)
	if err := c.getJSON(ctx, endpoint, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("met API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}
	return nil
}
