package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://api.dataforseo.com"
	mapsLivePath     = "/v3/serp/google/maps/live/advanced"
	defaultTimeout   = 5 * time.Second
	defaultRateLimit = 5 // requests per second against the paid API
)

// DataForSEO implements Client against the DataForSEO Google Maps live
// endpoint, authenticated with basic-auth credentials.
type DataForSEO struct {
	login      string
	password   string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewDataForSEO creates a provider client. Requests time out after a few
// seconds; expiry is reported as an error so callers take the fallback
// path.
func NewDataForSEO(login, password string, timeout time.Duration) *DataForSEO {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DataForSEO{
		login:    login,
		password: password,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateLimit),
	}
}

// DataForSEO task envelope. The schema is optional at every nesting
// level; all slices decode to nil when absent.
type dfsResponse struct {
	StatusCode    int       `json:"status_code"`
	StatusMessage string    `json:"status_message"`
	Tasks         []dfsTask `json:"tasks,omitempty"`
}

type dfsTask struct {
	ID            string      `json:"id"`
	StatusCode    int         `json:"status_code"`
	StatusMessage string      `json:"status_message"`
	Result        []dfsResult `json:"result,omitempty"`
}

type dfsResult struct {
	Items []dfsItem `json:"items,omitempty"`
}

type dfsItem struct {
	PlaceID string `json:"place_id,omitempty"`
	Title   string `json:"title"`
	Rating  *struct {
		Value      *float64 `json:"value,omitempty"`
		VotesCount *int     `json:"votes_count,omitempty"`
	} `json:"rating,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	URL         string            `json:"url,omitempty"`
	Address     string            `json:"address,omitempty"`
	Snippet     string            `json:"snippet,omitempty"`
	Photos      []string          `json:"photos,omitempty"`
	WorkHours   map[string]string `json:"schedule,omitempty"`
	PriceLevel  string            `json:"price_level,omitempty"`
	Description string            `json:"description,omitempty"`
}

type dfsTaskRequest struct {
	Keyword      string `json:"keyword"`
	LocationName string `json:"location_name"`
	LanguageCode string `json:"language_code"`
	Device       string `json:"device"`
	OS           string `json:"os"`
	Depth        int    `json:"depth"`
}

// SearchBusinesses runs a live maps search and flattens the nested
// tasks/result/items envelope into listings.
func (c *DataForSEO) SearchBusinesses(ctx context.Context, req SearchRequest) ([]BusinessItem, error) {
	depth := req.Depth
	if depth <= 0 {
		depth = 20
	}

	payload := []dfsTaskRequest{{
		Keyword:      req.Keyword,
		LocationName: req.LocationName,
		LanguageCode: "en",
		Device:       "desktop",
		OS:           "windows",
		Depth:        depth,
	}}

	resp, err := c.post(ctx, mapsLivePath, payload)
	if err != nil {
		return nil, err
	}

	items := collectItems(resp)
	listings := make([]BusinessItem, 0, len(items))
	for _, item := range items {
		listings = append(listings, convertItem(item))
	}
	return listings, nil
}

// BusinessByID fetches a single listing through a place_id keyword
// lookup. A nil listing with nil error means the provider knows no such
// place.
func (c *DataForSEO) BusinessByID(ctx context.Context, id string) (*BusinessItem, error) {
	payload := []dfsTaskRequest{{
		Keyword:      "place_id:" + id,
		LanguageCode: "en",
		Device:       "desktop",
		OS:           "windows",
		Depth:        1,
	}}

	resp, err := c.post(ctx, mapsLivePath, payload)
	if err != nil {
		return nil, err
	}

	items := collectItems(resp)
	if len(items) == 0 {
		return nil, nil
	}
	listing := convertItem(items[0])
	return &listing, nil
}

func (c *DataForSEO) post(ctx context.Context, path string, payload any) (*dfsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("dataforseo api error: %s - %s", httpResp.Status, string(snippet))
	}

	var resp dfsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != 0 && resp.StatusCode/100 != 200 {
		return nil, fmt.Errorf("dataforseo status %d: %s", resp.StatusCode, resp.StatusMessage)
	}
	return &resp, nil
}

func collectItems(resp *dfsResponse) []dfsItem {
	var items []dfsItem
	for _, task := range resp.Tasks {
		for _, result := range task.Result {
			items = append(items, result.Items...)
		}
	}
	return items
}

func convertItem(item dfsItem) BusinessItem {
	listing := BusinessItem{
		PlaceID:     item.PlaceID,
		Title:       item.Title,
		Phone:       item.Phone,
		Website:     item.URL,
		Address:     item.Address,
		Description: item.Description,
		Photos:      item.Photos,
		Schedule:    item.WorkHours,
		PriceLevel:  item.PriceLevel,
	}
	if listing.Description == "" {
		listing.Description = item.Snippet
	}
	if item.Rating != nil {
		info := &RatingInfo{}
		if item.Rating.Value != nil {
			info.Value = *item.Rating.Value
		}
		if item.Rating.VotesCount != nil {
			info.VotesCount = *item.Rating.VotesCount
		}
		listing.Rating = info
	}
	return listing
}
