package cdn

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	TagWebsiteBanners = "website_banners"
	TagAppBanners     = "app_banners"

	maxResults = 100
)

// Resource is one hosted asset as the media CDN's admin API reports it.
type Resource struct {
	PublicID  string `json:"public_id"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	CreatedAt string `json:"created_at"`
}

// Client lists tag-scoped resources from the external media CDN.
// Uploads happen out of band through the admin console; this service
// only reads.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, key, secret string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(key, secret).
		SetTimeout(10 * time.Second)
	return &Client{http: c}
}

func (c *Client) ResourcesByTag(ctx context.Context, tag string) ([]Resource, error) {
	var out struct {
		Resources []Resource `json:"resources"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("max_results", fmt.Sprint(maxResults)).
		SetResult(&out).
		Get("/resources/image/tags/" + tag)
	if err != nil {
		return nil, fmt.Errorf("cdn: list resources by tag %q: %w", tag, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cdn: list resources by tag %q: status %d", tag, resp.StatusCode())
	}

	return out.Resources, nil
}
