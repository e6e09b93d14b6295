package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ErrUnavailable marks a failed catalog fetch as retryable: the caller shows
// a "could not load" state with a retry affordance.
var ErrUnavailable = errors.New("catalog unavailable")

const defaultTimeout = 10 * time.Second

// Client fetches products and the user profile from the upstream store API.
type Client struct {
	http       *http.Client
	baseURL    string
	profileURL string
	sfg        singleflight.Group // collapses concurrent fetches of the same resource
}

func NewClient(baseURL, profileURL string) *Client {
	return &Client{
		http:       &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		profileURL: profileURL,
	}
}

// FetchProducts returns the full product list. Transport failures and non-2xx
// statuses surface as ErrUnavailable-wrapped errors.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		var products []domain.Product
		if err := c.getJSON(ctx, c.baseURL+"/products", &products); err != nil {
			return nil, err
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// FetchUserProfile returns the profile shown on the profile screen.
func (c *Client) FetchUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	v, err, _ := c.sfg.Do("profile", func() (interface{}, error) {
		var profile domain.UserProfile
		if err := c.getJSON(ctx, c.profileURL, &profile); err != nil {
			return nil, err
		}
		return &profile, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.UserProfile), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed payload: %v", ErrUnavailable, err)
	}
	return nil
}
