package imds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultEndpoint   = "http://169.254.169.254/metadata/instance"
	DefaultAPIVersion = "2020-09-01"

	metadataHeader = "Metadata"
	userAgent      = "azvmprofile/1.0"
)

// Options configures a Client. Zero values select the Azure defaults.
type Options struct {
	Endpoint   string
	APIVersion string
	HTTPClient *http.Client
}

// Client fetches the instance metadata document. It performs a single request
// per Fetch and never retries.
type Client struct {
	target     *url.URL
	httpClient *http.Client
}

func NewClient(opts Options) (*Client, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata endpoint: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid metadata endpoint: %q is not an absolute URL", endpoint)
	}
	q := parsed.Query()
	q.Set("api-version", apiVersion)
	parsed.RawQuery = q.Encode()

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{target: parsed, httpClient: httpClient}, nil
}

// URL is the full request URL including the api-version query.
func (c *Client) URL() string {
	return c.target.String()
}

// Fetch retrieves, decodes and normalizes the metadata document.
func (c *Client) Fetch(ctx context.Context) (Document, error) {
	target := c.target.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	req.Header.Set(metadataHeader, "true")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.WithField("url", target).Debug("requesting instance metadata")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	log.WithField("status", resp.StatusCode).Debug("instance metadata response received")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload Document
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("decode metadata: %w", err)}
	}
	return NormalizeDocument(payload), nil
}
