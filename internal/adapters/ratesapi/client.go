package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	portsrepo "github.com/SscSPs/takehome_app/internal/core/ports/repositories"
	"github.com/xeipuuv/gojsonschema"
)

// DefaultBaseURL is the free latest-rates endpoint; the base currency is appended as a path segment.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

const maxBodyBytes = 1 << 20

// latestRatesSchema accepts {"rates": {"EUR": 0.92, ...}} with any extra fields.
const latestRatesSchema = `{
  "type": "object",
  "required": ["rates"],
  "properties": {
    "rates": {
      "type": "object",
      "additionalProperties": {"type": "number"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(latestRatesSchema)

type latestRatesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

// Client fetches latest rates from an exchangerate-api compatible endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client. A zero timeout leaves the http client's default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ensure Client implements the port
var _ portsrepo.RateSource = (*Client)(nil)

// FetchLatest issues GET {baseURL}/{base}. Any transport error, non-2xx status or
// payload that does not match the schema is reported wrapped in apperrors.ErrRateFetch.
func (c *Client) FetchLatest(ctx context.Context, base domain.CurrencyCode) (map[string]float64, error) {
	url := c.baseURL + "/" + string(base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrRateFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", apperrors.ErrRateFetch, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s status=%d", apperrors.ErrRateFetch, url, resp.StatusCode)
	}

	if err := validatePayload(body); err != nil {
		return nil, err
	}

	var payload latestRatesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", apperrors.ErrRateFetch, err)
	}
	return payload.Rates, nil
}

func validatePayload(body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: malformed payload: %v", apperrors.ErrRateFetch, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: payload validation failed: %v", apperrors.ErrRateFetch, errs)
	}
	return nil
}
