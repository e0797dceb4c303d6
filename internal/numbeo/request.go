package numbeo

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"

	"numbeo/internal/errors"
	"numbeo/internal/version"
)

const redactedKey = "REDACTED"

// get performs a GET request against the API and decodes the JSON body into
// result. The API key is added to the query and never appears in errors.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}

	params.Set("api_key", redactedKey)
	safeURL := c.baseURL + path + "?" + params.Encode()

	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return errors.APIErrorWithCause("failed to create request", redactURLError(err, safeURL)).
			WithContext("url", safeURL).
			WithSuggestion("Check the value of --base-url")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("requesting numbeo api", "url", safeURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(redactURLError(err, safeURL), safeURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NetworkErrorWithCause("failed to read Numbeo API response", err).
			WithContext("url", safeURL)
	}

	c.logger.Debug("numbeo api response",
		"url", safeURL,
		"status", resp.StatusCode,
		"size", humanize.Bytes(uint64(len(body))),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.AuthError("Numbeo API rejected the API key").
			WithContext("status", resp.StatusCode).
			WithContext("url", safeURL).
			WithSuggestion("Check the value of --api-key or NUMBEO_API_KEY")
	case resp.StatusCode != http.StatusOK:
		return errors.APIErrorf("Numbeo API returned HTTP %d", resp.StatusCode).
			WithContext("status", resp.StatusCode).
			WithContext("url", safeURL)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return errors.APIErrorWithCause("failed to decode Numbeo API response", err).
			WithContext("url", safeURL).
			WithContext("size", humanize.Bytes(uint64(len(body))))
	}

	return nil
}

func networkError(err error, safeURL string) *errors.AppError {
	appErr := errors.NetworkErrorWithCause("request to Numbeo API failed", err).
		WithContext("url", safeURL)

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Timeout() {
		return appErr.WithSuggestion("Increase --timeout or try again later")
	}
	return appErr.WithSuggestion("Check your internet connection")
}

// redactURLError replaces the URL carried by net/http errors, which would
// otherwise include the API key.
func redactURLError(err error, safeURL string) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: safeURL, Err: urlErr.Err}
	}
	return err
}
