package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp)

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", store.ErrInvalidRecord, msg)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", store.ErrRecordNotFound, msg)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, code, msg)
	default:
		return fmt.Errorf("http %d: %s", code, msg)
	}
}

// responseMessage extracts the "message" member of a JSON error body and
// falls back to the raw body or the status text.
func responseMessage(resp *resty.Response) string {
	var m models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &m); err == nil && m.Message != "" {
		return m.Message
	}
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
