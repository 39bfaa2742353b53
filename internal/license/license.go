// Package license verifies license keys against the Gumroad API.
package license

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrInvalidLicense means the key was rejected: unknown, or the purchase
	// was refunded. The user may retry with another key.
	ErrInvalidLicense = errors.New("invalid license key")
	// ErrVerifyUnavailable means the verification service could not be
	// reached or answered garbage. The key may still be valid.
	ErrVerifyUnavailable = errors.New("license verification unavailable")
)

const verifyTimeout = 15 * time.Second

// Verifier checks license keys against a Gumroad-style verify endpoint.
// A zero ProductID disables verification (Enabled returns false); there are
// deliberately no bypass keys.
type Verifier struct {
	httpClient *http.Client
	verifyURL  string
	productID  string
}

// NewVerifier creates a verifier for the given product. verifyURL is
// overridable for tests.
func NewVerifier(productID, verifyURL string) *Verifier {
	return &Verifier{
		httpClient: &http.Client{Timeout: verifyTimeout},
		verifyURL:  verifyURL,
		productID:  productID,
	}
}

// Enabled reports whether license verification is required.
func (v *Verifier) Enabled() bool {
	return v.productID != ""
}

// verifyResponse is the subset of the Gumroad response we act on.
type verifyResponse struct {
	Success  bool `json:"success"`
	Purchase struct {
		Refunded bool `json:"refunded"`
	} `json:"purchase"`
}

// Verify checks a license key. Grant access iff the service reports success
// and the purchase has not been refunded.
func (v *Verifier) Verify(ctx context.Context, key string) error {
	form := url.Values{
		"product_permalink": {v.productID},
		"license_key":       {strings.TrimSpace(key)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrVerifyUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyUnavailable, err)
	}
	defer resp.Body.Close()

	// Gumroad answers 404 with success=false for unknown keys; anything the
	// decoder can't handle counts as the service being unavailable.
	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrVerifyUnavailable, err)
	}

	if !vr.Success || vr.Purchase.Refunded {
		return ErrInvalidLicense
	}
	return nil
}
