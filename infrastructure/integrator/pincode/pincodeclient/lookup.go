package pincodeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
)

const statusSuccess = "Success"

type PostOffice struct {
	Name     string `json:"Name"`
	District string `json:"District"`
	State    string `json:"State"`
	Pincode  string `json:"Pincode"`
}

type LookupResult struct {
	Status      string       `json:"Status"`
	Message     string       `json:"Message"`
	PostOffices []PostOffice `json:"PostOffice"`
}

// PincodeResponse mirrors the India Post API, which wraps every lookup in a
// single-element array.
type PincodeResponse []LookupResult

// Found reports whether the lookup returned at least one post office.
func (r PincodeResponse) Found() bool {
	return len(r) > 0 && r[0].Status == statusSuccess && len(r[0].PostOffices) > 0
}

// District returns the district of the first post office, or "".
func (r PincodeResponse) District() string {
	if !r.Found() {
		return ""
	}
	return r[0].PostOffices[0].District
}

// State returns the state of the first post office, or "".
func (r PincodeResponse) State() string {
	if !r.Found() {
		return ""
	}
	return r[0].PostOffices[0].State
}

func (c *PincodeClient) LookupPincode(ctx context.Context, pincode string) (PincodeResponse, error) {
	var response PincodeResponse

	endpoint, err := url.Parse(c.config.Pincode.BaseURL)
	if err != nil {
		return response, fmt.Errorf("parsing pincode base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, pincode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("building pincode request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("calling pincode API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("pincode API returned status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("decoding pincode response: %w", err)
	}

	return response, nil
}
