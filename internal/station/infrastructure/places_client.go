package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mmacedo-dev/bustrip/internal/station/domain"
)

const placesSearchURL = "https://places.googleapis.com/v1/places:searchText"

// GooglePlacesClient validates station registrations against the Places
// text-search API.
type GooglePlacesClient struct {
	httpClient *http.Client
	apiKey     string
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
	}
}

type placesSearchRequest struct {
	TextQuery      string `json:"textQuery"`
	LanguageCode   string `json:"languageCode"`
	RankPreference string `json:"rankPreference"`
}

type placesSearchResponse struct {
	Places []struct {
		Types       []string `json:"types"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
	} `json:"places"`
}

func (c *GooglePlacesClient) Locate(ctx context.Context, name, city string) (domain.Place, error) {
	body, err := json.Marshal(placesSearchRequest{
		TextQuery:      fmt.Sprintf("%s, %s", name, city),
		LanguageCode:   "pt-BR",
		RankPreference: "RELEVANCE",
	})
	if err != nil {
		return domain.Place{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, placesSearchURL, bytes.NewReader(body))
	if err != nil {
		return domain.Place{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "places.types,places.displayName")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Place{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Place{}, fmt.Errorf("places search returned status %d", resp.StatusCode)
	}

	var search placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return domain.Place{}, err
	}

	if len(search.Places) == 0 {
		return domain.Place{}, domain.ErrPlaceNotFound
	}

	best := search.Places[0]
	return domain.Place{
		DisplayName: best.DisplayName.Text,
		Types:       best.Types,
	}, nil
}
