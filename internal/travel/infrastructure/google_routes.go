package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
)

const computeRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

// GoogleRoutesClient plans the bus route between two stations using the
// Routes API. Distance and duration feed the travel's arrival time.
type GoogleRoutesClient struct {
	httpClient *http.Client
	apiKey     string
}

func NewGoogleRoutesClient(apiKey string) *GoogleRoutesClient {
	return &GoogleRoutesClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
	}
}

type routeWaypoint struct {
	Address string `json:"address"`
}

type computeRoutesRequest struct {
	Origin        routeWaypoint `json:"origin"`
	Destination   routeWaypoint `json:"destination"`
	TravelMode    string        `json:"travelMode"`
	DepartureTime string        `json:"departureTime"`
	LanguageCode  string        `json:"languageCode"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
	} `json:"routes"`
}

func (c *GoogleRoutesClient) PlanRoute(ctx context.Context, origin, destination string, departureTime time.Time) (domain.Route, error) {
	body, err := json.Marshal(computeRoutesRequest{
		Origin:        routeWaypoint{Address: origin},
		Destination:   routeWaypoint{Address: destination},
		TravelMode:    "DRIVE",
		DepartureTime: departureTime.UTC().Format(time.RFC3339),
		LanguageCode:  "pt-BR",
	})
	if err != nil {
		return domain.Route{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, computeRoutesURL, bytes.NewReader(body))
	if err != nil {
		return domain.Route{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "routes.duration,routes.distanceMeters")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Route{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Route{}, fmt.Errorf("compute routes returned status %d", resp.StatusCode)
	}

	var computed computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&computed); err != nil {
		return domain.Route{}, err
	}

	if len(computed.Routes) == 0 {
		return domain.Route{}, domain.ErrNoRoute
	}

	best := computed.Routes[0]
	duration, err := time.ParseDuration(best.Duration)
	if err != nil {
		return domain.Route{}, fmt.Errorf("parsing route duration %q: %w", best.Duration, err)
	}

	return domain.Route{
		DistanceKm: float64(best.DistanceMeters) / 1000,
		Duration:   duration,
	}, nil
}
