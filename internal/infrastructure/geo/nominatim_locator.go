// Package geo resuelve coordenadas a direcciones legibles contra un
// servicio estilo Nominatim. Los fallos aquí nunca bloquean el flujo que
// pide la dirección: el llamador degrada a entrada manual.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
)

var _ usecase.Locator = (*NominatimLocator)(nil)

// NominatimLocator cliente HTTP de geocodificación inversa.
type NominatimLocator struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimLocator construye el cliente. baseURL apunta al servicio de
// geocodificación (ej: https://nominatim.openstreetmap.org).
func NewNominatimLocator(baseURL string, timeoutSeconds int) *NominatimLocator {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}
	return &NominatimLocator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse resuelve lat/lon a una dirección legible.
func (l *NominatimLocator) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	if l.baseURL == "" {
		return "", fmt.Errorf("geo: servicio no configurado: %w", domain.ErrLocationUnavailable)
	}

	endpoint := fmt.Sprintf("%s/reverse", l.baseURL)
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(latitude, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', 6, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geo: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo: llamada al servicio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: el servicio respondió %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geo: decodificar respuesta: %w", err)
	}
	if body.DisplayName == "" {
		return "", fmt.Errorf("geo: respuesta sin dirección")
	}
	return body.DisplayName, nil
}
