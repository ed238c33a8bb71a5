package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"candela/internal/domain"
)

// HTTPIdentityProvider talks to the external identity service. The service
// owns sessions and roles; this client only translates its answer into a
// domain.User.
type HTTPIdentityProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPIdentityProvider(baseURL string) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type currentUserResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	ClientID *int   `json:"client_id"`
}

func (p *HTTPIdentityProvider) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("building identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body currentUserResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decoding identity response: %w", err)
		}
		return &domain.User{
			ID:       body.ID,
			Role:     body.Role,
			ClientID: body.ClientID,
		}, nil
	case http.StatusUnauthorized, http.StatusNotFound:
		// unknown or expired token: unauthenticated, not an outage
		return nil, nil
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
}
