// Package recaptcha interroge le service de vérification Google siteverify.
package recaptcha

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/forgeit/astrolabe-qualif/pkg/secrets"
)

// VerifyResult réponse du service de vérification.
type VerifyResult struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Client client HTTP du endpoint siteverify. Le secret est résolu paresseusement
// au premier appel et mis en cache pour la durée de vie du process.
type Client struct {
	secret     *secrets.Cached
	verifyURL  string
	httpClient *http.Client
}

// NewClient construit le client. verifyURL est injectable pour les tests.
func NewClient(secret *secrets.Cached, verifyURL string) *Client {
	return &Client{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify soumet le token au service de vérification et renvoie le verdict brut.
// Un Success à false n'est pas une erreur Go: c'est un verdict.
func (c *Client) Verify(token string) (*VerifyResult, error) {
	secret, err := c.secret.Get()
	if err != nil {
		return nil, fmt.Errorf("secret recaptcha: %w", err)
	}

	form := url.Values{
		"secret":   {secret},
		"response": {token},
	}
	resp, err := c.httpClient.PostForm(c.verifyURL, form)
	if err != nil {
		return nil, fmt.Errorf("appel siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify: statut %d", resp.StatusCode)
	}

	var result VerifyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("décoder la réponse siteverify: %w", err)
	}
	return &result, nil
}
