package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"polychat/config"
)

// Client talks to the external translation gateway:
// POST {endpoint}/translate {"text": ..., "lang": ...} -> {"translated_text": ...}
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(cfg config.Translator) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type translateRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

func (c *Client) Translate(ctx context.Context, text, lang string) (string, error) {
	body, err := json.Marshal(translateRequest{Text: text, Lang: lang})
	if err != nil {
		return "", errors.Wrap(err, "translation.Translate.Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "translation.Translate.NewRequest")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "translation.Translate.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("translation gateway returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "translation.Translate.Decode")
	}
	if out.TranslatedText == "" {
		return "", errors.New("translation gateway returned empty text")
	}
	return out.TranslatedText, nil
}
