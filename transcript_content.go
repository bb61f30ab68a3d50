package capedge

import (
	"bytes"
	"context"
	"fmt"

	"github.com/randalmurphal/capedge/content"
)

// GetTranscriptContent fetches a transcript's page and parses the call
// text out of it. The page is fetched with the client's session
// cookies; transcript pages are only served to logged-in sessions.
func (c *Client) GetTranscriptContent(ctx context.Context, t Transcript) (*content.Document, error) {
	if t.TranscriptURL == "" {
		return nil, fmt.Errorf("transcript %s has no URL", t.ID)
	}

	body, err := c.api.GetRaw(ctx, t.TranscriptURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript %s: %w", t.ID, err)
	}

	doc, err := content.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transcript %s: %w", t.ID, err)
	}
	return doc, nil
}
