package capedge

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	capehttp "github.com/randalmurphal/capedge/http"
)

// Transcript describes one earnings call transcript. Fields are a
// direct copy of the API row; Date stays an ISO-8601 string.
type Transcript struct {
	ID            string
	CompanyName   string
	CIK           string
	Ticker        string
	Year          int
	Quarter       int
	Title         string
	Date          string
	TranscriptURL string
	Exchange      string
	MarketCap     int64
}

// Time parses the transcript's ISO-8601 date.
func (t Transcript) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, t.Date)
}

// TranscriptPage is one page of transcript results.
type TranscriptPage struct {
	// Total is the number of transcripts across all pages.
	Total int

	// Page is the 1-indexed page number this data came from.
	Page int

	// Data holds the page's transcripts in API order (newest first).
	Data []Transcript
}

type transcriptRow struct {
	ID      flexString `json:"id"`
	Company struct {
		Name string     `json:"name"`
		CIK  flexString `json:"cik"`
	} `json:"company"`
	Ticker        string `json:"ticker"`
	Year          int    `json:"year"`
	Quarter       int    `json:"quarter"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	TranscriptURL string `json:"transcriptUrl"`
	Exchange      string `json:"exchange"`
	MarketCap     int64  `json:"marketCap"`
}

func (r transcriptRow) toTranscript() Transcript {
	return Transcript{
		ID:            r.ID.String(),
		CompanyName:   r.Company.Name,
		CIK:           r.Company.CIK.String(),
		Ticker:        r.Ticker,
		Year:          r.Year,
		Quarter:       r.Quarter,
		Title:         r.Title,
		Date:          r.Date,
		TranscriptURL: r.TranscriptURL,
		Exchange:      r.Exchange,
		MarketCap:     r.MarketCap,
	}
}

// GetTranscripts fetches one page of earnings call transcripts,
// newest first. page is 1-indexed. companyID optionally restricts
// results to one company's CIK; pass "" for all companies.
func (c *Client) GetTranscripts(ctx context.Context, page int, companyID string) (*TranscriptPage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{"page": {strconv.Itoa(page)}}
	if companyID != "" {
		query.Set("companyId", companyID)
	}

	var resp struct {
		Total int             `json:"total"`
		Data  []transcriptRow `json:"data"`
	}
	if err := c.api.Get(ctx, "transcripts", query, &resp); err != nil {
		return nil, fmt.Errorf("get transcripts page %d: %w", page, err)
	}

	result := &TranscriptPage{
		Total: resp.Total,
		Page:  page,
		Data:  make([]Transcript, 0, len(resp.Data)),
	}
	for _, row := range resp.Data {
		result.Data = append(result.Data, row.toTranscript())
	}
	return result, nil
}

// GetCompanyTranscripts fetches one page of transcripts for the
// company identified by cik.
func (c *Client) GetCompanyTranscripts(ctx context.Context, cik string, page int) (*TranscriptPage, error) {
	return c.GetTranscripts(ctx, page, cik)
}

// GetLatestTranscripts returns up to limit of the most recent
// transcripts.
func (c *Client) GetLatestTranscripts(ctx context.Context, limit int) ([]Transcript, error) {
	page, err := c.GetTranscripts(ctx, 1, "")
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(page.Data) > limit {
		return page.Data[:limit], nil
	}
	return page.Data, nil
}

// RecentTranscripts returns first-page transcripts dated on or after
// since. Rows with unparseable dates are skipped with a warning.
func (c *Client) RecentTranscripts(ctx context.Context, since time.Time) ([]Transcript, error) {
	page, err := c.GetTranscripts(ctx, 1, "")
	if err != nil {
		return nil, err
	}

	recent := make([]Transcript, 0, len(page.Data))
	for _, t := range page.Data {
		when, err := t.Time()
		if err != nil {
			slog.Warn("skipping transcript with unparseable date",
				"id", t.ID, "date", t.Date, "error", err)
			continue
		}
		if !when.Before(since) {
			recent = append(recent, t)
		}
	}
	return recent, nil
}

// TranscriptIterator returns a page iterator over all transcripts,
// optionally filtered by companyID ("" for all). The iterator's Total
// becomes accurate after the first page is fetched.
func (c *Client) TranscriptIterator(companyID string) *capehttp.PageIterator[Transcript] {
	var seen int
	var iter *capehttp.PageIterator[Transcript]
	iter = capehttp.NewPageIterator(func(ctx context.Context, page int) ([]Transcript, bool, error) {
		p, err := c.GetTranscripts(ctx, page, companyID)
		if err != nil {
			return nil, false, err
		}
		iter.SetTotal(p.Total)
		seen += len(p.Data)
		return p.Data, seen < p.Total, nil
	})
	return iter
}
