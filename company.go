package capedge

import (
	"context"
	"fmt"
	"net/url"
)

// Company is a single company search result.
type Company struct {
	// CIK is the zero-padded Central Index Key, as the API returns it.
	CIK string

	// Name is the registered company name.
	Name string

	// Ticker is the trading symbol, empty for unlisted companies.
	Ticker string
}

// companyRow is the wire shape of one search result. The search
// endpoint uses autocomplete-style keys (value/label/tradingSymbol);
// other deployments have been seen returning plain cik/name/ticker,
// so both are accepted.
type companyRow struct {
	Value         flexString `json:"value"`
	Label         string     `json:"label"`
	TradingSymbol string     `json:"tradingSymbol"`

	CIK    flexString `json:"cik"`
	Name   string     `json:"name"`
	Ticker string     `json:"ticker"`
}

func (r companyRow) toCompany() Company {
	c := Company{
		CIK:    r.Value.String(),
		Name:   r.Label,
		Ticker: r.TradingSymbol,
	}
	if c.CIK == "" {
		c.CIK = r.CIK.String()
	}
	if c.Name == "" {
		c.Name = r.Name
	}
	if c.Ticker == "" {
		c.Ticker = r.Ticker
	}
	return c
}

// SearchCompany searches for companies by name or ticker symbol.
// Results come back in the API's own ranking order. A query with no
// matches returns an empty slice, not an error.
func (c *Client) SearchCompany(ctx context.Context, query string) ([]Company, error) {
	var resp struct {
		Data []companyRow `json:"data"`
	}
	if err := c.api.Get(ctx, "search/company", url.Values{"q": {query}}, &resp); err != nil {
		return nil, fmt.Errorf("search company %q: %w", query, err)
	}

	companies := make([]Company, 0, len(resp.Data))
	for _, row := range resp.Data {
		companies = append(companies, row.toCompany())
	}
	return companies, nil
}

// FindCompanyCIK resolves a company name or ticker to a CIK. The first
// search result wins; the API ranks exact ticker matches first. The
// second return value is false when nothing matched.
func (c *Client) FindCompanyCIK(ctx context.Context, nameOrTicker string) (string, bool, error) {
	companies, err := c.SearchCompany(ctx, nameOrTicker)
	if err != nil {
		return "", false, err
	}
	if len(companies) == 0 {
		return "", false, nil
	}
	return companies[0].CIK, true, nil
}
