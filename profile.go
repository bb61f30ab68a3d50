package capedge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoProfileData indicates the realtime endpoint answered but had no
// meaningful data for the company (common for fresh IPOs).
var ErrNoProfileData = errors.New("no profile data for company")

// CompanyProfile holds company reference data and a realtime quote
// snapshot.
type CompanyProfile struct {
	CIK         string
	Ticker      string
	Name        string
	Description string
	Exchange    string
	Sector      string
	Industry    string
	Country     string
	Address     string
	Website     string

	MarketCap         float64
	Price             float64
	PERatio           float64
	Week52High        float64
	Week52Low         float64
	SharesOutstanding int64
}

// realtimeResponse mirrors the company data page payload. Stats keys
// are capitalized on the wire; quote keys are not.
type realtimeResponse struct {
	Quote struct {
		Data struct {
			MarketCap   float64 `json:"marketCap"`
			LatestPrice float64 `json:"latestPrice"`
			PERatio     float64 `json:"peRatio"`
		} `json:"data"`
	} `json:"quote"`
	Stats struct {
		Data struct {
			Name              string  `json:"Name"`
			Description       string  `json:"Description"`
			Exchange          string  `json:"Exchange"`
			Sector            string  `json:"Sector"`
			Industry          string  `json:"Industry"`
			Country           string  `json:"Country"`
			Address           string  `json:"Address"`
			OfficialSite      string  `json:"OfficialSite"`
			Week52High        float64 `json:"week52High"`
			Week52Low         float64 `json:"week52Low"`
			SharesOutstanding int64   `json:"sharesOutstanding"`
		} `json:"data"`
	} `json:"stats"`
}

// GetCompanyProfile fetches the realtime profile for a company. The
// endpoint lives on the site root rather than under the API prefix.
// Returns ErrNoProfileData when the payload has neither a name nor a
// description.
func (c *Client) GetCompanyProfile(ctx context.Context, cik, ticker string) (*CompanyProfile, error) {
	path := fmt.Sprintf("%s/company/%s/%s/data/realtime", c.siteURL, cik, ticker)

	var resp realtimeResponse
	if err := c.api.Get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile for %s (%s): %w", ticker, cik, err)
	}

	stats := resp.Stats.Data
	if stats.Name == "" && stats.Description == "" {
		return nil, fmt.Errorf("profile for %s (%s): %w", ticker, cik, ErrNoProfileData)
	}

	return &CompanyProfile{
		CIK:               cik,
		Ticker:            ticker,
		Name:              stats.Name,
		Description:       stats.Description,
		Exchange:          stats.Exchange,
		Sector:            stats.Sector,
		Industry:          stats.Industry,
		Country:           stats.Country,
		Address:           stats.Address,
		Website:           stats.OfficialSite,
		MarketCap:         resp.Quote.Data.MarketCap,
		Price:             resp.Quote.Data.LatestPrice,
		PERatio:           resp.Quote.Data.PERatio,
		Week52High:        stats.Week52High,
		Week52Low:         stats.Week52Low,
		SharesOutstanding: stats.SharesOutstanding,
	}, nil
}

// LatestIPOProfiles joins recent filings with search and profile data:
// it takes the latest non-follow-on IPO filings, resolves each filer's
// ticker by search, and fetches the profile for those that have one.
// Filers without a ticker or without profile data yet are skipped.
func (c *Client) LatestIPOProfiles(ctx context.Context, limit int) ([]CompanyProfile, error) {
	page, err := c.LatestIPOs(ctx, 1, 0)
	if err != nil {
		return nil, err
	}

	var profiles []CompanyProfile
	for _, filing := range page.Data {
		if filing.FollowOn {
			continue
		}
		if limit > 0 && len(profiles) >= limit {
			break
		}

		ticker, err := c.resolveTicker(ctx, filing.CIK, filing.CompanyName)
		if err != nil {
			return nil, err
		}
		if ticker == "" {
			slog.Debug("no ticker for IPO filer", "cik", filing.CIK, "name", filing.CompanyName)
			continue
		}

		profile, err := c.GetCompanyProfile(ctx, filing.CIK, ticker)
		if err != nil {
			if errors.Is(err, ErrNoProfileData) {
				slog.Debug("no profile data yet for IPO filer", "cik", filing.CIK, "ticker", ticker)
				continue
			}
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

// resolveTicker finds a trading symbol for the given CIK by searching.
// The short registered name searches better than the full legal name,
// so it is tried first. A result whose CIK matches wins; otherwise the
// first result with any ticker is taken.
func (c *Client) resolveTicker(ctx context.Context, cik, companyName string) (string, error) {
	for _, query := range []string{shortName(companyName), companyName} {
		if query == "" {
			continue
		}

		companies, err := c.SearchCompany(ctx, query)
		if err != nil {
			return "", err
		}

		fallback := ""
		for _, company := range companies {
			if company.Ticker == "" {
				continue
			}
			if strings.TrimLeft(company.CIK, "0") == strings.TrimLeft(cik, "0") {
				return company.Ticker, nil
			}
			if fallback == "" {
				fallback = company.Ticker
			}
		}
		if fallback != "" {
			return fallback, nil
		}
	}
	return "", nil
}

// shortName trims legal suffixes that throw off search ranking.
func shortName(name string) string {
	name, _, _ = strings.Cut(name, ",")
	for _, suffix := range []string{" Inc", " Corp"} {
		if i := strings.Index(name, suffix); i > 0 {
			name = name[:i]
		}
	}
	return strings.TrimSpace(name)
}
