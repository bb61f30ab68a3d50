package capedge

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	capehttp "github.com/randalmurphal/capedge/http"
)

// IPOFiling is one IPO or follow-on registration filing.
type IPOFiling struct {
	ID          string
	FormType    string
	Filename    string
	Date        string
	CIK         string
	CompanyName string

	// FollowOn is true for follow-on offerings by already-public
	// companies, false for initial offerings.
	FollowOn bool
}

// IPOPage is one page of IPO filings.
type IPOPage struct {
	Total int
	Page  int
	Data  []IPOFiling
}

type ipoRow struct {
	ID       flexString `json:"id"`
	Type     string     `json:"type"`
	Filename string     `json:"filename"`
	Date     string     `json:"date"`
	Filer    struct {
		CIK  flexString `json:"cik"`
		Name string     `json:"name"`
	} `json:"filer"`
	IsFollowOn bool `json:"isFollowOn"`
}

func (r ipoRow) toFiling() IPOFiling {
	return IPOFiling{
		ID:          r.ID.String(),
		FormType:    r.Type,
		Filename:    r.Filename,
		Date:        r.Date,
		CIK:         r.Filer.CIK.String(),
		CompanyName: r.Filer.Name,
		FollowOn:    r.IsFollowOn,
	}
}

// LatestIPOs fetches one page of recent IPO and follow-on registration
// filings. page is 1-indexed; limit caps the page size (the API
// default applies when limit <= 0).
func (c *Client) LatestIPOs(ctx context.Context, page, limit int) (*IPOPage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{"page": {strconv.Itoa(page)}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Total int      `json:"total"`
		Data  []ipoRow `json:"data"`
	}
	if err := c.api.Get(ctx, "ipos/latest", query, &resp); err != nil {
		return nil, fmt.Errorf("get latest IPOs page %d: %w", page, err)
	}

	result := &IPOPage{
		Total: resp.Total,
		Page:  page,
		Data:  make([]IPOFiling, 0, len(resp.Data)),
	}
	for _, row := range resp.Data {
		result.Data = append(result.Data, row.toFiling())
	}
	return result, nil
}

// IPOIterator returns a page iterator over IPO filings. pageSize caps
// each request (<= 0 for the API default).
func (c *Client) IPOIterator(pageSize int) *capehttp.PageIterator[IPOFiling] {
	var seen int
	var iter *capehttp.PageIterator[IPOFiling]
	iter = capehttp.NewPageIterator(func(ctx context.Context, page int) ([]IPOFiling, bool, error) {
		p, err := c.LatestIPOs(ctx, page, pageSize)
		if err != nil {
			return nil, false, err
		}
		iter.SetTotal(p.Total)
		seen += len(p.Data)
		return p.Data, seen < p.Total, nil
	})
	return iter
}
