// Package capedge is a client for the CapEdge web API
// (https://capedge.com/v1/api/), which provides SEC filings, earnings
// call transcripts, IPO registrations, and company data.
//
// The API has no token-based authentication; it trusts a browser
// session. Copy the Cookie header from a logged-in capedge.com tab
// (DevTools, any API request) and construct the client from it:
//
//	client, err := capedge.FromCookieString(cookieHeader)
//	if err != nil {
//	    return err
//	}
//
//	companies, err := client.SearchCompany(ctx, "Apple")
//	page, err := client.GetTranscripts(ctx, 1, "")
//	cik, ok, err := client.FindCompanyCIK(ctx, "AAPL")
//
// When the session expires the API starts answering with its login
// page; calls then fail with an error matching
// http.ErrSessionExpired so callers can prompt for fresh cookies.
//
// The package is organized into subpackages:
//
//   - http: request execution, error taxonomy, page iteration
//   - auth: cookie-string parsing and session-token inspection
//   - config: defaults + YAML file + environment resolution
//   - content: transcript call-page HTML parsing
//   - archive: file-based storage of fetched transcript text
//   - testutil: fixtures for tests
package capedge
