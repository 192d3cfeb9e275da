package journal

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// QuoteProvider supplies the latest market price for a symbol. The core
// never calls it; it belongs to the caller's data-fetching layer, which
// builds a PriceSnapshot from it.
type QuoteProvider interface {
	Latest(symbol string) (float64, error)
}

// chartQuotes fetches last prices from the Yahoo Finance v8 chart endpoint.
//
//	{
//	  "chart": {
//	    "result": [
//	      {
//	        "meta": {
//	          "currency": "USD",
//	          "symbol": "AAPL",
//	          "regularMarketPrice": 189.98,
//	          ...
type chartQuotes struct {
	base   string
	client *http.Client
}

// NewChartQuotes returns the default intraday quote provider, with a daily
// on-disk response cache.
func NewChartQuotes() QuoteProvider {
	return &chartQuotes{
		base:   "https://query2.finance.yahoo.com/v8/finance/chart/",
		client: cachedClient(),
	}
}

func (q *chartQuotes) Latest(symbol string) (float64, error) {
	addr := q.base + url.PathEscape(symbol) + "?interval=1d&range=1d"

	var jobj any
	if err := jwget(q.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing quote for %q: %q not a float: %v", symbol, path, jval)
	}
	if val == 0 {
		return 0, fmt.Errorf("empty quote for %q", symbol)
	}
	return val, nil
}

// FetchPrices builds a fresh price snapshot for the given symbols. Symbols
// the provider cannot price are left out of the snapshot (downstream they
// surface as "unavailable") and their errors are joined in the returned
// error.
func FetchPrices(provider QuoteProvider, symbols []string, currency string) (PriceSnapshot, error) {
	snap := PriceSnapshot{
		Time:   time.Now().UTC().Truncate(time.Second),
		Prices: make(map[string]Money, len(symbols)),
	}
	var errs error
	for _, symbol := range symbols {
		latest, err := provider.Latest(symbol)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		snap.Prices[symbol] = M(latest, currency)
	}
	return snap, errs
}
