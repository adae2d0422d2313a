package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const chartJSON = `{"chart":{"result":[{
	"meta":{"symbol":"^GSPC","gmtoffset":-14400,"exchangeTimezoneName":"America/New_York"},
	"timestamp":[1717421400,1717335000,1717507800],
	"indicators":{"quote":[{
		"open":[5290.1,5280.0,null],
		"high":[5310.5,5290.0,null],
		"low":[5280.2,5270.0,null],
		"close":[5300.1234,5283.4,null],
		"volume":[3500000000,3400000000,null]
	}]}
}],"error":null}}`

func newTestYahoo(t *testing.T, status int, body string, gotPath *string) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.RequestURI()
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f
}

func TestYahooFetchBars(t *testing.T) {
	var path string
	f := newTestYahoo(t, http.StatusOK, chartJSON, &path)

	bars, err := f.FetchBars(context.Background(), "SPX500", "1d", "1mo")
	if err != nil {
		t.Fatalf("FetchBars: %v", err)
	}
	if !strings.HasPrefix(path, "/v8/finance/chart/%5EGSPC?") {
		t.Errorf("unexpected request path %q", path)
	}
	if !strings.Contains(path, "interval=1d") || !strings.Contains(path, "range=1mo") {
		t.Errorf("missing window parameters in %q", path)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after dropping the null one, got %d", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars are not in chronological order")
	}
	if got := bars[1].Time.Format("02/01/2006"); got != "03/06/2024" {
		t.Errorf("last bar date = %s, want 03/06/2024", got)
	}
	if bars[1].Close != 5300.1234 {
		t.Errorf("last close = %v, want 5300.1234", bars[1].Close)
	}
}

func TestYahooFetchBars_SkipsOpenSession(t *testing.T) {
	body := `{"chart":{"result":[{
		"meta":{"gmtoffset":-14400,"exchangeTimezoneName":"America/New_York"},
		"timestamp":[1717335000,1717421400],
		"indicators":{"quote":[{
			"open":[5280.0,5300.0],
			"high":[5290.0,5305.0],
			"low":[5270.0,5295.0],
			"close":[5283.4,null],
			"volume":[3400000000,null]
		}]}
	}],"error":null}}`
	f := newTestYahoo(t, http.StatusOK, body, nil)

	bars, err := f.FetchBars(context.Background(), "^GSPC", "1d", "1mo")
	if err != nil {
		t.Fatalf("FetchBars: %v", err)
	}
	if len(bars) != 1 || bars[0].Close != 5283.4 {
		t.Fatalf("expected only the closed bar, got %+v", bars)
	}
}

func TestYahooFetchBars_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantNoData bool
		wantMsg    string
	}{
		{
			name:       "empty result",
			status:     http.StatusOK,
			body:       `{"chart":{"result":[],"error":null}}`,
			wantNoData: true,
		},
		{
			name:       "no timestamps",
			status:     http.StatusOK,
			body:       `{"chart":{"result":[{"meta":{},"indicators":{"quote":[{}]}}],"error":null}}`,
			wantNoData: true,
		},
		{
			name:    "unknown symbol",
			status:  http.StatusNotFound,
			body:    `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`,
			wantMsg: "symbol may be delisted",
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			wantMsg: "status 502",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{"chart":`,
			wantMsg: "yahoo decode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestYahoo(t, tt.status, tt.body, nil)
			_, err := f.FetchBars(context.Background(), "^GSPC", "1d", "1mo")
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrNoData) != tt.wantNoData {
				t.Errorf("errors.Is(err, ErrNoData) = %v, want %v (err: %v)", !tt.wantNoData, tt.wantNoData, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestExchangeLocationFallback(t *testing.T) {
	loc := exchangeLocation("Not/AZone", -18000)
	if _, off := time.Unix(0, 0).In(loc).Zone(); off != -18000 {
		t.Errorf("offset = %d, want -18000", off)
	}
}
