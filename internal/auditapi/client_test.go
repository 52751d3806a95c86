package auditapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	activityports "audit-activity-service/internal/activity/core/ports"
	auditsports "audit-activity-service/internal/audits/core/ports"
	"audit-activity-service/internal/config"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(config.AuditAPIConfig{
		BaseURL:    srv.URL + "/",
		ReportPath: "/api/audit/report",
		ListPath:   "/api/audit/list",
		Timeout:    5 * time.Second,
	}, zap.NewNop())
}

func dayFilter() activityports.ReportFilter {
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return activityports.ReportFilter{
		Tenant: "acme",
		Table:  "audits",
		From:   from,
		To:     from.AddDate(0, 0, 1),
		Limit:  1000,
	}
}

// ------------------------------------------------------------
// REPORT: request shape
// ------------------------------------------------------------

func TestFetchReport_RequestShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/audit/report" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"tenant":        "acme",
			"table":         "audits",
			"actor":         "alice",
			"timestampFrom": "2024-01-02T00:00:00.000Z",
			"timestampTo":   "2024-01-03T00:00:00.000Z",
			"limit":         "1000",
		}
		for k, v := range want {
			if got := q.Get(k); got != v {
				t.Errorf("query %s: expected %q, got %q", k, v, got)
			}
		}
		if r.Header.Get(HeaderAuthUsername) != "bob" ||
			r.Header.Get(HeaderAuthPassword) != "secret" ||
			r.Header.Get(HeaderAuthDomainName) != "corp" {
			t.Errorf("credentials not forwarded: %v", r.Header)
		}
		w.Write([]byte(`[]`))
	})

	f := dayFilter()
	actor := "alice"
	f.Actor = &actor

	items, err := c.FetchReport(context.Background(), activityports.Credentials{
		Username: "bob", Password: "secret", DomainName: "corp",
	}, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestFetchReport_OmitsEmptyActor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("actor") {
			t.Errorf("actor should be omitted")
		}
		w.Write([]byte(`[]`))
	})

	if _, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchReport_NonUTCBoundsRenderedInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("timestampFrom"); got != "2024-01-01T21:00:00.000Z" {
			t.Errorf("unexpected timestampFrom %q", got)
		}
		w.Write([]byte(`[]`))
	})

	f := dayFilter()
	f.From = time.Date(2024, 1, 2, 0, 0, 0, 0, loc)
	f.To = f.From.AddDate(0, 0, 1)
	if _, err := c.FetchReport(context.Background(), activityports.Credentials{}, f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ------------------------------------------------------------
// REPORT: decoding
// ------------------------------------------------------------

func TestFetchReport_DecodesItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"primaryObjectId":"o1","primaryObjectType":"doc","eventType":"update","eventCount":4,"extra":true},
			{"eventCount":0},
			{"eventCount":9}
		]`))
	})

	items, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].PrimaryObjectID != "o1" || items[0].EventType != "update" || items[0].EventCount != 4 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[2].EventCount != 9 {
		t.Fatalf("unexpected third item: %+v", items[2])
	}
}

func TestFetchReport_AcceptsIntegralFloatCounts(t *testing.T) {
	tests := []struct {
		body string
		want int64
	}{
		{`[{"eventCount":5.0}]`, 5},
		{`[{"eventCount":1e3}]`, 1000},
		{`[{"eventCount":2.5E1}]`, 25},
		{`[{"eventCount":0.0}]`, 0},
		{`[{"eventCount":9223372036854775807}]`, 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			items, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != 1 || items[0].EventCount != tt.want {
				t.Fatalf("expected count %d, got %+v", tt.want, items)
			}
		})
	}
}

func TestFetchReport_MalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"eventCount":1}`},
		{"null", `null`},
		{"empty", ``},
		{"missing_count", `[{"eventType":"x"}]`},
		{"null_count", `[{"eventCount":null}]`},
		{"string_count", `[{"eventCount":"5"}]`},
		{"fractional_count", `[{"eventCount":1.5}]`},
		{"fractional_exponent_count", `[{"eventCount":1.5e-1}]`},
		{"negative_count", `[{"eventCount":-2}]`},
		{"negative_float_count", `[{"eventCount":-2.0}]`},
		{"count_above_int64", `[{"eventCount":9223372036854775808}]`},
		{"huge_float_count", `[{"eventCount":1e300}]`},
		{"bool_count", `[{"eventCount":true}]`},
		{"object_count", `[{"eventCount":{"n":1}}]`},
		{"non_object_item", `[3]`},
		{"truncated_json", `[{"eventCount":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			items, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter())
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
			if errors.Is(err, ErrUpstreamStatus) || errors.Is(err, ErrUpstreamTransport) {
				t.Fatalf("data error must be distinct from transport failure: %v", err)
			}
			if items != nil {
				t.Fatalf("expected nil items, got %v", items)
			}
		})
	}
}

// ------------------------------------------------------------
// REPORT: transport failures
// ------------------------------------------------------------

func TestFetchReport_NonSuccessStatus(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(`[{"eventCount":1}]`))
		})

		_, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter())
		if !errors.Is(err, ErrUpstreamStatus) {
			t.Fatalf("status %d: expected ErrUpstreamStatus, got %v", code, err)
		}
	}
}

func TestFetchReport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(config.AuditAPIConfig{BaseURL: url, ReportPath: "/r", Timeout: time.Second}, zap.NewNop())
	_, err := c.FetchReport(context.Background(), activityports.Credentials{}, dayFilter())
	if !errors.Is(err, ErrUpstreamTransport) {
		t.Fatalf("expected ErrUpstreamTransport, got %v", err)
	}
}

func TestFetchReport_ContextCanceled(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchReport(ctx, activityports.Credentials{}, dayFilter())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestListAudits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/audit/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("tenant") != "acme" || q.Get("table") != "audits" {
			t.Errorf("missing tenant/table: %v", q)
		}
		if q.Get("limit") != "20" || q.Get("offset") != "40" {
			t.Errorf("unexpected paging: %v", q)
		}
		if q.Get("eventType") != "login" {
			t.Errorf("expected eventType=login, got %q", q.Get("eventType"))
		}
		if q.Has("action") || q.Has("primaryObjectId") {
			t.Errorf("empty filters should be omitted: %v", q)
		}
		w.Write([]byte(`[{"id":"a1","timestamp":"2024-01-02T10:00:00Z","actor":"alice","actorEmail":"a@x.io","action":"LOGIN","eventType":"login","objectType":"user","objectId":"u1","description":"signed in"}]`))
	})

	audits, err := c.ListAudits(context.Background(), auditsports.Credentials{}, auditsports.ListFilter{
		Tenant:    "acme",
		Table:     "audits",
		EventType: "login",
		Limit:     20,
		Offset:    40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("expected 1 audit, got %d", len(audits))
	}
	a := audits[0]
	if a.ID != "a1" || a.ActorEmail != "a@x.io" || a.ObjectID != "u1" || a.Description != "signed in" {
		t.Fatalf("unexpected audit: %+v", a)
	}
}

func TestListAudits_Errors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})
	if _, err := c.ListAudits(context.Background(), auditsports.Credentials{}, auditsports.ListFilter{Tenant: "a", Table: "b", Limit: 1}); !errors.Is(err, ErrUpstreamStatus) {
		t.Fatalf("expected ErrUpstreamStatus, got %v", err)
	}

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	if _, err := c.ListAudits(context.Background(), auditsports.Credentials{}, auditsports.ListFilter{Tenant: "a", Table: "b", Limit: 1}); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
