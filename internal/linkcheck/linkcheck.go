// Package linkcheck probes bookmark URLs and classifies their health.
package linkcheck

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/startdeck/startdeck/internal/model"
)

// Health classifies the outcome of probing a bookmark URL.
type Health int

const (
	HealthOK          Health = iota // 2xx or 3xx response
	HealthDead                      // 404 or 410 Gone
	HealthUnreachable               // timeout, DNS failure, connection refused, etc.
)

func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthDead:
		return "dead"
	default:
		return "unreachable"
	}
}

// Report holds the probe result for a single bookmark.
type Report struct {
	Bookmark   model.Bookmark
	Health     Health
	StatusCode int    // 0 if the connection failed
	Detail     string // short reason for non-OK results
}

// ProgressFunc is called after each URL has been probed.
type ProgressFunc func(done, total int)

// Checker probes URLs concurrently with a shared HTTP client.
type Checker struct {
	client      *http.Client
	concurrency int
	// Domains where a 404 likely means "auth required" rather than gone,
	// e.g. private repositories.
	privateDomains map[string]bool
	onProgress     ProgressFunc
}

// CheckerParams configures a Checker. Zero values fall back to sane defaults.
type CheckerParams struct {
	Concurrency    int
	Timeout        time.Duration
	PrivateDomains []string
	OnProgress     ProgressFunc
}

func NewChecker(params CheckerParams) *Checker {
	if params.Concurrency <= 0 {
		params.Concurrency = 8
	}
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	private := make(map[string]bool, len(params.PrivateDomains))
	for _, d := range params.PrivateDomains {
		private[strings.ToLower(d)] = true
	}
	return &Checker{
		client: &http.Client{
			Timeout: params.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		concurrency:    params.Concurrency,
		privateDomains: private,
		onProgress:     params.OnProgress,
	}
}

// Run probes every bookmark and returns one report per input, in input order.
// Cancelling ctx stops in-flight probes; bookmarks not yet probed are
// reported as unreachable with a "cancelled" detail.
func (c *Checker) Run(ctx context.Context, bookmarks []model.Bookmark) []Report {
	if len(bookmarks) == 0 {
		return nil
	}

	reports := make([]Report, len(bookmarks))
	jobs := make(chan int, len(bookmarks))

	var mu sync.Mutex
	done := 0

	var wg sync.WaitGroup
	for w := 0; w < c.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				reports[idx] = c.probe(ctx, bookmarks[idx])
				if c.onProgress != nil {
					mu.Lock()
					done++
					c.onProgress(done, len(bookmarks))
					mu.Unlock()
				}
			}
		}()
	}

	for i := range bookmarks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return reports
}

func (c *Checker) probe(ctx context.Context, bm model.Bookmark) Report {
	report := Report{Bookmark: bm}

	if err := ctx.Err(); err != nil {
		report.Health = HealthUnreachable
		report.Detail = "cancelled"
		return report
	}

	resp, err := c.do(ctx, http.MethodHead, bm.URL)
	if err != nil {
		// Some servers reject HEAD; retry with GET before giving up.
		resp, err = c.do(ctx, http.MethodGet, bm.URL)
		if err != nil {
			report.Health = HealthUnreachable
			report.Detail = normalizeError(err.Error())
			return report
		}
	}
	defer resp.Body.Close()

	report.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		report.Health = HealthOK
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		if c.isPrivateDomain(bm.URL) {
			report.Health = HealthUnreachable
			report.Detail = "possibly private (auth required)"
		} else {
			report.Health = HealthDead
		}
	default:
		// 403, 500 and friends can be transient or auth walls.
		report.Health = HealthUnreachable
		report.Detail = http.StatusText(resp.StatusCode)
	}

	return report
}

func (c *Checker) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

func (c *Checker) isPrivateDomain(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	if c.privateDomains[host] {
		return true
	}
	for domain := range c.privateDomains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// normalizeError collapses verbose transport errors into short categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)
	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "timeout"
	case strings.Contains(lower, "context canceled"):
		return "cancelled"
	case strings.Contains(lower, "connection refused"):
		return "connection refused"
	case strings.Contains(lower, "certificate"), strings.Contains(lower, "tls:"):
		return "TLS error"
	case strings.Contains(lower, "network is unreachable"):
		return "network unreachable"
	default:
		return errStr
	}
}
