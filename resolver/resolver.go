package resolver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/logging"
)

// Verdict is the outcome of backend discovery. When no candidate answers,
// Origin holds the frontend origin as a placeholder and Reachable is false.
type Verdict struct {
	Origin    string
	Reachable bool
}

// Resolver probes candidate API origins in order and caches the first
// answering one for a TTL. A probe timeout means "candidate down", never an
// error.
type Resolver struct {
	candidates     []string
	frontendOrigin string
	probeTimeout   time.Duration
	ttl            time.Duration
	client         *http.Client
	log            *logging.Logger
	now            func() time.Time

	mu      sync.Mutex
	cached  Verdict
	expires time.Time
}

func New(candidates []string, frontendOrigin string, probeTimeout, ttl time.Duration, log *logging.Logger) *Resolver {
	return &Resolver{
		candidates:     candidates,
		frontendOrigin: frontendOrigin,
		probeTimeout:   probeTimeout,
		ttl:            ttl,
		client:         &http.Client{},
		log:            log,
		now:            time.Now,
	}
}

// FromConfig builds a resolver over the configured candidate origins.
func FromConfig(cfg *config.Config, log *logging.Logger) *Resolver {
	return New(
		cfg.CandidateOrigins(),
		cfg.FrontendOrigin,
		time.Duration(cfg.ProbeTimeout)*time.Second,
		time.Duration(cfg.ResolveTTL)*time.Second,
		log,
	)
}

// WithClock replaces the clock, for tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// WithHTTPClient replaces the probe client, for tests.
func (r *Resolver) WithHTTPClient(client *http.Client) *Resolver {
	r.client = client
	return r
}

// Resolve returns the cached verdict when it is still fresh, otherwise
// probes the candidates. Concurrent callers inside the TTL window share one
// probe; the mutex bounds probe fan-out to a single in-flight resolution.
func (r *Resolver) Resolve(ctx context.Context) Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.now().Before(r.expires) {
		return r.cached
	}
	return r.probeLocked(ctx)
}

// Refresh bypasses the cache and replaces the verdict, e.g. after a
// transient network blip.
func (r *Resolver) Refresh(ctx context.Context) Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.probeLocked(ctx)
}

func (r *Resolver) probeLocked(ctx context.Context) Verdict {
	verdict := Verdict{Origin: r.frontendOrigin, Reachable: false}
	for _, origin := range r.candidates {
		if r.alive(ctx, origin) {
			verdict = Verdict{Origin: origin, Reachable: true}
			break
		}
		r.log.Debugf("resolver: %s did not answer", origin)
	}

	if !verdict.Reachable {
		r.log.Debugf("resolver: no backend reachable, using synthetic data")
	}

	r.cached = verdict
	r.expires = r.now().Add(r.ttl)
	return verdict
}

// alive reports whether an origin hosts a live backend. The health endpoint
// is tried first; if it errors, a known resource endpoint serves as the
// secondary liveness signal. Any status below 500 counts as present, 401
// and 403 included.
func (r *Resolver) alive(ctx context.Context, origin string) bool {
	if status, ok := r.probe(ctx, origin+"/api/health"); ok && status < 500 {
		return true
	}
	if status, ok := r.probe(ctx, origin+"/api/topics"); ok && status < 500 {
		return true
	}
	return false
}

func (r *Resolver) probe(ctx context.Context, url string) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	return resp.StatusCode, true
}
