// Package http serves /meta: liveness, readiness and build info
package http

import (
	"context"
	"net/http"
	"time"

	"bulletpoints/internal/core/version"
	"bulletpoints/internal/modkit/httpkit"
)

// readyBudget bounds all readiness checks of one request together
const readyBudget = 2 * time.Second

// Check is one named readiness check; a nil Run is reported as skipped
type Check struct {
	Name string
	Run  func(context.Context) error
}

// Deps are what the meta routes report on
type Deps struct {
	Service string
	Started time.Time
	Checks  []Check
}

// Health answers /health
type Health struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	Started time.Time `json:"started"`
	Now     time.Time `json:"now"`
}

// CheckResult is the outcome of one Check: ok, fail or skipped
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Readiness answers /ready; Status is fail as soon as one check fails
type Readiness struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
	Now    time.Time     `json:"now"`
}

// ServiceInfo answers /service
type ServiceInfo struct {
	Name    string    `json:"name"`
	Started time.Time `json:"started"`
	Uptime  int64     `json:"uptime"` // seconds
}

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return Health{OK: true, Service: d.Service, Started: d.Started.UTC(), Now: now()}, nil
	})
	httpkit.Get(r, "/ready", func(r *http.Request) (any, error) {
		return ready(r.Context(), d.Checks), nil
	})
	httpkit.Get(r, "/version", func(*http.Request) (any, error) {
		return version.For(d.Service), nil
	})
	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceInfo{
			Name:    d.Service,
			Started: d.Started.UTC(),
			Uptime:  int64(time.Since(d.Started) / time.Second),
		}, nil
	})
}

func ready(ctx context.Context, checks []Check) Readiness {
	ctx, cancel := context.WithTimeout(ctx, readyBudget)
	defer cancel()

	out := Readiness{Status: "ok", Checks: make([]CheckResult, 0, len(checks))}
	for _, c := range checks {
		res := CheckResult{Name: c.Name, Status: "ok"}
		switch {
		case c.Run == nil:
			res.Status = "skipped"
		default:
			if err := c.Run(ctx); err != nil {
				res.Status, res.Error = "fail", err.Error()
				out.Status = "fail"
			}
		}
		out.Checks = append(out.Checks, res)
	}
	out.Now = now()
	return out
}

func now() time.Time { return time.Now().UTC() }
