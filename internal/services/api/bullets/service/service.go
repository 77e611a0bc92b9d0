// Package service contains the bullets workflows
package service

import (
	"context"

	"bulletpoints/internal/core/lengthcheck"
	"bulletpoints/internal/core/normalize"
	"bulletpoints/internal/platform/logger"
	"bulletpoints/internal/services/api/bullets/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for bullets
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	norm *normalize.Normalizer

	newID func() string
}

// New creates a new bullets service
func New(n *normalize.Normalizer) *Svc {
	if n == nil {
		panic("bullets.Service requires a non nil Normalizer")
	}
	return &Svc{norm: n, newID: func() string { return uuid.NewString() }}
}

// Normalize rewrites text and attaches the length report.
// Only sizes are logged, never the text
func (s *Svc) Normalize(ctx context.Context, text string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	out := s.norm.Normalize(text)
	rep := lengthcheck.Check(out)

	res := domain.Result{
		ID:       s.newID(),
		Text:     out,
		Length:   rep.Length,
		Limit:    rep.Limit,
		Exceeded: rep.Exceeded,
		Warning:  rep.Warning,
	}

	logger.C(ctx).Debug().
		Str("result_id", res.ID).
		Int("in_len", lengthcheck.Length(text)).
		Int("out_len", res.Length).
		Bool("exceeded", res.Exceeded).
		Msg("bullets normalized")

	return res, nil
}

// Check measures already normalized text against the fixed limit
func (s *Svc) Check(_ context.Context, text string) domain.LengthReport {
	return lengthcheck.Check(text)
}

// Rules returns a copy of the rule tables the normalizer runs with
func (s *Svc) Rules(_ context.Context) domain.RuleTables {
	return s.norm.Pack().Tables()
}
