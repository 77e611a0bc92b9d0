package domain

import "context"

// ServicePort defines the service contract for bullets
type ServicePort interface {
	Normalize(ctx context.Context, text string) (Result, error)
	Check(ctx context.Context, text string) LengthReport
	Rules(ctx context.Context) RuleTables
}
