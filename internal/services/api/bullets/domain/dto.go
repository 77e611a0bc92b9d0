// Package domain holds DTOs for bullets http and service contracts
package domain

import (
	"bulletpoints/internal/core/lengthcheck"
	"bulletpoints/internal/core/rulepack"
)

// NormalizeInput is the body for a normalize call. Text may be empty but must be present
type NormalizeInput struct {
	Text *string `json:"text" validate:"required,utf8" example:"The device is ten width. It's 6 feet tall!"`
}

// Result is one normalization with its length report
type Result struct {
	ID       string `json:"id"       example:"5b1f6c1e-8d0b-4c55-9d59-2f8c6a2f8f11"`
	Text     string `json:"text"     example:"Device is 10 W, it's 6  ft, tall,"`
	Length   int    `json:"length"   example:"33"`
	Limit    int    `json:"limit"    example:"550"`
	Exceeded bool   `json:"exceeded" example:"false"`
	Warning  string `json:"warning,omitempty"`
}

// RuleTables are the rewrite tables in application order
type RuleTables = rulepack.Tables

// LengthReport is the outcome of a length check
type LengthReport = lengthcheck.Report
