package swaggerkit

import (
	"encoding/json"
	"net/http"

	"bulletpoints/internal/core/version"
)

// route is one documented operation
type route struct {
	method, path, summary string
	body                  bool
}

// routes mirrors what the bullets and meta modules mount under /api/v1;
// every answer shares the Envelope schema
var routes = []route{
	{http.MethodPost, "/bullets/normalize", "Normalize bullet point text", true},
	{http.MethodGet, "/bullets/rules", "Rewrite tables in application order", false},
	{http.MethodGet, "/bullets/check", "Length check for already normalized text", false},
	{http.MethodGet, "/meta/health", "Health check", false},
	{http.MethodGet, "/meta/ready", "Readiness, including the rule pack", false},
	{http.MethodGet, "/meta/version", "Build and rule pack version", false},
	{http.MethodGet, "/meta/service", "Service name and uptime", false},
}

// buildDoc renders a minimal OpenAPI 3 document for routes
func buildDoc() map[string]any {
	envelope := map[string]any{"$ref": "#/components/schemas/Envelope"}
	answer := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content":     map[string]any{"application/json": map[string]any{"schema": envelope}},
		}
	}

	paths := map[string]any{}
	for _, rt := range routes {
		op := map[string]any{
			"summary": rt.summary,
			"responses": map[string]any{
				"200": answer("OK"),
				"400": answer("Bad Request"),
				"500": answer("Internal Server Error"),
			},
		}
		if rt.body {
			op["requestBody"] = map[string]any{
				"required": true,
				"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{
					"type":       "object",
					"required":   []any{"text"},
					"properties": map[string]any{"text": map[string]any{"type": "string"}},
				}}},
			}
		}
		node, _ := paths[rt.path].(map[string]any)
		if node == nil {
			node = map[string]any{}
			paths[rt.path] = node
		}
		node[lower(rt.method)] = op
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "bulletpoints API",
			"version": version.Info().Version,
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   paths,
		"components": map[string]any{"schemas": map[string]any{"Envelope": map[string]any{
			"type":     "object",
			"required": []any{"status_code", "status"},
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer"},
				"error":       map[string]any{"type": "string"},
				"field":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
				"data":        map[string]any{},
			},
		}}},
	}
}

func lower(m string) string {
	switch m {
	case http.MethodPost:
		return "post"
	default:
		return "get"
	}
}

// serveDocJSON serves the document built from routes
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(buildDoc())
	}
}
