package httpapi

import (
	"net/http"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/httpjson"
)

// handleOpenAPI renvoie une spec OpenAPI minimale pour cadrer la surface.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	jsonOK := func(schemaRef string) map[string]any {
		return map[string]any{
			"description": "OK",
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": schemaRef},
				},
			},
		}
	}

	jsonErr := map[string]any{
		"description": "Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/SkillError"},
			},
		},
	}

	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Share To Mirror API",
			"version": "v1",
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"OpenAPIDocument": map[string]any{
					"type":                 "object",
					"additionalProperties": true,
				},
				"SkillError": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"error":  map[string]any{"type": "string"},
						"code":   map[string]any{"type": "string", "enum": []any{"no_search_results", "unreachable", "remote_rejected", "bad_response", "invalid_command_state"}},
						"speech": map[string]any{"type": "string"},
					},
					"required": []any{"error"},
				},
				"Result": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"speech": map[string]any{"type": "string"},
						"video":  map[string]any{"$ref": "#/components/schemas/VideoCandidate"},
						"status": map[string]any{"$ref": "#/components/schemas/StatusSnapshot"},
					},
					"required": []any{"speech"},
				},
				"VideoCandidate": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":              map[string]any{"type": "string"},
						"title":           map[string]any{"type": "string"},
						"channel":         map[string]any{"type": "string"},
						"durationSeconds": map[string]any{"type": "integer"},
						"durationKnown":   map[string]any{"type": "boolean"},
						"url":             map[string]any{"type": "string"},
					},
					"required": []any{"id", "url"},
				},
				"StatusSnapshot": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"playing":     map[string]any{"type": "boolean"},
						"lastUrl":     map[string]any{"type": "string"},
						"lastVideoId": map[string]any{"type": "string"},
					},
					"required": []any{"playing"},
				},
				"PlayIntent": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic":    map[string]any{"type": "string"},
						"url":      map[string]any{"type": "string"},
						"channel":  map[string]any{"type": "string"},
						"duration": map[string]any{"type": "string", "enum": []any{"any", "short", "long"}},
					},
				},
				"ControlIntent": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"action":  map[string]any{"type": "string", "enum": []any{"pause", "resume", "rewind", "forward", "restart"}},
						"seconds": map[string]any{"type": "integer", "minimum": 1},
					},
					"required": []any{"action"},
				},
				"Preferences": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"caption": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"enabled": map[string]any{"type": "boolean"},
								"lang":    map[string]any{"type": "string"},
							},
						},
						"quality": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"target": map[string]any{"type": "string"},
								"lock":   map[string]any{"type": "boolean"},
							},
						},
					},
				},
			},
		},
		"paths": map[string]any{
			"/api/v1/health": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
			"/api/v1/version": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
			"/api/v1/openapi.json": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": jsonOK("#/components/schemas/OpenAPIDocument")}},
			},
			"/api/v1/events": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "SSE"}}},
			},
			"/api/v1/mirror/health": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "OK"}, "502": jsonErr}},
			},
			"/api/v1/intents/play": map[string]any{
				"post": map[string]any{
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/PlayIntent"},
							},
						},
					},
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Result"),
						"400": jsonErr,
						"404": jsonErr,
						"502": jsonErr,
					},
				},
			},
			"/api/v1/intents/control": map[string]any{
				"post": map[string]any{
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/ControlIntent"},
							},
						},
					},
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Result"),
						"400": jsonErr,
						"409": jsonErr,
						"502": jsonErr,
					},
				},
			},
			"/api/v1/intents/stop": map[string]any{
				"post": map[string]any{
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Result"),
						"502": jsonErr,
					},
				},
			},
			"/api/v1/intents/status": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Result"),
						"502": jsonErr,
					},
				},
			},
			"/api/v1/preferences": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Preferences"),
						"500": jsonErr,
					},
				},
				"put": map[string]any{
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/Preferences"},
							},
						},
					},
					"responses": map[string]any{
						"200": jsonOK("#/components/schemas/Preferences"),
						"400": jsonErr,
						"500": jsonErr,
					},
				},
			},
		},
	}

	httpjson.Write(w, http.StatusOK, spec)
}
