// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/v1/predictions": {
            "post": {
                "description": "Encodes the household inputs and runs the loaded model. Omitted fields take the form defaults.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Predict energy consumption",
                "parameters": [
                    {"description": "Household inputs", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.InputRecord"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PredictionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Stored predictions, newest first. A date-only 'to' covers the whole day.",
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "List predictions",
                "parameters": [
                    {"type": "string", "example": "2026-01-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2026-01-31", "description": "End of range; date-only is end of day", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Maximum rows (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, predictions", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/features": {
            "post": {
                "description": "Returns the feature vector the model would receive, in schema order.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Encode inputs",
                "parameters": [
                    {"description": "Household inputs", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.InputRecord"}}
                ],
                "responses": {"200": {"description": "columns, features", "schema": {"type": "object"}}}
            }
        },
        "/api/v1/schema": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Input schema",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/v1/model": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Model status",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"description": "Username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"description": "Username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.PredictionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "created_at": {"type": "string"},
                "prediction_kwh": {"type": "number", "example": 107.5},
                "display": {"type": "string", "example": "107.50 kWh"},
                "features": {"type": "object"},
                "model": {"type": "string"}
            }
        },
        "models.InputRecord": {
            "type": "object",
            "properties": {
                "temperature": {"type": "number", "example": 25},
                "humidity": {"type": "number", "example": 45},
                "square_footage": {"type": "integer", "example": 1500},
                "occupancy": {"type": "integer", "example": 5},
                "renewable_energy": {"type": "number", "example": 15},
                "hvac_usage": {"type": "string", "example": "On"},
                "lighting_usage": {"type": "string", "example": "On"},
                "day_of_week": {"type": "string", "example": "Monday"},
                "is_holiday": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Energy Predictor API",
	Description:      "Household energy consumption prediction service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
