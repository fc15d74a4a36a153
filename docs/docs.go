// Package docs holds the Swagger 2.0 description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/containers/{container_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["containers"],
                "summary": "Container details",
                "parameters": [
                    {"type": "string", "description": "Container ID", "name": "container_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.containerResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/eta": {
            "get": {
                "produces": ["application/json"],
                "tags": ["eta"],
                "summary": "Estimated time of arrival in destination local time",
                "parameters": [
                    {"type": "string", "description": "Origin port ID", "name": "origin", "in": "query", "required": true},
                    {"type": "string", "description": "Destination port ID", "name": "destination", "in": "query", "required": true},
                    {"type": "string", "description": "Departure, RFC 3339 with offset. Encode a positive offset as %2B; an unescaped + decoded to a space is also accepted", "name": "departure", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.etaResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Unknown port", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "422": {"description": "Unknown timezone or route", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "gRPC health status",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "api.containerResponse": {
            "type": "object",
            "properties": {
                "container_id": {"type": "string"},
                "weight": {"type": "number"},
                "port_of_origin": {"type": "string"},
                "is_dangerous_goods": {"type": "boolean"}
            }
        },
        "api.etaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "destination_timezone": {"type": "string"},
                "departure": {"type": "string"},
                "arrival": {"type": "string"},
                "voyage_days": {"type": "integer"}
            }
        },
        "api.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cargo ETA API",
	Description:      "Container lookup and time-zone-aware arrival estimates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
