// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["session"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/lab-tests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["lab-tests"],
                "summary": "Lab test board",
                "parameters": [
                    {"type": "string", "description": "Patient name or test type", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.LabTestBoard"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/lab-tests/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["lab-tests"],
                "summary": "Get a lab test",
                "parameters": [
                    {"type": "string", "description": "Lab test id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LabTest"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/lab-tests/{id}/start": {
            "post": {
                "produces": ["application/json"],
                "tags": ["lab-tests"],
                "summary": "Start a lab test",
                "parameters": [
                    {"type": "string", "description": "Lab test id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LabTest"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/lab-tests/{id}/result": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lab-tests"],
                "summary": "Upload a lab test result",
                "parameters": [
                    {"type": "string", "description": "Lab test id", "name": "id", "in": "path", "required": true},
                    {"description": "Result text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.uploadResultRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LabTest"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/{path}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Navigate to a page",
                "parameters": [
                    {"type": "string", "description": "Page path", "name": "path", "in": "path", "required": true},
                    {"type": "string", "description": "Search term (lab-tests page)", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Page"}},
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/view.Page"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["receptionist", "opd", "laboratory", "injection"]}
            }
        },
        "domain.LabTest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "patient_name": {"type": "string"},
                "test_type": {"type": "string"},
                "requested_by": {"type": "string"},
                "request_date": {"type": "string"},
                "result_date": {"type": "string"},
                "fee": {"type": "number"},
                "is_paid": {"type": "boolean"},
                "status": {"type": "string", "enum": ["pending", "in-progress", "completed"]},
                "result": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/domain.Identity"},
                "error": {"type": "string"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "user": {"$ref": "#/definitions/domain.Identity"}
            }
        },
        "handler.uploadResultRequest": {
            "type": "object",
            "properties": {"result": {"type": "string"}}
        },
        "ports.LabTestBoard": {
            "type": "object",
            "properties": {
                "search": {"type": "string"},
                "pending": {"type": "array", "items": {"$ref": "#/definitions/domain.LabTest"}},
                "in_progress": {"type": "array", "items": {"$ref": "#/definitions/domain.LabTest"}},
                "completed": {"type": "array", "items": {"$ref": "#/definitions/domain.LabTest"}},
                "counts": {
                    "type": "object",
                    "properties": {
                        "pending": {"type": "integer"},
                        "in_progress": {"type": "integer"},
                        "completed": {"type": "integer"}
                    }
                }
            }
        },
        "view.Page": {
            "type": "object",
            "properties": {
                "view": {"type": "string"},
                "path": {"type": "string"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.Identity"},
                "data": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Clinic Portal API",
	Description:      "Session, navigation and lab test endpoints of the clinic staff portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
