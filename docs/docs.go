// Package docs registers the OpenAPI document served under /docs.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a local account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Exchange credentials for a bearer token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/posts/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "List posts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Create a post", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/posts/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Get a post", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Update a post", "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Delete a post", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/posts/{id}/comments/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "List comments of a post", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Create a comment", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/posts/{id}/like/": {"post": {"security": [{"BearerAuth": []}], "tags": ["likes"], "summary": "Toggle like on a post", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/comments/{id}/like/": {"post": {"security": [{"BearerAuth": []}], "tags": ["likes"], "summary": "Toggle like on a comment", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/comments/{id}/replies/": {"get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "List direct replies of a comment", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/comments/{id}/": {"delete": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Delete a comment", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "postboard API",
	Description:      "Posts, threaded comments and like toggles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
