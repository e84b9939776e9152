// Package docs holds the generated swagger specification served at
// /swagger/doc.json.
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
        "/v1/admin/document": {
            "get": {
                "produces": ["application/json"],
                "tags": ["document"],
                "summary": "Read the whole festival document",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["document"],
                "summary": "Replace the whole festival document",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Revision conflict"}
                }
            }
        },
        "/v1/festival/leaderboards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Overall and per-category team standings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/festival/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Categories with published competitions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/posters/competitions/{competition_id}": {
            "post": {
                "produces": ["image/png"],
                "tags": ["posters"],
                "summary": "Render the winners poster for a competition",
                "parameters": [
                    {"type": "string", "name": "competition_id", "in": "path", "required": true},
                    {"type": "integer", "name": "seed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Festboard API",
	Description:      "Festival results management: shared document store, moderation, leaderboards and poster rendering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
