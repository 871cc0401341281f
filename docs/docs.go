// Package docs holds the OpenAPI document served at /swagger. It follows
// the layout swag writes and is kept in step with the handler annotations in
// internal/journal/delivery/http.
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
		"/api/v1/reviews": {
			"post": {
				"description": "Appends the review and returns up to five suggestions for tomorrow.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Reviews"
				],
				"summary": "Record today's review",
				"parameters": [
					{
						"description": "Review text",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.recordReviewReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.recordReviewResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/reviews/draft": {
			"get": {
				"description": "Pre-fills accomplishments and incomplete text from today's tasks.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Reviews"
				],
				"summary": "Draft today's review",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.draftResp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/session": {
			"get": {
				"description": "Reports whether a passphrase is set up and the journal is unlocked.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Session status",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.statusResp"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/session/lock": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Lock the journal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/session/reset": {
			"post": {
				"description": "Discards the stored journal and the passphrase set-up. Use it when the passphrase is lost.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Reset the journal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/session/setup": {
			"post": {
				"description": "Sets the first passphrase (at least 8 characters) and opens the journal.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Set up the passphrase",
				"parameters": [
					{
						"description": "Passphrase and confirmation",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.setupReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.unlockResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Already set up",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/session/unlock": {
			"post": {
				"description": "Loads the stored journal with the passphrase. \"load\" is \"failed\" when the stored data could not be read with it; writes then return 409 until reset or a replace import.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Unlock the journal",
				"parameters": [
					{
						"description": "Passphrase",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.unlockReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.unlockResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/suggestions/accept": {
			"post": {
				"description": "Creates a task for each selected suggestion.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Reviews"
				],
				"summary": "Accept suggestions",
				"parameters": [
					{
						"description": "Selected suggestions",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.acceptSuggestionsReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.taskListResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/sync/backup": {
			"get": {
				"description": "Returns the backup file {version, timestamp, data} as an attachment.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Sync"
				],
				"summary": "Download a backup",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Backup"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/sync/export": {
			"get": {
				"description": "Returns the whole journal sealed with the active passphrase.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Sync"
				],
				"summary": "Export the journal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.exportResp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/sync/import": {
			"post": {
				"description": "Opens the blob (with \"passphrase\", or the active one) and merges or replaces. A non-empty journal needs \"mode\".",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Sync"
				],
				"summary": "Import an exported journal",
				"parameters": [
					{
						"description": "Blob, passphrase and mode",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.importReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.importResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"401": {
						"description": "Wrong passphrase",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Mode required or stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/sync/restore": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Sync"
				],
				"summary": "Restore a backup",
				"parameters": [
					{
						"description": "Backup file contents, passphrase and mode",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.restoreReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.importResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"401": {
						"description": "Wrong passphrase",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Mode required or stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/tasks": {
			"get": {
				"description": "Lists every task, or only those created on \"day\" (today, yesterday, \"N days ago\", YYYY-MM-DD).",
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "List tasks",
				"parameters": [
					{
						"description": "Day filter",
						"name": "day",
						"in": "query",
						"required": false,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.taskListResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "Add a task",
				"parameters": [
					{
						"description": "Task",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.createTaskReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.taskResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/tasks/summary": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "Task summary",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.summaryResp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/tasks/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "Delete a task",
				"parameters": [
					{
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/tasks/{id}/complete": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "Complete a task",
				"parameters": [
					{
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.taskResp"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"423": {
						"description": "Locked",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		},
		"/api/v1/tasks/{id}/elapsed": {
			"post": {
				"description": "Adds the seconds of a finished timer session to the task.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Tasks"
				],
				"summary": "Record a timer session",
				"parameters": [
					{
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Elapsed seconds",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.elapsedReq"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.taskResp"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					},
					"409": {
						"description": "Stored journal unreadable",
						"schema": {
							"$ref": "#/definitions/response.Resp"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"http.acceptSuggestionsReq": {
			"type": "object",
			"properties": {
				"suggestions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.suggestionResp"
					}
				}
			},
			"required": [
				"suggestions"
			]
		},
		"http.createTaskReq": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 500
				},
				"estimatedMinutes": {
					"type": "integer"
				}
			},
			"required": [
				"name"
			]
		},
		"http.draftResp": {
			"type": "object",
			"properties": {
				"accomplishments": {
					"type": "string"
				},
				"incomplete": {
					"type": "string"
				}
			}
		},
		"http.elapsedReq": {
			"type": "object",
			"properties": {
				"seconds": {
					"type": "integer",
					"minimum": 0
				}
			}
		},
		"http.exportResp": {
			"type": "object",
			"properties": {
				"blob": {
					"type": "string"
				}
			}
		},
		"http.importReq": {
			"type": "object",
			"properties": {
				"blob": {
					"type": "string"
				},
				"passphrase": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				}
			},
			"required": [
				"blob"
			]
		},
		"http.importResp": {
			"type": "object",
			"properties": {
				"taskCount": {
					"type": "integer"
				},
				"reviewCount": {
					"type": "integer"
				}
			}
		},
		"http.recordReviewReq": {
			"type": "object",
			"properties": {
				"accomplishments": {
					"type": "string"
				},
				"incomplete": {
					"type": "string"
				},
				"insights": {
					"type": "string"
				}
			}
		},
		"http.recordReviewResp": {
			"type": "object",
			"properties": {
				"review": {
					"$ref": "#/definitions/http.reviewResp"
				},
				"suggestions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.suggestionResp"
					}
				}
			}
		},
		"http.restoreReq": {
			"type": "object",
			"properties": {
				"backup": {
					"type": "object"
				},
				"passphrase": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				}
			}
		},
		"http.reviewResp": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"accomplishments": {
					"type": "string"
				},
				"incomplete": {
					"type": "string"
				},
				"insights": {
					"type": "string"
				},
				"tasksCompleted": {
					"type": "integer"
				},
				"tasksTotal": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"http.setupReq": {
			"type": "object",
			"properties": {
				"passphrase": {
					"type": "string"
				},
				"confirm": {
					"type": "string"
				}
			},
			"required": [
				"passphrase",
				"confirm"
			]
		},
		"http.statusResp": {
			"type": "object",
			"properties": {
				"initialised": {
					"type": "boolean"
				},
				"unlocked": {
					"type": "boolean"
				},
				"unreadable": {
					"type": "boolean"
				},
				"taskCount": {
					"type": "integer"
				},
				"reviewCount": {
					"type": "integer"
				}
			}
		},
		"http.suggestionResp": {
			"type": "object",
			"properties": {
				"task": {
					"type": "string"
				},
				"estimatedMinutes": {
					"type": "integer",
					"minimum": 1
				},
				"reason": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"type": {
					"type": "string"
				}
			},
			"required": [
				"task"
			]
		},
		"http.summaryResp": {
			"type": "object",
			"properties": {
				"completedCount": {
					"type": "integer"
				},
				"totalMinutes": {
					"type": "integer"
				},
				"taskCount": {
					"type": "integer"
				}
			}
		},
		"http.taskListResp": {
			"type": "object",
			"properties": {
				"tasks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.taskResp"
					}
				}
			}
		},
		"http.taskResp": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"estimatedMinutes": {
					"type": "integer"
				},
				"actualSeconds": {
					"type": "integer"
				},
				"actualMinutes": {
					"type": "integer"
				},
				"completed": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				},
				"suggestedBy": {
					"type": "string"
				},
				"suggestionReason": {
					"type": "string"
				}
			}
		},
		"http.unlockReq": {
			"type": "object",
			"properties": {
				"passphrase": {
					"type": "string"
				}
			},
			"required": [
				"passphrase"
			]
		},
		"http.unlockResp": {
			"type": "object",
			"properties": {
				"load": {
					"type": "string"
				}
			}
		},
		"model.Backup": {
			"type": "object",
			"properties": {
				"version": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				},
				"data": {
					"type": "string"
				}
			}
		},
		"response.Resp": {
			"type": "object",
			"properties": {
				"error_code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"errors": {}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Timetracker API",
	Description:      "Encrypted local task and time journal with daily reviews and next-day suggestions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
