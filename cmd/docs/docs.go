// Package docs holds the swagger spec served under /swagger. It mirrors the
// handler annotations; regenerate with `swag init -g cmd/ledger_backend/main.go -o cmd/docs`.
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
        "/workplaces/{workplace_id}/accounts": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates an account in the workplace chart. The parent, when given, must be in the same workplace and the chart is at most five levels deep.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Create a new account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account details",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Parent account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Duplicate code or parent already carries postings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the workplace chart ordered by code",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "default": 100,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "default": 0,
                        "description": "Offset",
                        "name": "offset",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListAccountsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list accounts",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an account by ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Updates the name and description of an account. Code, type and parent are changed through their own operations.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Update an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to update account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Deletes an account that has no children, a zero balance and no journal or reconciliation references.",
                "tags": [
                    "accounts"
                ],
                "summary": "Delete an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Account still in use",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/by-code/{code}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an account by code",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account by code",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}/reparent": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Moves an account and its subtree under a new parent, or to the top level when no parent is given.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Move an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New parent",
                        "name": "parent",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReparentAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Depth exceeded",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Cycle or parent carries postings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}/deactivate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Deactivate an account",
                "tags": [
                    "accounts"
                ],
                "summary": "Deactivate an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}/activate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reactivate an account",
                "tags": [
                    "accounts"
                ],
                "summary": "Reactivate an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/import": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates accounts row by row. Rows that fail are reported with their reason and never abort the batch.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Import accounts in bulk",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Rows to import",
                        "name": "chart",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ImportChartRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ChartImportResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/seed": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Imports the starter chart of accounts. Codes that already exist are reported as failures.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Seed the default chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ChartImportResponse"
                        }
                    }
                }
            }
        },
        "/": {
            "get": {
                "description": "get the status of server.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Reports 503 while the database cannot be reached.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Validates, numbers and posts a balanced entry. Account balances move in the same transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Post a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Entry with its lines",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "400": {
                        "description": "Unbalanced, mixed or non-postable lines",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to post entry",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists entries newest first with token based pagination.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "List journal entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "DRAFT, POSTED or REVERSED",
                        "name": "status",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Continuation token",
                        "name": "nextToken",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListEntriesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/drafts": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stores an entry without posting it. Drafts never move balances and may be unbalanced.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Save a draft entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Entry with its lines",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid lines",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/{entryID}/post": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Post a draft entry",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Post a draft entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expected version",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.EntryTransitionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "400": {
                        "description": "Draft fails validation",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry is not a draft or was modified concurrently",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/{entryID}/reverse": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Marks a posted entry reversed and takes its effect out of account balances. The lines are kept for audit.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Reverse a posted entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expected version",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.EntryTransitionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry is not posted or was modified concurrently",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/{entryID}/lines": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the full line set of a draft or posted entry. Posted entries are re-validated and balances move by the difference.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Replace the lines of an entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New lines",
                        "name": "lines",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReplaceLinesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid lines",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Entry reversed or modified concurrently",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/{entryID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a journal entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Get a journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EntryResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/entries/{entryID}/revisions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the line sets the entry carried before each replacement, oldest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "List line revisions of an entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.LineRevision"
                            }
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}/balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Balance from posted lines dated on or before asOf, signed by the account's normal balance. With rollup=true descendants are included.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get an account balance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Cut-off date (YYYY-MM-DD), defaults to today",
                        "name": "asOf",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "description": "Include descendant accounts",
                        "name": "rollup",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid date",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/accounts/{accountID}/ledger": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Posted lines of an account in date order with running balances. The opening balance covers everything before the range.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get an account ledger",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account ID",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "default": 50,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Continuation token",
                        "name": "nextToken",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LedgerPageResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid range or token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reports/account-totals": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sums posted debits and credits per account inside the range.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Per-account totals",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountTotalsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid range",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reports/trial-balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Posted totals per account with grand totals and whether they agree.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Trial balance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid range",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reports/draft-activity": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Per-account sums of draft entries, reported apart from posted figures.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Draft activity",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Start date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "End date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountTotalsResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/maintenance/rebuild-balances": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recomputes every stored account balance of the workplace from posted lines.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "maintenance"
                ],
                "summary": "Rebuild stored balances",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RebuildBalancesResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/bank-accounts": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Links a bank account to a posting account of the chart.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Register a bank account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Bank account",
                        "name": "bankAccount",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterBankAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.BankAccount"
                        }
                    },
                    "400": {
                        "description": "Invalid input or non-posting account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Chart account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "List bank accounts",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "List bank accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.BankAccount"
                            }
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the session of the bank account for the as-of date, creating it when it does not exist yet.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Open a reconciliation session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Session",
                        "name": "session",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OpenSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ReconciliationSession"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Bank account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a reconciliation session",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Get a reconciliation session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}/sync": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Rebuilds the session's book items from the linked account's posted ledger. Matched items are kept.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Refresh book items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SyncResult"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Session closed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}/statement": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds statement rows as bank items. Rows that cannot be classified are reported and skipped.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Import bank statement rows",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Statement rows",
                        "name": "statement",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ImportStatementRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.StatementImportResult"
                        }
                    },
                    "409": {
                        "description": "Session closed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/matches": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Match a book item with a bank item",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Match a book item with a bank item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Items to pair",
                        "name": "match",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MatchItemsRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Items cannot be matched",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Already matched or session closed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliation-items/{itemID}/match": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Clears the match on the item and its counterpart. Unmatched items are left as they are.",
                "tags": [
                    "reconciliation"
                ],
                "summary": "Undo a match",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Item ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Session closed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}/suggestions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Pairs unmatched items of equal amount, closest date first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Suggest matches",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.MatchSuggestion"
                            }
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reconciliation summary",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconciliation summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/workplaces/{workplace_id}/reconciliations/{sessionID}/close": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Closes a balanced session. Closed sessions no longer accept changes.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Close a reconciliation session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workplace ID",
                        "name": "workplace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ReconciliationSession"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Session not balanced or already closed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.AccountTotal": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "normalBalance": {
                    "type": "string"
                },
                "totalDebit": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalCredit": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "domain.BankAccount": {
            "type": "object",
            "properties": {
                "bankAccountID": {
                    "type": "string"
                },
                "workplaceID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "bankName": {
                    "type": "string"
                },
                "accountNumber": {
                    "type": "string"
                },
                "chartAccountID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.DateRange": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "format": "date-time"
                },
                "to": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.ImportFailure": {
            "type": "object",
            "properties": {
                "identifier": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "domain.JournalLine": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                },
                "debitAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "creditAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "description": {
                    "type": "string"
                },
                "lineNumber": {
                    "type": "integer"
                }
            }
        },
        "domain.LedgerRow": {
            "type": "object",
            "properties": {
                "entryID": {
                    "type": "string"
                },
                "entryNumber": {
                    "type": "string"
                },
                "entryDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lineID": {
                    "type": "string"
                },
                "lineNumber": {
                    "type": "integer"
                },
                "accountID": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "debitAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "creditAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "contribution": {
                    "type": "string",
                    "example": "0.00"
                },
                "runningBalance": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "domain.LineRevision": {
            "type": "object",
            "properties": {
                "entryID": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.JournalLine"
                    }
                },
                "replacedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "replacedBy": {
                    "type": "string"
                }
            }
        },
        "domain.MatchSuggestion": {
            "type": "object",
            "properties": {
                "bookItemID": {
                    "type": "string"
                },
                "bankItemID": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "dayGap": {
                    "type": "integer"
                }
            }
        },
        "domain.ReconciliationItem": {
            "type": "object",
            "properties": {
                "itemID": {
                    "type": "string"
                },
                "sessionID": {
                    "type": "string"
                },
                "sourceType": {
                    "type": "string"
                },
                "movementType": {
                    "type": "string"
                },
                "transactionDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "isReconciled": {
                    "type": "boolean"
                },
                "matchedItemID": {
                    "type": "string"
                },
                "naturalKey": {
                    "type": "string"
                },
                "sourceLineID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.ReconciliationSession": {
            "type": "object",
            "properties": {
                "sessionID": {
                    "type": "string"
                },
                "workplaceID": {
                    "type": "string"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "periodStart": {
                    "type": "string",
                    "format": "date-time"
                },
                "asOfDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "statementOpeningBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "statementClosingBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "bookBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.StatementImportResult": {
            "type": "object",
            "properties": {
                "created": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReconciliationItem"
                    }
                },
                "failures": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ImportFailure"
                    }
                }
            }
        },
        "domain.SyncResult": {
            "type": "object",
            "properties": {
                "inserted": {
                    "type": "integer"
                },
                "removed": {
                    "type": "integer"
                },
                "released": {
                    "type": "integer"
                },
                "kept": {
                    "type": "integer"
                },
                "bookBalance": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.AccountBalanceResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "asOf": {
                    "type": "string",
                    "format": "date-time"
                },
                "balance": {
                    "type": "string",
                    "example": "0.00"
                },
                "balanceDisplay": {
                    "type": "string"
                },
                "rollup": {
                    "type": "boolean"
                }
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "parentAccountID": {
                    "type": "string"
                },
                "level": {
                    "type": "integer"
                },
                "normalBalance": {
                    "type": "string"
                },
                "allowPosting": {
                    "type": "boolean"
                },
                "balance": {
                    "type": "string",
                    "example": "0.00"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.AccountTotalsResponse": {
            "type": "object",
            "properties": {
                "range": {
                    "$ref": "#/definitions/domain.DateRange"
                },
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AccountTotal"
                    }
                }
            }
        },
        "dto.ChartImportResponse": {
            "type": "object",
            "properties": {
                "created": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountResponse"
                    }
                },
                "failures": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ImportFailure"
                    }
                }
            }
        },
        "dto.ChartImportRowRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "parentCode": {
                    "type": "string"
                },
                "allowPosting": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.CreateAccountRequest": {
            "type": "object",
            "required": [
                "code",
                "name",
                "accountType"
            ],
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "parentAccountID": {
                    "type": "string"
                },
                "allowPosting": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.EntryResponse": {
            "type": "object",
            "properties": {
                "entryID": {
                    "type": "string"
                },
                "entryNumber": {
                    "type": "string"
                },
                "entryType": {
                    "type": "string"
                },
                "entryDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "totalDebit": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalCredit": {
                    "type": "string",
                    "example": "0.00"
                },
                "version": {
                    "type": "integer"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineResponse"
                    }
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.EntryTransitionRequest": {
            "type": "object",
            "properties": {
                "expectedVersion": {
                    "type": "integer"
                }
            }
        },
        "dto.ImportChartRequest": {
            "type": "object",
            "required": [
                "mode",
                "rows"
            ],
            "properties": {
                "mode": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ChartImportRowRequest"
                    }
                }
            }
        },
        "dto.ImportStatementRequest": {
            "type": "object",
            "required": [
                "movements"
            ],
            "properties": {
                "movements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.StatementMovementRequest"
                    }
                }
            }
        },
        "dto.JournalLineRequest": {
            "type": "object",
            "required": [
                "accountID"
            ],
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "debitAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "creditAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.LedgerPageResponse": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "openingBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.LedgerRow"
                    }
                },
                "nextToken": {
                    "type": "string"
                },
                "openingBalanceDisplay": {
                    "type": "string"
                }
            }
        },
        "dto.LineResponse": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "lineNumber": {
                    "type": "integer"
                },
                "accountID": {
                    "type": "string"
                },
                "debitAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "creditAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AccountResponse"
                    }
                }
            }
        },
        "dto.ListEntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.EntryResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.MatchItemsRequest": {
            "type": "object",
            "required": [
                "bookItemID",
                "bankItemID"
            ],
            "properties": {
                "bookItemID": {
                    "type": "string"
                },
                "bankItemID": {
                    "type": "string"
                }
            }
        },
        "dto.OpenSessionRequest": {
            "type": "object",
            "required": [
                "bankAccountID",
                "asOfDate"
            ],
            "properties": {
                "bankAccountID": {
                    "type": "string"
                },
                "asOfDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "periodStart": {
                    "type": "string",
                    "format": "date-time"
                },
                "statementOpeningBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "statementClosingBalance": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.PostEntryRequest": {
            "type": "object",
            "required": [
                "entryDate",
                "description",
                "lines"
            ],
            "properties": {
                "entryType": {
                    "type": "string"
                },
                "entryDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalLineRequest"
                    }
                }
            }
        },
        "dto.RebuildBalancesResponse": {
            "type": "object",
            "properties": {
                "accountsUpdated": {
                    "type": "integer"
                }
            }
        },
        "dto.RegisterBankAccountRequest": {
            "type": "object",
            "required": [
                "name",
                "chartAccountID"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "bankName": {
                    "type": "string"
                },
                "accountNumber": {
                    "type": "string"
                },
                "chartAccountID": {
                    "type": "string"
                }
            }
        },
        "dto.ReparentAccountRequest": {
            "type": "object",
            "properties": {
                "parentAccountID": {
                    "type": "string"
                }
            }
        },
        "dto.ReplaceLinesRequest": {
            "type": "object",
            "required": [
                "lines"
            ],
            "properties": {
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalLineRequest"
                    }
                },
                "expectedVersion": {
                    "type": "integer"
                }
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "sessionID": {
                    "type": "string"
                },
                "workplaceID": {
                    "type": "string"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "periodStart": {
                    "type": "string",
                    "format": "date-time"
                },
                "asOfDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "statementOpeningBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "statementClosingBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "bookBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReconciliationItem"
                    }
                }
            }
        },
        "dto.StatementMovementRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "direction": {
                    "type": "string"
                },
                "movementType": {
                    "type": "string"
                }
            }
        },
        "dto.SummaryResponse": {
            "type": "object",
            "properties": {
                "sessionID": {
                    "type": "string"
                },
                "bookBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "statementOpeningBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "statementClosingBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalReconciled": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalOutstandingDeposits": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalOutstandingWithdrawals": {
                    "type": "string",
                    "example": "0.00"
                },
                "unrecordedBankCredits": {
                    "type": "string",
                    "example": "0.00"
                },
                "unrecordedBankDebits": {
                    "type": "string",
                    "example": "0.00"
                },
                "reconciledProjectedClosing": {
                    "type": "string",
                    "example": "0.00"
                },
                "difference": {
                    "type": "string",
                    "example": "0.00"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "isFullyReconciled": {
                    "type": "boolean"
                },
                "outstandingItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReconciliationItem"
                    }
                },
                "display": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "range": {
                    "$ref": "#/definitions/domain.DateRange"
                },
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AccountTotal"
                    }
                },
                "totalDebit": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalCredit": {
                    "type": "string",
                    "example": "0.00"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "totalDebitDisplay": {
                    "type": "string"
                },
                "totalCreditDisplay": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "rule": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Core API",
	Description:      "Double-entry ledger: chart of accounts, journal, ledger projections and bank reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
