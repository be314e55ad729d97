// Package docs serves the OpenAPI document of the local control API. The
// document mirrors the swag annotations on the handlers in internal/api;
// regenerate it with `swag init -g cmd/server/main.go` after changing them.
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
        "/v1/buckets/selection": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Knowledge"
                ],
                "summary": "Choose the knowledge buckets used for grounding",
                "parameters": [
                    {
                        "description": "Bucket IDs",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SelectBucketsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.BucketSelectionResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Reload and list conversations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Conversation"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
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
                    "Conversations"
                ],
                "summary": "Create and select a conversation",
                "parameters": [
                    {
                        "description": "Optional title",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/api.CreateConversationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Conversation"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Search conversations",
                "parameters": [
                    {
                        "description": "Search text",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.ConversationSearchResult"
                            }
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}": {
            "delete": {
                "tags": [
                    "Conversations"
                ],
                "summary": "Delete a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/clone": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Clone a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Title of the copy",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/api.CloneConversationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Conversation"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/export": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Export a conversation as markdown",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Destination file",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.ExportConversationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/folder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Move a conversation into a folder",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Folder, null to remove",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdateFolderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/pinned": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Pin or unpin a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Pinned flag",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdatePinnedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/select": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Select a conversation and load its messages",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Message"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/tags": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Replace a conversation's tags",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Tags",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdateTagsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    }
                }
            }
        },
        "/v1/conversations/{conversationID}/title": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Conversations"
                ],
                "summary": "Rename a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "conversationID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "New title",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdateTitleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/license": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "License"
                ],
                "summary": "Get trial and activation state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.LicenseResponse"
                        }
                    }
                }
            }
        },
        "/v1/license/activate": {
            "post": {
                "description": "A rejected key or an unreachable license server is reported in the state's message; the status is returned either way.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "License"
                ],
                "summary": "Activate a license key",
                "parameters": [
                    {
                        "description": "License key",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.ActivateLicenseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.LicenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/license/deactivate": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "License"
                ],
                "summary": "Release this installation's activation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.LicenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/messages": {
            "post": {
                "description": "Appends the user message and starts a reply. Streamed chunks are delivered through the state stream.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Messages"
                ],
                "summary": "Send a message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SendMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Blocking reply received",
                        "schema": {
                            "$ref": "#/definitions/service.SendResult"
                        }
                    },
                    "202": {
                        "description": "Stream started",
                        "schema": {
                            "$ref": "#/definitions/service.SendResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/messages/compare": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Messages"
                ],
                "summary": "Answer the last user message with another model",
                "parameters": [
                    {
                        "description": "Provider and model",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/messages/last-user": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Messages"
                ],
                "summary": "Edit the last user message and get a new reply",
                "parameters": [
                    {
                        "description": "New content",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.EditMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/messages/regenerate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Messages"
                ],
                "summary": "Regenerate the last assistant reply",
                "parameters": [
                    {
                        "description": "Provider and model",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/messages/stop": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Messages"
                ],
                "summary": "Stop listening to the in-flight reply",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.CancelResponse"
                        }
                    }
                }
            }
        },
        "/v1/providers": {
            "get": {
                "description": "Lists every provider with its models and whether an API key is configured.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Providers"
                ],
                "summary": "List providers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.ProviderInfo"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/settings/api-keys/{provider}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Providers"
                ],
                "summary": "Store a provider API key",
                "parameters": [
                    {
                        "description": "Provider name",
                        "name": "provider",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "API key",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SetAPIKeyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Providers"
                ],
                "summary": "Remove a provider API key",
                "parameters": [
                    {
                        "description": "Provider name",
                        "name": "provider",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/state": {
            "get": {
                "description": "Returns a snapshot of conversations, messages, engine phase and the error slot.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "State"
                ],
                "summary": "Get engine state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/store.Snapshot"
                        }
                    }
                }
            }
        },
        "/v1/state/error": {
            "delete": {
                "tags": [
                    "State"
                ],
                "summary": "Clear the error slot",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/state/stream": {
            "get": {
                "description": "Sends a snapshot immediately and again after every change.",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "State"
                ],
                "summary": "Stream engine state",
                "responses": {
                    "200": {
                        "description": "Stream of snapshots",
                        "schema": {
                            "$ref": "#/definitions/store.Snapshot"
                        }
                    }
                }
            }
        },
        "/v1/transcriptions": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Audio"
                ],
                "summary": "Transcribe WAV audio",
                "parameters": [
                    {
                        "description": "Base64 WAV audio",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.TranscriptionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.TranscriptionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/turns": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "State"
                ],
                "summary": "Group the selected conversation into turns",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Turn"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.ActivateLicenseRequest": {
            "type": "object",
            "required": [
                "license_key"
            ],
            "properties": {
                "license_key": {
                    "type": "string"
                }
            }
        },
        "api.BucketSelectionResponse": {
            "type": "object",
            "properties": {
                "bucket_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.CancelResponse": {
            "type": "object",
            "properties": {
                "cancelled": {
                    "type": "boolean"
                }
            }
        },
        "api.CloneConversationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                }
            }
        },
        "api.CreateConversationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                }
            }
        },
        "api.EditMessageRequest": {
            "type": "object",
            "required": [
                "content",
                "provider"
            ],
            "properties": {
                "content": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                }
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "api.ExportConversationRequest": {
            "type": "object",
            "required": [
                "path"
            ],
            "properties": {
                "path": {
                    "type": "string"
                }
            }
        },
        "api.GenerateRequest": {
            "type": "object",
            "required": [
                "provider"
            ],
            "properties": {
                "provider": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                }
            }
        },
        "api.LicenseResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "$ref": "#/definitions/model.LicenseStatus"
                },
                "installed_at": {
                    "type": "string"
                },
                "grace_period_days": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "instance_id": {
                    "type": "string"
                },
                "activated_at": {
                    "type": "string"
                },
                "grace_days_remaining": {
                    "type": "integer"
                },
                "requires_activation": {
                    "type": "boolean"
                }
            }
        },
        "api.SelectBucketsRequest": {
            "type": "object",
            "properties": {
                "bucket_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.SendMessageRequest": {
            "type": "object",
            "required": [
                "content",
                "provider"
            ],
            "properties": {
                "content": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "blocking": {
                    "type": "boolean"
                }
            }
        },
        "api.SetAPIKeyRequest": {
            "type": "object",
            "required": [
                "api_key"
            ],
            "properties": {
                "api_key": {
                    "type": "string"
                }
            }
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "api.TranscriptionRequest": {
            "type": "object",
            "required": [
                "audio"
            ],
            "properties": {
                "audio": {
                    "type": "string"
                }
            }
        },
        "api.TranscriptionResponse": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "api.UpdateFolderRequest": {
            "type": "object",
            "properties": {
                "folder": {
                    "type": "string"
                }
            }
        },
        "api.UpdatePinnedRequest": {
            "type": "object",
            "required": [
                "pinned"
            ],
            "properties": {
                "pinned": {
                    "type": "boolean"
                }
            }
        },
        "api.UpdateTagsRequest": {
            "type": "object",
            "properties": {
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.UpdateTitleRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string"
                }
            }
        },
        "model.Conversation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "pinned": {
                    "type": "boolean"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "folder": {
                    "type": "string"
                }
            }
        },
        "model.ConversationSearchResult": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "snippet": {
                    "type": "string"
                },
                "pinned": {
                    "type": "boolean"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "model.LicenseStatus": {
            "type": "string",
            "enum": [
                "inactive",
                "checking",
                "active",
                "unverified",
                "error"
            ]
        },
        "model.Message": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "conversation_id": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "sources": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.SourceReference"
                    }
                }
            }
        },
        "model.Phase": {
            "type": "string",
            "enum": [
                "idle",
                "sending",
                "streaming",
                "generating"
            ]
        },
        "model.SourceReference": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "model.StreamingSession": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "message_id": {
                    "type": "string"
                },
                "accumulated_content": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "model.Turn": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/model.Message"
                },
                "assistants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Message"
                    }
                }
            }
        },
        "service.ModelInfo": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "max_tokens": {
                    "type": "integer"
                }
            }
        },
        "service.ProviderInfo": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "models": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.ModelInfo"
                    }
                },
                "configured": {
                    "type": "boolean"
                }
            }
        },
        "service.SendResult": {
            "type": "object",
            "properties": {
                "conversation_id": {
                    "type": "string"
                },
                "user_message_id": {
                    "type": "string"
                },
                "assistant_message_id": {
                    "type": "string"
                }
            }
        },
        "store.Snapshot": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "integer"
                },
                "conversations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Conversation"
                    }
                },
                "selected_conversation_id": {
                    "type": "string"
                },
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Message"
                    }
                },
                "phase": {
                    "$ref": "#/definitions/model.Phase"
                },
                "session": {
                    "$ref": "#/definitions/model.StreamingSession"
                },
                "error": {
                    "type": "string"
                },
                "selected_bucket_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8765",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "OmniChat Client API",
	Description:      "Local control API of the OmniChat conversation engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
