// Package docs registers the OpenAPI document served by the swagger UI at /swagger/.
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
        "/etc/accounts": {
            "get": {
                "description": "Lists accounts managed by the Mantis node with their balances",
                "produces": ["application/json"],
                "tags": ["etc"],
                "summary": "List accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AccountsResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/etc/balance": {
            "get": {
                "description": "Gets the latest balance of one account with the ETC/USD rate",
                "produces": ["application/json"],
                "tags": ["etc"],
                "summary": "Get account balance (USD = ETC * rate)",
                "parameters": [
                    {"type": "string", "description": "Account address (0x...)", "name": "account", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BalanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/etc/qr": {
            "get": {
                "description": "PNG QR code of the EIP-55 checksummed account address",
                "produces": ["image/png"],
                "tags": ["etc"],
                "summary": "Receive address QR code",
                "parameters": [
                    {"type": "string", "description": "Account address (0x...)", "name": "account", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/etc/sync": {
            "get": {
                "description": "Local and network block heights of the Mantis node (100/100 when synced)",
                "produces": ["application/json"],
                "tags": ["etc"],
                "summary": "Get node sync progress",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SyncProgress"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.AccountView": {
            "type": "object",
            "properties": {
                "balance": {"type": "string"},
                "etc": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "model.AccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/model.AccountView"}}
            }
        },
        "model.BalanceResponse": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "etc": {"type": "string"},
                "etc_amount_in_usd": {"type": "string"},
                "rate": {"type": "string"},
                "wei": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "model.SyncProgress": {
            "type": "object",
            "properties": {
                "localDifficulty": {"type": "integer"},
                "networkDifficulty": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ETC Wallet API",
	Description:      "Wallet API over a Mantis (Ethereum Classic) node",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
