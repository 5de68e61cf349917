// Package docs registers the Swagger document served under /swagger.
// Regenerate with: swag init -g main.go
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
        "/admin/companies": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List companies",
                "parameters": [
                    {
                        "description": "Name search",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Verified filter",
                        "name": "verified",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.CompanyListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/companies/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get a company",
                "parameters": [
                    {
                        "description": "Company ID",
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
                            "$ref": "#/definitions/models.CompanyListing"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a company",
                "parameters": [
                    {
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Company",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
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
                "tags": [
                    "admin"
                ],
                "summary": "Delete a company",
                "parameters": [
                    {
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/admin/companies/{id}/unverify": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Clear a company's verified mark",
                "parameters": [
                    {
                        "description": "Company ID",
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
                            "$ref": "#/definitions/models.Company"
                        }
                    }
                }
            }
        },
        "/admin/companies/{id}/verify": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Mark a company verified",
                "parameters": [
                    {
                        "description": "Company ID",
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
                            "$ref": "#/definitions/models.Company"
                        }
                    }
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Platform counters and trending searches",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AdminDashboardResponse"
                        }
                    }
                }
            }
        },
        "/admin/offers": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List every offer",
                "parameters": [
                    {
                        "description": "Status filter",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Company filter",
                        "name": "company_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Title search",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.JobOfferListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/offers/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get an offer",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOfferListing"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update an offer",
                "parameters": [
                    {
                        "description": "Offer ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Offer",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OfferRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JobOffer"
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
                "tags": [
                    "admin"
                ],
                "summary": "Delete an offer",
                "parameters": [
                    {
                        "description": "Offer ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/admin/offers/{id}/activate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Make an offer visible again",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    }
                }
            }
        },
        "/admin/offers/{id}/deactivate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Hide an offer from the public board",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    }
                }
            }
        },
        "/admin/reports": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List reports",
                "parameters": [
                    {
                        "description": "Status filter",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.Report"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/reports/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get a report",
                "parameters": [
                    {
                        "description": "Report ID",
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
                            "$ref": "#/definitions/models.Report"
                        }
                    }
                }
            }
        },
        "/admin/reports/{id}/status": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Resolve or reopen a report",
                "parameters": [
                    {
                        "description": "Report ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReportStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Report"
                        }
                    }
                }
            }
        },
        "/admin/reviews": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Moderation queue",
                "parameters": [
                    {
                        "description": "pending, approved or rejected",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.ReviewListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/reviews/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Delete a review",
                "parameters": [
                    {
                        "description": "Review ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/admin/reviews/{id}/approve": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The author is notified.",
                "tags": [
                    "admin"
                ],
                "summary": "Approve a review",
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/models.Review"
                        }
                    }
                }
            }
        },
        "/admin/reviews/{id}/reject": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Reject a review",
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/models.Review"
                        }
                    }
                }
            }
        },
        "/admin/sectors": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Create a sector",
                "parameters": [
                    {
                        "description": "Sector",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SectorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Sector"
                        }
                    }
                }
            }
        },
        "/admin/sectors/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a sector",
                "parameters": [
                    {
                        "description": "Sector ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Sector",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SectorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Sector"
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
                "tags": [
                    "admin"
                ],
                "summary": "Delete a sector",
                "parameters": [
                    {
                        "description": "Sector ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "409": {
                        "description": "Sector in use",
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
        "/admin/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Platform activity per day",
                "parameters": [
                    {
                        "description": "7days, 30days or year",
                        "name": "period",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AdminStatsResponse"
                        }
                    }
                }
            }
        },
        "/admin/suggestions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List all suggestions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.Suggestion"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Create a suggestion",
                "parameters": [
                    {
                        "description": "Suggestion",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SuggestionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Suggestion"
                        }
                    }
                }
            }
        },
        "/admin/suggestions/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a suggestion",
                "parameters": [
                    {
                        "description": "Suggestion ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Suggestion",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SuggestionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Suggestion"
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
                "tags": [
                    "admin"
                ],
                "summary": "Delete a suggestion",
                "parameters": [
                    {
                        "description": "Suggestion ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/admin/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "description": "Role filter",
                        "name": "role",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Name or email",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Banned filter",
                        "name": "banned",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.User"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/users/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "description": "User ID",
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
                            "$ref": "#/definitions/models.User"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a user",
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AdminUserUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
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
                "tags": [
                    "admin"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "409": {
                        "description": "Cannot delete yourself",
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
        "/admin/users/{id}/ban": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Live sessions stop working immediately.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Ban a user",
                "parameters": [
                    {
                        "description": "User ID",
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
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "409": {
                        "description": "Cannot ban yourself",
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
        "/admin/users/{id}/restore": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Lift a ban",
                "parameters": [
                    {
                        "description": "User ID",
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
                            "$ref": "#/definitions/models.User"
                        }
                    }
                }
            }
        },
        "/applications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "List the caller's applications",
                "parameters": [
                    {
                        "description": "Status filter",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.ApplicationListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The CV defaults to the one on the student profile.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Apply to a published offer",
                "parameters": [
                    {
                        "description": "Application",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ApplyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    },
                    "409": {
                        "description": "Already applied",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/applications/spontaneous": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Send a spontaneous application to a company",
                "parameters": [
                    {
                        "description": "Application",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SpontaneousApplicationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    }
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Get one of the caller's applications",
                "parameters": [
                    {
                        "description": "Application ID",
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
                            "$ref": "#/definitions/models.ApplicationListing"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "tags": [
                    "applications"
                ],
                "summary": "Withdraw an application",
                "parameters": [
                    {
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Withdrawn"
                    },
                    "409": {
                        "description": "Application already accepted",
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
        "/auth/email/resend": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Resend the verification email",
                "responses": {
                    "202": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "409": {
                        "description": "Already verified",
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
        "/auth/email/verify/{id}/{hash}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Verify the caller's email address",
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Email hash",
                        "name": "hash",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expiry timestamp",
                        "name": "expires",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Link signature",
                        "name": "signature",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "403": {
                        "description": "Invalid link",
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
        "/auth/forgot-password": {
            "post": {
                "description": "Always answers 200 so account existence is not disclosed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Request a password reset link",
                "parameters": [
                    {
                        "description": "Email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ForgotPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Authenticates with email and password. The token is also set as a session cookie.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Account banned",
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
        "/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revokes the current token and clears the session cookie.",
                "tags": [
                    "auth"
                ],
                "summary": "Log out",
                "responses": {
                    "204": {
                        "description": "Logged out"
                    },
                    "401": {
                        "description": "Unauthorized",
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
        "/auth/register": {
            "post": {
                "description": "Creates a student or company account and returns a session token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new account",
                "parameters": [
                    {
                        "description": "Account details",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed body",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Reset a password with an emailed token",
                "parameters": [
                    {
                        "description": "Token and new password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ResetPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "422": {
                        "description": "Invalid token",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/auth/social/{provider}": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Start social login",
                "parameters": [
                    {
                        "description": "google or linkedin",
                        "name": "provider",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "302": {
                        "description": "Redirect to the provider"
                    },
                    "404": {
                        "description": "Unknown provider",
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
        "/auth/social/{provider}/callback": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Finish social login",
                "parameters": [
                    {
                        "description": "google or linkedin",
                        "name": "provider",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Authorization code",
                        "name": "code",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "State issued by the redirect",
                        "name": "state",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "401": {
                        "description": "Unknown state or rejected code",
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
        "/bookmarks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookmarks"
                ],
                "summary": "List bookmarks",
                "parameters": [
                    {
                        "description": "company or job_offer",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.BookmarkListing"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "An existing bookmark is returned with 200.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookmarks"
                ],
                "summary": "Bookmark a company or offer",
                "parameters": [
                    {
                        "description": "Target",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BookmarkRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Bookmark"
                        }
                    },
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Bookmark"
                        }
                    },
                    "404": {
                        "description": "Target not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "bookmarks"
                ],
                "summary": "Remove a bookmark",
                "parameters": [
                    {
                        "description": "Target",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BookmarkRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Removed"
                    },
                    "404": {
                        "description": "Not bookmarked",
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
        "/bookmarks/toggle": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookmarks"
                ],
                "summary": "Toggle a bookmark",
                "parameters": [
                    {
                        "description": "Target",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BookmarkRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ToggleBookmarkResponse"
                        }
                    }
                }
            }
        },
        "/companies": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "List companies",
                "parameters": [
                    {
                        "description": "Sector filter",
                        "name": "sector_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "City filter",
                        "name": "city_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Size bracket",
                        "name": "size",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.CompanyListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Get a company by slug",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CompanyListing"
                        }
                    },
                    "404": {
                        "description": "Not found",
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
        "/companies/{slug}/hr-contacts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Company HR contacts",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
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
                                "$ref": "#/definitions/models.HRContact"
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}/media": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Company media gallery",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
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
                                "$ref": "#/definitions/models.CompanyMedia"
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}/offers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Open offers of a company",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.JobOfferListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}/org": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Company organisation chart",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
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
                                "$ref": "#/definitions/models.OrgNode"
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}/publications": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Published company posts",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.Publication"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/companies/{slug}/publications/{pub}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "One published company post",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Publication ID",
                        "name": "pub",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Publication"
                        }
                    }
                }
            }
        },
        "/companies/{slug}/reviews": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Approved reviews of a company",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.ReviewListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "One review per student and company. New reviews wait for moderation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Review a company",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Review",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Review"
                        }
                    },
                    "409": {
                        "description": "Already reviewed",
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
        "/companies/{slug}/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Public company statistics",
                "parameters": [
                    {
                        "description": "Company slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/storage.CompanyStats"
                        }
                    }
                }
            }
        },
        "/conversations": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "List the caller's conversations",
                "parameters": [
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.ConversationListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Open a conversation with a company",
                "parameters": [
                    {
                        "description": "Conversation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.StartConversationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ConversationListing"
                        }
                    },
                    "422": {
                        "description": "Unknown or own company",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/conversations/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Get a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
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
                            "$ref": "#/definitions/models.ConversationListing"
                        }
                    },
                    "403": {
                        "description": "Not a participant",
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
        "/conversations/{id}/messages": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "List messages, newest first",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/dto.ChatMessageResponse"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Accepts JSON or a multipart form with an optional attachment file.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Send a message",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Message body",
                        "name": "body",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Attachment",
                        "name": "attachment",
                        "in": "formData",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ChatMessageResponse"
                        }
                    },
                    "409": {
                        "description": "Conversation not open",
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
        "/conversations/{id}/read": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Mark the other side's messages as read",
                "parameters": [
                    {
                        "description": "Conversation ID",
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
                            "$ref": "#/definitions/dto.MarkedResponse"
                        }
                    }
                }
            }
        },
        "/conversations/{id}/status": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Close or archive a conversation",
                "parameters": [
                    {
                        "description": "Conversation ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ConversationStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Conversation"
                        }
                    },
                    "409": {
                        "description": "Invalid transition",
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
        "/health": {
            "get": {
                "description": "Reports the state of the database and Redis. Answers 503 when either is down.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "A dependency is down",
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
        "/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Get the caller's account",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Update the caller's account",
                "parameters": [
                    {
                        "description": "Account fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "409": {
                        "description": "Email taken",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Delete the caller's account",
                "parameters": [
                    {
                        "description": "Password confirmation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DeleteAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/me/avatar": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Upload an avatar",
                "parameters": [
                    {
                        "description": "Image",
                        "name": "avatar",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "422": {
                        "description": "Not an image or too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/me/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Role specific dashboard of the caller",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MeDashboardResponse"
                        }
                    }
                }
            }
        },
        "/me/password": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Change the caller's password",
                "parameters": [
                    {
                        "description": "Passwords",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ChangePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Changed"
                    },
                    "422": {
                        "description": "Wrong current password",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/me/student": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Get the caller's student profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StudentProfile"
                        }
                    },
                    "403": {
                        "description": "Not a student",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Update the caller's student profile",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateStudentProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StudentProfile"
                        }
                    }
                }
            }
        },
        "/me/student/cv": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "PDF only, bounded in size and page count.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "me"
                ],
                "summary": "Upload a CV",
                "parameters": [
                    {
                        "description": "PDF",
                        "name": "cv",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StudentProfile"
                        }
                    },
                    "422": {
                        "description": "Not a PDF, too large or too many pages",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/my-company": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Get the caller's company",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
                        }
                    },
                    "404": {
                        "description": "No company registered",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Register the caller's company",
                "parameters": [
                    {
                        "description": "Company",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
                        }
                    },
                    "409": {
                        "description": "Company already registered",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Update the caller's company",
                "parameters": [
                    {
                        "description": "Company",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Delete the caller's company",
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/analytics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Daily company metrics",
                "parameters": [
                    {
                        "description": "7days, 30days or year",
                        "name": "period",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyAnalyticsResponse"
                        }
                    }
                }
            }
        },
        "/my-company/applications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "company-applications"
                ],
                "summary": "List applications received by the company",
                "parameters": [
                    {
                        "description": "Status filter",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Offer filter",
                        "name": "offer_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.ApplicationListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/my-company/applications/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "company-applications"
                ],
                "summary": "Application counts by status and by offer",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ApplicationStatsResponse"
                        }
                    }
                }
            }
        },
        "/my-company/applications/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "company-applications"
                ],
                "summary": "Get a received application",
                "parameters": [
                    {
                        "description": "Application ID",
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
                            "$ref": "#/definitions/models.ApplicationListing"
                        }
                    }
                }
            }
        },
        "/my-company/applications/{id}/notes": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "company-applications"
                ],
                "summary": "Set the private HR notes of an application",
                "parameters": [
                    {
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Notes",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ApplicationNotesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    }
                }
            }
        },
        "/my-company/applications/{id}/status": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "accepted and rejected are terminal. The student is notified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "company-applications"
                ],
                "summary": "Move an application through the hiring pipeline",
                "parameters": [
                    {
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "New status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ApplicationStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    },
                    "409": {
                        "description": "Invalid transition",
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
        "/my-company/cover": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Upload the company cover image",
                "parameters": [
                    {
                        "description": "Image",
                        "name": "cover",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
                        }
                    }
                }
            }
        },
        "/my-company/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Company dashboard counters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyDashboardResponse"
                        }
                    }
                }
            }
        },
        "/my-company/hr-contacts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "List HR contacts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.HRContact"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The first contact of a company becomes primary.",
                "tags": [
                    "my-company"
                ],
                "summary": "Add an HR contact",
                "parameters": [
                    {
                        "description": "Contact",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.HRContactRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HRContact"
                        }
                    }
                }
            }
        },
        "/my-company/hr-contacts/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Get an HR contact",
                "parameters": [
                    {
                        "description": "Contact ID",
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
                            "$ref": "#/definitions/models.HRContact"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Update an HR contact",
                "parameters": [
                    {
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Contact",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.HRContactRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HRContact"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Delete an HR contact",
                "parameters": [
                    {
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/hr-contacts/{id}/primary": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Make a contact the primary one",
                "parameters": [
                    {
                        "description": "Contact ID",
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
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.HRContact"
                            }
                        }
                    }
                }
            }
        },
        "/my-company/logo": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Upload the company logo",
                "parameters": [
                    {
                        "description": "Image",
                        "name": "logo",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Company"
                        }
                    }
                }
            }
        },
        "/my-company/media": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "List the company media",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.CompanyMedia"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Add an image, video or 3D tour",
                "parameters": [
                    {
                        "description": "Media",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MediaRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CompanyMedia"
                        }
                    }
                }
            }
        },
        "/my-company/media/reorder": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "ids must list every media item of the company exactly once.",
                "tags": [
                    "my-company"
                ],
                "summary": "Reorder the media gallery",
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReorderMediaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.CompanyMedia"
                            }
                        }
                    },
                    "422": {
                        "description": "Ids do not match the gallery",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/my-company/media/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Update a media item",
                "parameters": [
                    {
                        "description": "Media ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Media",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MediaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CompanyMedia"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Delete a media item",
                "parameters": [
                    {
                        "description": "Media ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/offers": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "List the company's offers",
                "parameters": [
                    {
                        "description": "draft, published or closed",
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.JobOfferListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Create a draft offer",
                "parameters": [
                    {
                        "description": "Offer",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OfferRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    },
                    "422": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/my-company/offers/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Get one of the company's offers",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOfferListing"
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
                "description": "Closed offers can no longer be edited.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Update an offer",
                "parameters": [
                    {
                        "description": "Offer ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Offer",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OfferRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    },
                    "409": {
                        "description": "Offer is closed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "tags": [
                    "my-offers"
                ],
                "summary": "Delete an offer",
                "parameters": [
                    {
                        "description": "Offer ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/offers/{id}/close": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Close a published offer",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    },
                    "409": {
                        "description": "Offer is not published",
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
        "/my-company/offers/{id}/duplicate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Copy an offer into a new draft",
                "parameters": [
                    {
                        "description": "Offer ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    }
                }
            }
        },
        "/my-company/offers/{id}/publish": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-offers"
                ],
                "summary": "Publish a draft offer",
                "parameters": [
                    {
                        "description": "Offer ID",
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
                            "$ref": "#/definitions/models.JobOffer"
                        }
                    },
                    "409": {
                        "description": "Offer is not a draft",
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
        "/my-company/org": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Get the organisation chart",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.OrgNode"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Add an org chart node",
                "parameters": [
                    {
                        "description": "Node",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OrgNodeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OrgNode"
                        }
                    }
                }
            }
        },
        "/my-company/org/reorder": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Move org chart nodes",
                "parameters": [
                    {
                        "description": "New parents and positions",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReorderOrgRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.OrgNode"
                            }
                        }
                    },
                    "422": {
                        "description": "Unknown node or cycle",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/my-company/org/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Update an org chart node",
                "parameters": [
                    {
                        "description": "Node ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Node",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OrgNodeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OrgNode"
                        }
                    },
                    "422": {
                        "description": "Unknown parent or cycle",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
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
                "description": "Children move up to the deleted node's parent.",
                "tags": [
                    "my-company"
                ],
                "summary": "Delete an org chart node",
                "parameters": [
                    {
                        "description": "Node ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/publications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "List all company publications, drafts included",
                "parameters": [
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.Publication"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Create a draft publication",
                "parameters": [
                    {
                        "description": "Publication",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PublicationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Publication"
                        }
                    }
                }
            }
        },
        "/my-company/publications/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Get a publication",
                "parameters": [
                    {
                        "description": "Publication ID",
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
                            "$ref": "#/definitions/models.Publication"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Update a publication",
                "parameters": [
                    {
                        "description": "Publication ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Publication",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PublicationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Publication"
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
                "tags": [
                    "my-company"
                ],
                "summary": "Delete a publication",
                "parameters": [
                    {
                        "description": "Publication ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/my-company/publications/{id}/publish": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Publish a publication",
                "parameters": [
                    {
                        "description": "Publication ID",
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
                            "$ref": "#/definitions/models.Publication"
                        }
                    }
                }
            }
        },
        "/my-company/publications/{id}/unpublish": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "my-company"
                ],
                "summary": "Unpublish a publication",
                "parameters": [
                    {
                        "description": "Publication ID",
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
                            "$ref": "#/definitions/models.Publication"
                        }
                    }
                }
            }
        },
        "/notifications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "List the caller's notifications",
                "parameters": [
                    {
                        "description": "Only unread",
                        "name": "unread",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/dto.NotificationResponse"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/notifications/read-all": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Mark every notification read",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MarkedResponse"
                        }
                    }
                }
            }
        },
        "/notifications/unread-count": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Count unread notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CountResponse"
                        }
                    }
                }
            }
        },
        "/notifications/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Delete a notification",
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Mark a notification read",
                "parameters": [
                    {
                        "description": "Notification ID",
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
                            "$ref": "#/definitions/dto.NotificationResponse"
                        }
                    }
                }
            }
        },
        "/offers": {
            "get": {
                "description": "Only published offers that an admin has not deactivated are listed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "offers"
                ],
                "summary": "List published job offers",
                "parameters": [
                    {
                        "description": "job or internship",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Sector filter",
                        "name": "sector_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "City filter",
                        "name": "city_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Title search",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.JobOfferListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/offers/{slug}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "offers"
                ],
                "summary": "Get a published offer",
                "parameters": [
                    {
                        "description": "Offer slug",
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JobOfferListing"
                        }
                    },
                    "404": {
                        "description": "Not found",
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
        "/offers/{slug}/similar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "offers"
                ],
                "summary": "Offers similar to the given one",
                "parameters": [
                    {
                        "description": "Offer slug",
                        "name": "slug",
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
                                "$ref": "#/definitions/models.JobOfferListing"
                            }
                        }
                    }
                }
            }
        },
        "/ref/cities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "List cities",
                "parameters": [
                    {
                        "description": "Country filter",
                        "name": "country_id",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.City"
                            }
                        }
                    }
                }
            }
        },
        "/ref/cities/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "Get a city",
                "parameters": [
                    {
                        "description": "City ID",
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
                            "$ref": "#/definitions/models.City"
                        }
                    },
                    "404": {
                        "description": "Not found",
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
        "/ref/countries": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "List countries",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Country"
                            }
                        }
                    }
                }
            }
        },
        "/ref/sectors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "List sectors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Sector"
                            }
                        }
                    }
                }
            }
        },
        "/ref/sectors/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "Get a sector",
                "parameters": [
                    {
                        "description": "Sector ID",
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
                            "$ref": "#/definitions/models.Sector"
                        }
                    }
                }
            }
        },
        "/ref/skills": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reference"
                ],
                "summary": "List skills",
                "parameters": [
                    {
                        "description": "Name filter",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Skill"
                            }
                        }
                    }
                }
            }
        },
        "/reports": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Report content to the moderators",
                "parameters": [
                    {
                        "description": "Report",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReportRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Report"
                        }
                    },
                    "404": {
                        "description": "Target not found",
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
        "/reviews/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The review goes back to moderation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Edit your review",
                "parameters": [
                    {
                        "description": "Review ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Review",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Review"
                        }
                    },
                    "403": {
                        "description": "Not the author",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "tags": [
                    "reviews"
                ],
                "summary": "Delete your review",
                "parameters": [
                    {
                        "description": "Review ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/reviews/{id}/vote": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Toggle a helpful vote",
                "parameters": [
                    {
                        "description": "Review ID",
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
                            "$ref": "#/definitions/dto.VoteResponse"
                        }
                    },
                    "403": {
                        "description": "Own review",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
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
        "/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "search"
                ],
                "summary": "Search companies",
                "parameters": [
                    {
                        "description": "Search text",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "name, sector, location or mixed",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Sector filter",
                        "name": "sector_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "City filter",
                        "name": "city_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.CompanyListing"
                                    }
                                },
                                "meta": {
                                    "$ref": "#/definitions/pagination.Meta"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/search/autocomplete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "search"
                ],
                "summary": "Company name completions",
                "parameters": [
                    {
                        "description": "Prefix",
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
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/suggestions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "search"
                ],
                "summary": "Curated suggestions near a city",
                "parameters": [
                    {
                        "description": "City",
                        "name": "city_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Max results (1-50)",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Suggestion"
                            }
                        }
                    }
                }
            }
        },
        "/suggestions/trending": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "search"
                ],
                "summary": "Trending search terms",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.TrendingTerm"
                            }
                        }
                    }
                }
            }
        },
        "/track/view": {
            "post": {
                "description": "A viewer counts once per target per hour. Authentication is optional.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analytics"
                ],
                "summary": "Record a page view",
                "parameters": [
                    {
                        "description": "Target",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TrackViewRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrackViewResponse"
                        }
                    },
                    "404": {
                        "description": "Target not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AdminDashboardResponse": {
            "type": "object",
            "properties": {
                "counts": {
                    "$ref": "#/definitions/storage.PlatformCounts"
                },
                "trending_searches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.TrendingTerm"
                    }
                }
            }
        },
        "dto.AdminStatsResponse": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "signups": {
                    "$ref": "#/definitions/dto.Series"
                },
                "applications": {
                    "$ref": "#/definitions/dto.Series"
                },
                "offers_published": {
                    "$ref": "#/definitions/dto.Series"
                }
            }
        },
        "dto.AdminUserUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "role"
            ]
        },
        "dto.ApplicationNotesRequest": {
            "type": "object",
            "properties": {
                "notes": {
                    "type": "string"
                }
            }
        },
        "dto.ApplicationStatsResponse": {
            "type": "object",
            "properties": {
                "by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LabelCount"
                    }
                },
                "by_offer": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LabelCount"
                    }
                }
            }
        },
        "dto.ApplicationStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "dto.ApplyRequest": {
            "type": "object",
            "properties": {
                "job_offer_id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "cover_letter": {
                    "type": "string"
                },
                "cv_path": {
                    "type": "string"
                }
            },
            "required": [
                "job_offer_id",
                "company_id"
            ]
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/models.User"
                },
                "token": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                }
            }
        },
        "dto.BookmarkRequest": {
            "type": "object",
            "properties": {
                "bookmarkable_type": {
                    "type": "string"
                },
                "bookmarkable_id": {
                    "type": "integer"
                }
            },
            "required": [
                "bookmarkable_type",
                "bookmarkable_id"
            ]
        },
        "dto.ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "current_password": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "password_confirmation": {
                    "type": "string"
                }
            },
            "required": [
                "current_password",
                "password",
                "password_confirmation"
            ]
        },
        "dto.ChatMessageResponse": {
            "type": "object",
            "properties": {
                "created_ago": {
                    "type": "string"
                }
            }
        },
        "dto.CompanyAnalyticsResponse": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "profile_views": {
                    "$ref": "#/definitions/dto.Series"
                },
                "offer_views": {
                    "$ref": "#/definitions/dto.Series"
                },
                "applications": {
                    "$ref": "#/definitions/dto.Series"
                },
                "bookmarks": {
                    "$ref": "#/definitions/dto.Series"
                }
            }
        },
        "dto.CompanyDashboardResponse": {
            "type": "object",
            "properties": {
                "company": {
                    "$ref": "#/definitions/models.Company"
                },
                "offers_by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LabelCount"
                    }
                },
                "applications_by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LabelCount"
                    }
                },
                "views_last_30_days": {
                    "type": "integer"
                },
                "rating_average": {
                    "type": "number"
                },
                "reviews_count": {
                    "type": "integer"
                },
                "unread_conversations": {
                    "type": "integer"
                }
            }
        },
        "dto.CompanyRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "size": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "founded_year": {
                    "type": "integer"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.ConversationStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "dto.CountResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                }
            }
        },
        "dto.DeleteAccountRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "dto.ForgotPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "email"
            ]
        },
        "dto.HRContactRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role_title": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "dto.MarkedResponse": {
            "type": "object",
            "properties": {
                "updated": {
                    "type": "integer"
                }
            }
        },
        "dto.MeDashboardResponse": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "unread_notifications": {
                    "type": "integer"
                },
                "student": {
                    "$ref": "#/definitions/dto.StudentDashboardResponse"
                },
                "company": {
                    "$ref": "#/definitions/dto.CompanyDashboardResponse"
                }
            }
        },
        "dto.MediaRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "caption": {
                    "type": "string"
                }
            },
            "required": [
                "kind",
                "url"
            ]
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.NotificationResponse": {
            "type": "object",
            "properties": {
                "created_ago": {
                    "type": "string"
                }
            }
        },
        "dto.OfferRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "salary_min": {
                    "type": "integer"
                },
                "salary_max": {
                    "type": "integer"
                },
                "closes_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "skill_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            },
            "required": [
                "title",
                "description",
                "type"
            ]
        },
        "dto.OrgNodePosition": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "parent_id": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                }
            },
            "required": [
                "id"
            ]
        },
        "dto.OrgNodeRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "parent_id": {
                    "type": "integer"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.PublicationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "body"
            ]
        },
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "password_confirmation": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "password",
                "password_confirmation",
                "role"
            ]
        },
        "dto.ReorderMediaRequest": {
            "type": "object",
            "properties": {
                "ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            },
            "required": [
                "ids"
            ]
        },
        "dto.ReorderOrgRequest": {
            "type": "object",
            "properties": {
                "nodes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.OrgNodePosition"
                    }
                }
            },
            "required": [
                "nodes"
            ]
        },
        "dto.ReportRequest": {
            "type": "object",
            "properties": {
                "reportable_type": {
                    "type": "string"
                },
                "reportable_id": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                }
            },
            "required": [
                "reportable_type",
                "reportable_id",
                "reason"
            ]
        },
        "dto.ReportStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "admin_note": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "dto.ResetPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "password_confirmation": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "token",
                "password",
                "password_confirmation"
            ]
        },
        "dto.ReviewRequest": {
            "type": "object",
            "properties": {
                "rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                }
            },
            "required": [
                "rating",
                "title",
                "body"
            ]
        },
        "dto.SectorRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.Series": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DailyCount"
                    }
                }
            }
        },
        "dto.SpontaneousApplicationRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "cover_letter": {
                    "type": "string"
                },
                "cv_path": {
                    "type": "string"
                }
            },
            "required": [
                "company_id"
            ]
        },
        "dto.StartConversationRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "subject": {
                    "type": "string"
                }
            },
            "required": [
                "company_id",
                "subject"
            ]
        },
        "dto.StudentDashboardResponse": {
            "type": "object",
            "properties": {
                "applications_by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LabelCount"
                    }
                },
                "bookmarks": {
                    "type": "integer"
                },
                "unread_notifications": {
                    "type": "integer"
                },
                "recommended_offers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.JobOfferListing"
                    }
                }
            }
        },
        "dto.SuggestionRequest": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "company_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "label"
            ]
        },
        "dto.ToggleBookmarkResponse": {
            "type": "object",
            "properties": {
                "bookmarked": {
                    "type": "boolean"
                }
            }
        },
        "dto.TrackViewRequest": {
            "type": "object",
            "properties": {
                "viewable_type": {
                    "type": "string"
                },
                "viewable_id": {
                    "type": "integer"
                }
            },
            "required": [
                "viewable_type",
                "viewable_id"
            ]
        },
        "dto.TrackViewResponse": {
            "type": "object",
            "properties": {
                "counted": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateMeRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email"
            ]
        },
        "dto.UpdateStudentProfileRequest": {
            "type": "object",
            "properties": {
                "headline": {
                    "type": "string"
                },
                "school": {
                    "type": "string"
                },
                "degree": {
                    "type": "string"
                },
                "graduation_year": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "skill_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "linkedin_url": {
                    "type": "string"
                },
                "about": {
                    "type": "string"
                }
            }
        },
        "dto.VoteResponse": {
            "type": "object",
            "properties": {
                "voted": {
                    "type": "boolean"
                },
                "helpful_count": {
                    "type": "integer"
                }
            }
        },
        "models.Application": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "student_id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "job_offer_id": {
                    "type": "integer"
                },
                "cover_letter": {
                    "type": "string"
                },
                "cv_path": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_note": {
                    "type": "string"
                },
                "hr_notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.ApplicationListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "student_id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "job_offer_id": {
                    "type": "integer"
                },
                "cover_letter": {
                    "type": "string"
                },
                "cv_path": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_note": {
                    "type": "string"
                },
                "hr_notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "offer_title": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "student_name": {
                    "type": "string"
                },
                "student_email": {
                    "type": "string"
                }
            }
        },
        "models.Bookmark": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "bookmarkable_type": {
                    "type": "string"
                },
                "bookmarkable_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.BookmarkListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "bookmarkable_type": {
                    "type": "string"
                },
                "bookmarkable_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                }
            }
        },
        "models.City": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "country_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.Company": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "owner_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "size": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "founded_year": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "cover_path": {
                    "type": "string"
                },
                "verified_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.CompanyListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "owner_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "size": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "founded_year": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "cover_path": {
                    "type": "string"
                },
                "verified_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "sector_name": {
                    "type": "string"
                },
                "city_name": {
                    "type": "string"
                },
                "rating_average": {
                    "type": "number"
                },
                "reviews_count": {
                    "type": "integer"
                }
            }
        },
        "models.CompanyMedia": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "kind": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "caption": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Conversation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "student_id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "subject": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "last_message_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.ConversationListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "student_id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "subject": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "last_message_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "company_name": {
                    "type": "string"
                },
                "company_owner_id": {
                    "type": "integer"
                },
                "student_name": {
                    "type": "string"
                },
                "unread_count": {
                    "type": "integer"
                }
            }
        },
        "models.Country": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
            }
        },
        "models.DailyCount": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "string",
                    "format": "date-time"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.HRContact": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role_title": {
                    "type": "string"
                },
                "is_primary": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.JobOffer": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "salary_min": {
                    "type": "integer"
                },
                "salary_max": {
                    "type": "integer"
                },
                "skill_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "closes_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "published_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.JobOfferListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "sector_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "salary_min": {
                    "type": "integer"
                },
                "salary_max": {
                    "type": "integer"
                },
                "skill_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "closes_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "published_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "company_name": {
                    "type": "string"
                },
                "company_slug": {
                    "type": "string"
                },
                "company_logo_path": {
                    "type": "string"
                }
            }
        },
        "models.LabelCount": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.OrgNode": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "parent_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "children": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.OrgNode"
                    }
                }
            }
        },
        "models.Publication": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "published_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Report": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "reporter_id": {
                    "type": "integer"
                },
                "reportable_type": {
                    "type": "string"
                },
                "reportable_id": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "admin_note": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Review": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "author_id": {
                    "type": "integer"
                },
                "rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "helpful_count": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.ReviewListing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "author_id": {
                    "type": "integer"
                },
                "rating": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "helpful_count": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "author_name": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                }
            }
        },
        "models.Sector": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "models.Skill": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                }
            }
        },
        "models.StudentProfile": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "integer"
                },
                "headline": {
                    "type": "string"
                },
                "school": {
                    "type": "string"
                },
                "degree": {
                    "type": "string"
                },
                "graduation_year": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "skill_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "linkedin_url": {
                    "type": "string"
                },
                "about": {
                    "type": "string"
                },
                "cv_path": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Suggestion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "label": {
                    "type": "string"
                },
                "company_id": {
                    "type": "integer"
                },
                "city_id": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.TrendingTerm": {
            "type": "object",
            "properties": {
                "term": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "avatar_path": {
                    "type": "string"
                },
                "email_verified_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "banned_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "pagination.Meta": {
            "type": "object",
            "properties": {
                "current_page": {
                    "type": "integer"
                },
                "last_page": {
                    "type": "integer"
                },
                "per_page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "storage.CompanyStats": {
            "type": "object",
            "properties": {
                "rating_average": {
                    "type": "number"
                },
                "reviews_count": {
                    "type": "integer"
                },
                "active_offers": {
                    "type": "integer"
                },
                "total_views": {
                    "type": "integer"
                },
                "followers": {
                    "type": "integer"
                }
            }
        },
        "storage.PlatformCounts": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "integer"
                },
                "company_accounts": {
                    "type": "integer"
                },
                "admins": {
                    "type": "integer"
                },
                "banned_users": {
                    "type": "integer"
                },
                "companies": {
                    "type": "integer"
                },
                "verified_companies": {
                    "type": "integer"
                },
                "published_offers": {
                    "type": "integer"
                },
                "applications": {
                    "type": "integer"
                },
                "pending_reviews": {
                    "type": "integer"
                },
                "open_reports": {
                    "type": "integer"
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
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Professionals API",
	Description:      "Job and internship marketplace connecting students with companies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
