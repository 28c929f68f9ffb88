// Package docs holds the OpenAPI description served under /swagger.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a guest or owner account",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.AuthResponse"}},
                    "400": {"description": "Validation failed"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a token pair",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.AuthResponse"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Rotate a refresh token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid token"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Revoke a refresh token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/change-password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Change password",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Current password incorrect"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.UserResponse"}}}
            }
        },
        "/profile/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Change password",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Current password incorrect"}}
            }
        },
        "/tags": {
            "get": {"tags": ["catalog"], "summary": "List tags", "responses": {"200": {"description": "OK"}}}
        },
        "/amenities": {
            "get": {"tags": ["catalog"], "summary": "List amenities", "responses": {"200": {"description": "OK"}}}
        },
        "/campingspots": {
            "get": {
                "tags": ["catalog"],
                "summary": "Search camping spots",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "description": "comma separated tag names, all must match", "name": "tags", "in": "query"},
                    {"type": "integer", "name": "min_guests", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "maximum": 100, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/spots.SpotListResponse"}}}
            }
        },
        "/campingspots/{id}": {
            "get": {
                "tags": ["catalog"],
                "summary": "Camping spot detail",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/spots.SpotSummaryResponse"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/featured-campingspots": {
            "get": {"tags": ["catalog"], "summary": "Featured camping spots", "responses": {"200": {"description": "OK"}}}
        },
        "/campingspots/{id}/unavailability": {
            "get": {
                "tags": ["catalog"],
                "summary": "Blocked date ranges of a spot",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/campingspots/{id}/reviews": {
            "get": {
                "tags": ["catalog"],
                "summary": "Reviews of a spot",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["catalog"],
                "summary": "Review a spot",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Rating outside 1..5"}}
            }
        },
        "/owner/campingspots": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Spots owned by the caller", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Create a spot", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}}
        },
        "/owner/campingspots/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Update a spot", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Not the owner"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Delete a spot", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Spot has pending or accepted bookings"}}}
        },
        "/owner/campingspots/{id}/images": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Attach an image URL", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/owner/campingspots/{id}/unavailability": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Block a date range", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Overlaps an active booking"}}}
        },
        "/owner/campingspots/{id}/unavailability/{windowId}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Remove a blocked range", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"type": "string", "format": "uuid", "name": "windowId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/owner/campingspots/{id}/bookings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Bookings of an owned spot", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/owner/bookings/{id}/accept": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Accept a pending booking", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Booking is not pending"}}}
        },
        "/owner/bookings/{id}/decline": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Decline a pending booking", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Booking is not pending"}}}
        },
        "/owner/analytics": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["owner"], "summary": "Owner booking dashboard", "parameters": [{"type": "integer", "name": "days", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/bookings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["bookings"],
                "summary": "Request a stay",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.CreateBookingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "400": {"description": "Invalid date range or guest count"},
                    "404": {"description": "Spot not found"},
                    "409": {"description": "Dates not available"},
                    "422": {"description": "Guest count exceeds capacity"}
                }
            }
        },
        "/my-bookings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["bookings"],
                "summary": "Request a stay with the camelCase body of older clients",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.LegacyBookingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "400": {"description": "Invalid body or date range"},
                    "409": {"description": "Dates not available"}
                }
            }
        },
        "/bookings/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bookings"], "summary": "A booking of the caller or of a spot they own", "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not found"}}}
        },
        "/users/bookings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bookings"], "summary": "Bookings made by the caller", "responses": {"200": {"description": "OK"}}}
        },
        "/users/analytics": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bookings"], "summary": "Booking totals of the caller", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "auth.RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "is_owner": {"type": "boolean"}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "auth.UserResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "is_owner": {"type": "boolean"},
                "role": {"type": "string"}
            }
        },
        "auth.AuthResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/auth.UserResponse"},
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "spots.SpotSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "price_per_night": {"type": "string", "example": "25.50"},
                "capacity": {"type": "integer"},
                "average_rating": {"type": "number"},
                "image_url": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "amenities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "spots.SpotListResponse": {
            "type": "object",
            "properties": {
                "spots": {"type": "array", "items": {"$ref": "#/definitions/spots.SpotSummaryResponse"}},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "bookings.CreateBookingRequest": {
            "type": "object",
            "required": ["camping_spot_id", "start_date", "end_date", "guest_count"],
            "properties": {
                "camping_spot_id": {"type": "string", "format": "uuid"},
                "start_date": {"type": "string", "example": "2030-07-01"},
                "end_date": {"type": "string", "example": "2030-07-04"},
                "guest_count": {"type": "integer", "minimum": 1}
            }
        },
        "bookings.LegacyBookingRequest": {
            "type": "object",
            "required": ["campingSpotId", "startDate", "endDate"],
            "properties": {
                "campingSpotId": {"type": "string", "format": "uuid"},
                "startDate": {"type": "string", "example": "2030-07-01"},
                "endDate": {"type": "string", "example": "2030-07-04"},
                "guestCount": {"type": "integer", "minimum": 1, "default": 1}
            }
        },
        "bookings.BookingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "booking_ref": {"type": "string", "example": "CMP-20300101-QWERTY"},
                "camping_spot_id": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "guest_count": {"type": "integer"},
                "total_price": {"type": "string", "example": "76.50"},
                "currency": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "ACCEPTED", "DECLINED"]}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Camping Spots API",
	Description:      "Camping spot catalog, booking requests and owner decisions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
