// Package docs registers the Swagger document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Assignment API",
        "description": "School assignment tracking backend: users, classes, subjects and the assignment lifecycle.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "auth", "description": "Registration and login"},
        {"name": "users", "description": "User management"},
        {"name": "classes", "description": "Classes and rosters"},
        {"name": "subjects", "description": "Subjects"},
        {"name": "assignments", "description": "Assignment lifecycle"},
        {"name": "setup", "description": "Demo data generation"},
        {"name": "health", "description": "Probes"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Dependencies reachable"},
                    "503": {"description": "A dependency is down"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AuthResult"}},
                    "400": {"description": "Validation failure or taken username/email"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuthResult"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/users/me": {
            "get": {
                "tags": ["users"],
                "summary": "Authenticated user's profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/users/me/password": {
            "post": {
                "tags": ["users"],
                "summary": "Change password",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Changed"},
                    "401": {"description": "Wrong current password"}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get one user",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "patch": {
                "tags": ["users"],
                "summary": "Partially update a profile",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/api/classes": {
            "get": {
                "tags": ["classes"],
                "summary": "List classes with rosters",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["classes"],
                "summary": "Create a class",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/classes/{id}": {
            "get": {
                "tags": ["classes"],
                "summary": "Get one class with its roster",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["classes"],
                "summary": "Update a class",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["classes"],
                "summary": "Delete a class, clearing student and assignment references",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/api/classes/{id}/students/{studentId}": {
            "post": {
                "tags": ["classes"],
                "summary": "Add a student to the roster",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "User is not a student"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["classes"],
                "summary": "Remove a student from the roster",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/subjects": {
            "get": {
                "tags": ["subjects"],
                "summary": "List subjects",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["subjects"],
                "summary": "Create a subject",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/subjects/{id}": {
            "get": {
                "tags": ["subjects"],
                "summary": "Get one subject",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["subjects"],
                "summary": "Update a subject",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["subjects"],
                "summary": "Delete a subject, clearing teaching and assignment references",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/api/assignments": {
            "get": {
                "tags": ["assignments"],
                "summary": "List assignments (paginated)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            },
            "post": {
                "tags": ["assignments"],
                "summary": "Create an assignment",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/assignments/submitted": {
            "get": {
                "tags": ["assignments"],
                "summary": "Submitted assignments, most recent due date first",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/pending": {
            "get": {
                "tags": ["assignments"],
                "summary": "Pending assignments, soonest due date first",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/subject/{subjectId}": {
            "get": {
                "tags": ["assignments"],
                "summary": "Assignments of one subject",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "subjectId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/student/{studentId}": {
            "get": {
                "tags": ["assignments"],
                "summary": "Assignments authored by one student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "studentId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/teacher/{teacherId}": {
            "get": {
                "tags": ["assignments"],
                "summary": "Assignments across all subjects taught by one teacher",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "teacherId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/class/{classId}": {
            "get": {
                "tags": ["assignments"],
                "summary": "Assignments of one class",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "classId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentPage"}}}
            }
        },
        "/api/assignments/{id}": {
            "get": {
                "tags": ["assignments"],
                "summary": "Get one assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["assignments"],
                "summary": "Update an assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["assignments"],
                "summary": "Delete an assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/api/assignments/{id}/submit": {
            "post": {
                "tags": ["assignments"],
                "summary": "Submit an assignment (students only)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Submission not allowed"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/assignments/{id}/grade": {
            "post": {
                "tags": ["assignments"],
                "summary": "Grade an assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/setup/seed": {
            "post": {
                "tags": ["setup"],
                "summary": "Generate demo data in the background (admin only)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "202": {"description": "Accepted"},
                    "429": {"description": "Seed queue full"}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "TEACHER", "STUDENT"]}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AuthResult": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"type": "object"}
            }
        },
        "AssignmentPage": {
            "type": "object",
            "properties": {
                "docs": {"type": "array", "items": {"type": "object"}},
                "totalDocs": {"type": "integer"},
                "limit": {"type": "integer"},
                "page": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "pagingCounter": {"type": "integer"},
                "hasPrevPage": {"type": "boolean"},
                "hasNextPage": {"type": "boolean"},
                "prevPage": {"type": "integer"},
                "nextPage": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
