// Package docs registers the OpenAPI document served at /swagger/*any
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
        "/register/": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResponse"}},
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/token/": {
            "post": {
                "tags": ["auth"],
                "summary": "Obtain a token pair",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.TokenObtainRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenPairResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/token/refresh/": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh a token pair",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.TokenRefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenPairResponse"}},
                    "401": {"description": "Token invalid, expired or already used", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/profile/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Get current user profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserProfileResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "multipart/form-data"],
                "tags": ["profile"],
                "summary": "Update current user profile",
                "parameters": [
                    {"type": "string", "name": "email", "in": "formData"},
                    {"type": "string", "name": "first_name", "in": "formData"},
                    {"type": "string", "name": "last_name", "in": "formData"},
                    {"type": "file", "name": "avatar", "in": "formData"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserProfileResponse"}}}
            }
        },
        "/departments/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["departments"], "summary": "List departments",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.DepartmentResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["departments"], "summary": "Create a new department",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateDepartmentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DepartmentResponse"}}}}
        },
        "/instructors/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["instructors"], "summary": "List instructors",
                "parameters": [{"type": "integer", "name": "department", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InstructorResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["instructors"], "summary": "Create a new instructor",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInstructorRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.InstructorResponse"}}}}
        },
        "/students/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "List students",
                "parameters": [{"type": "integer", "name": "department", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Create a new student",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StudentResponse"}}}}
        },
        "/courses/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "List courses",
                "parameters": [{"type": "integer", "name": "instructor", "in": "query"}, {"type": "string", "name": "semester", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "Create a new course",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCourseRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CourseResponse"}}}}
        },
        "/enrollments/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["enrollments"], "summary": "List enrollments",
                "parameters": [{"type": "integer", "name": "student", "in": "query"}, {"type": "integer", "name": "course", "in": "query"},
                    {"type": "string", "enum": ["Enrolled", "Dropped", "Completed"], "name": "status", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.EnrollmentResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["enrollments"], "summary": "Create a new enrollment",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateEnrollmentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.EnrollmentResponse"}}}}
        }
    },
    "definitions": {
        "dto.ErrorDetail": {"type": "object", "properties": {
            "code": {"type": "string", "example": "VAL_001"}, "message": {"type": "string"}, "field": {"type": "string"},
            "severity": {"type": "string"}, "details": {}}},
        "dto.ErrorResponse": {"type": "object", "properties": {
            "success": {"type": "boolean", "example": false}, "error": {"$ref": "#/definitions/dto.ErrorDetail"},
            "timestamp": {"type": "string"}}},
        "dto.RegisterRequest": {"type": "object", "required": ["username", "email", "password"], "properties": {
            "username": {"type": "string", "example": "juan"}, "email": {"type": "string", "example": "juan@x.ph"},
            "password": {"type": "string", "example": "pw123"}}},
        "dto.RegisterResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"}}},
        "dto.TokenObtainRequest": {"type": "object", "required": ["username", "password"], "properties": {
            "username": {"type": "string"}, "password": {"type": "string"}}},
        "dto.TokenRefreshRequest": {"type": "object", "required": ["refresh"], "properties": {"refresh": {"type": "string"}}},
        "dto.TokenPairResponse": {"type": "object", "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}},
        "dto.UserProfileResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"},
            "first_name": {"type": "string"}, "last_name": {"type": "string"}, "avatar": {"type": "string"}}},
        "dto.CreateDepartmentRequest": {"type": "object", "required": ["name", "code", "office_location", "phone_contact", "established_date"], "properties": {
            "name": {"type": "string", "maxLength": 100}, "code": {"type": "string", "maxLength": 10},
            "office_location": {"type": "string", "maxLength": 100}, "phone_contact": {"type": "string", "maxLength": 20},
            "established_date": {"type": "string", "example": "2005-06-15"}}},
        "dto.DepartmentResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "code": {"type": "string"}, "office_location": {"type": "string"},
            "phone_contact": {"type": "string"}, "established_date": {"type": "string"}}},
        "dto.CreateInstructorRequest": {"type": "object", "required": ["first_name", "last_name", "email", "hire_date", "department"], "properties": {
            "first_name": {"type": "string", "maxLength": 50}, "last_name": {"type": "string", "maxLength": 50},
            "email": {"type": "string"}, "hire_date": {"type": "string", "example": "2018-08-01"}, "department": {"type": "integer"}}},
        "dto.InstructorResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}, "email": {"type": "string"},
            "hire_date": {"type": "string"}, "department": {"type": "integer"}}},
        "dto.CreateStudentRequest": {"type": "object", "required": ["first_name", "last_name", "email", "dob", "department"], "properties": {
            "first_name": {"type": "string", "maxLength": 50}, "last_name": {"type": "string", "maxLength": 50},
            "email": {"type": "string"}, "dob": {"type": "string", "example": "2003-04-12"}, "department": {"type": "integer"}}},
        "dto.StudentResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}, "email": {"type": "string"},
            "dob": {"type": "string"}, "department": {"type": "integer"}}},
        "dto.CreateCourseRequest": {"type": "object", "required": ["title", "course_code", "credits", "semester"], "properties": {
            "title": {"type": "string", "maxLength": 100}, "course_code": {"type": "string", "maxLength": 20},
            "credits": {"type": "integer", "minimum": 0}, "semester": {"type": "string", "maxLength": 50}, "instructor": {"type": "integer"}}},
        "dto.CourseResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "title": {"type": "string"}, "course_code": {"type": "string"}, "credits": {"type": "integer"},
            "semester": {"type": "string"}, "instructor": {"type": "integer"}}},
        "dto.CreateEnrollmentRequest": {"type": "object", "required": ["student", "course"], "properties": {
            "student": {"type": "integer"}, "course": {"type": "integer"},
            "status": {"type": "string", "enum": ["Enrolled", "Dropped", "Completed"]}, "grade": {"type": "string", "maxLength": 5}}},
        "dto.EnrollmentResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "student": {"type": "integer"}, "course": {"type": "integer"},
            "enrollment_date": {"type": "string"}, "status": {"type": "string"}, "grade": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Bearer <access token>", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "School Records API",
	Description:      "Departments, instructors, students, courses and enrollments with JWT authentication",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
