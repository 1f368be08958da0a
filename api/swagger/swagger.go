package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Employee Availability API",
        "description": "Working days, busy and free slots, and availability lookups for one employee schedule",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Schedule",
            "description": "Working days with busy and free slots"
        },
        {
            "name": "Availability",
            "description": "Interval and duration lookups"
        },
        {
            "name": "Validation",
            "description": "Date, time and containment checks"
        }
    ],
    "paths": {
        "/days": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "List working days",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/days/{date}": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Get working day by date",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Date (YYYY-MM-DD)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid date format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Date not in schedule",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/days/{date}/busy-slots": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Busy slots of a day",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Date (YYYY-MM-DD)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Date not in schedule",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/days/{date}/free-slots": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Free slots of a day",
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Date (YYYY-MM-DD)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Date not in schedule",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/days/{date}/free-slots/export": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Download free slots of a day",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "date",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Date (YYYY-MM-DD)"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ],
                        "description": "Export format, csv by default"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/availability": {
            "get": {
                "tags": [
                    "Availability"
                ],
                "summary": "Check an interval against free slots",
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "Date (YYYY-MM-DD)"
                    },
                    {
                        "name": "start",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "Start (HH:MM)"
                    },
                    {
                        "name": "end",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "End (HH:MM)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid date or time",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Date not in schedule",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/slots/search": {
            "get": {
                "tags": [
                    "Availability"
                ],
                "summary": "Earliest free slot for a duration",
                "parameters": [
                    {
                        "name": "hours",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0,
                        "required": false,
                        "description": "Hours"
                    },
                    {
                        "name": "minutes",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0,
                        "required": false,
                        "description": "Minutes"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Duration out of range",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/timeslots/validate": {
            "post": {
                "tags": [
                    "Validation"
                ],
                "summary": "Validate a timeslot",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ValidateTimeslotRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid time format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/intervals/subset": {
            "post": {
                "tags": [
                    "Validation"
                ],
                "summary": "Check interval containment",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubsetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid time format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/dates/validate": {
            "post": {
                "tags": [
                    "Validation"
                ],
                "summary": "Validate a date",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ValidateDateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid date format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Interval": {
            "type": "object",
            "properties": {
                "start": {
                    "type": "string",
                    "example": "09:00"
                },
                "end": {
                    "type": "string",
                    "example": "12:00"
                }
            },
            "required": [
                "start",
                "end"
            ]
        },
        "ValidateTimeslotRequest": {
            "type": "object",
            "properties": {
                "start": {
                    "type": "string"
                },
                "end": {
                    "type": "string"
                },
                "allow_zero": {
                    "type": "boolean"
                }
            },
            "required": [
                "start",
                "end"
            ]
        },
        "SubsetRequest": {
            "type": "object",
            "properties": {
                "free": {
                    "$ref": "#/definitions/Interval"
                },
                "sub": {
                    "$ref": "#/definitions/Interval"
                }
            },
            "required": [
                "free",
                "sub"
            ]
        },
        "ValidateDateRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2025-02-15"
                }
            },
            "required": [
                "date"
            ]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "details": {
                    "type": "object"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
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
