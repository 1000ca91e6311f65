// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler with slog request/completion logging:

	mux.HandleFunc("POST /sessions", middleware.WithLogging(h.StartSession))

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status code
  - ErrorResponse: writes a models.ErrorResponse
  - ParseJSONBody: decodes a size-capped request body

# CORS

CORS reflects the request origin and handles OPTIONS preflight so the Vite
dev server and the deployed front end can call the API directly.
*/
package middleware
