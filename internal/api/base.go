package api

import "time"

// DefaultBaseURL is the single source of truth for the API target.
const DefaultBaseURL = "http://localhost:5001"

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// DefaultListLimit is the page size requested from the list endpoint.
const DefaultListLimit = 100
