package domain

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrSessionNotFound   = errors.New("filter session not found")
	ErrSessionsDisabled  = errors.New("filter sessions are disabled")
	ErrSessionConflict   = errors.New("filter session changed concurrently")
	ErrUnknownFacet      = errors.New("unknown facet")
	ErrInvalidFacetValue = errors.New("invalid facet value")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)
