package service

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipe has the requested id.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrRecipeNotPublished is returned when the recipe exists but is not public.
	ErrRecipeNotPublished = errors.New("recipe not published")
	// ErrUnknownField is returned when a query spec references a field the
	// store cannot translate.
	ErrUnknownField = errors.New("unknown query field")
)
