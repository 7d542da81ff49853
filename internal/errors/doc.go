// Package errors provides the error handling for the campaign API.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Domain rule codes for the character resource engine
//   - HTTP status mapping for the JSON surface
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.NoSlotsAvailablef("no level %d slots remaining", level)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//	if errors.IsDomainError(err) {
//	    // Rule violation: 4xx outcome, not a failure
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("character_id", input.CharacterID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound/AlreadyExists, include IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Enforce game rules and return domain rule errors
//
// Handler layer:
//   - Map codes to HTTP statuses via Code.HTTPStatus
//   - Log internal errors only; domain errors are expected outcomes
package errors
