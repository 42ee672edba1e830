// Package errors provides the structured error type used across the importer.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Clients map transport failures onto codes, repositories return
// NotFound, and orchestrators wrap both with business context.
//
//	err := errors.NotFound("encounter not found").WithMeta("encounter_id", id)
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store spell")
//	}
//
//	if errors.IsUnavailable(err) {
//	    // proxy refused the request, surface the API message
//	}
//
// Constructors validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// The heuristic parsers never return errors for unmatched text; a degraded
// document is a valid result. Only missing input is reported.
package errors
