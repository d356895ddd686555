// Package config loads beam drawing descriptions from TOML files.
//
// It is the only place where defaults are applied: Default supplies the
// optional values (cover depth, layer names, text height, fill order), Load
// decodes the file over them, checks that mandatory keys are present and
// converts the result into a validated beam.Spec. Downstream packages never
// fall back to defaults on their own.
//
// Errors carry an errs code: IO_ERROR when the file cannot be read,
// INVALID_FORMAT when it is not valid TOML for this schema, and
// INVALID_CONFIG when a value is missing or violates a beam precondition.
package config
