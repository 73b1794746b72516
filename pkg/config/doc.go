// Package config handles case configuration: the list of fields a run
// declares, which field-pointer models are enabled, and explicit role
// bindings.
//
// A case is loaded from TOML, YAML or XML. Embedded defaults come first,
// then the case file, then FIELDPTR_* environment overrides
// (FIELDPTR_MODELS_ATMOSPHERIC_ENABLED=false maps to
// models.atmospheric.enabled).
//
// LoadWithOverlays merges further case files over the first one before
// the environment is applied. Tables merge and lists append, so an overlay
// can add fields and bindings to a shared base case.
package config
