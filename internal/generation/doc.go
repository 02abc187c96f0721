// Package generation defines the provider boundary of the pipeline: the
// Provider interface implemented by each model backend, the catalog that
// resolves a requested model string to a concrete provider+model pair,
// and the sentinel errors shared by all provider implementations.
package generation
