// Package domain defines the core types of the generation pipeline:
// prompt types, difficulty levels, the request context handed to the
// prompt builder, and the shapes returned to callers.
package domain
