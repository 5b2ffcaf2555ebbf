// Package kernel contains the shared building blocks of the domain model:
// the UUID identity wrapper and the Peso value object. Both follow the
// constructor-validation idiom used across the domain — they can only be
// obtained through constructors that validate their input, and zero values
// fail Validate.
package kernel
