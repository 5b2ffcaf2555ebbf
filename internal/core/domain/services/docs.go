// Package services holds the domain services: composable specifications
// evaluated by the application layer before mutating aggregates. A
// specification is a pure predicate; combining them with And, Or, and Not
// expresses compound eligibility rules without touching entity state.
package services
