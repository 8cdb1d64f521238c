// Package service contains the application services that orchestrate
// domain entities and persistence.
package service
