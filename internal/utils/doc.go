// Package utils provides small helpers shared by the inspection server and
// its client: JSON response writing, a preconfigured resty client and
// trace ID generation.
package utils
