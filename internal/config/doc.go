// Package config resolves the client configuration and keeps the process-wide
// active instance.
//
// A [Config] is built by [New] from three layers, in the following priority
// order (earlier layers win for fields they set):
//  1. Host overrides ([HostOverrides]), injected by the embedding host
//  2. Caller options ([Options])
//  3. Field-specific literal defaults
//
// Host overrides are usually assembled with [LoadHostOverrides] from
// environment variables and an optional JSON host file; options may be read
// from a JSON or YAML file with [LoadOptions].
//
// The resolved configuration is published with [SetActive] and read back with
// [Active].
package config
