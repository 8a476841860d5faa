// Package config loads areanav settings from YAML.
//
// A missing file yields DefaultConfig. Environment variables override the
// file:
//
//	AREANAV_CACHE      cache.path (an empty value disables the cache)
//	AREANAV_LOG_LEVEL  logging.level
//
// Errors:
//
//   - ErrInvalid: a value out of range, returned by Validate.
package config
