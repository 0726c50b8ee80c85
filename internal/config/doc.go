// Package config loads roster's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Configuration Fields
//
//	api_url = "http://127.0.0.1:7490"   # item API root (host:port also accepted)
//	request_timeout = 5                 # seconds per HTTP request
//	locale = "en"                       # BCP 47 tag used to collate titles
//	log_file = "~/.local/state/roster/roster.log"
//
// String values are trimmed and a leading "~" is expanded to the user's
// home directory. An unparseable locale is a load error so that a typo does
// not silently change sort order.
//
// # Error Handling
//
//   - Missing file: not an error, defaults are returned
//   - Unreadable file: "open config" / "read config" errors
//   - Invalid TOML or locale: "parse config" errors
package config
