// Package app is the composition root for roster.
//
// Setup loads config.toml and prefs.toml, builds the HTTP client and an
// empty state.Store, and returns them as an Env. Run hands the Env to the
// Bubble Tea UI after redirecting the standard logger to the configured
// log file.
//
// Refresh, Delete and Create drive the same store operations the UI uses,
// but synchronously. The non-interactive CLI commands are built on them.
//
//	Run()
//	 ├─> config.Load()     read ~/.config/roster/config.toml
//	 ├─> prefs.Load()      read ~/.config/roster/prefs.toml
//	 ├─> api.NewClient()   item API client
//	 ├─> tea.LogToFile()   log file
//	 └─> ui.Run()          blocks until quit
//
// There is no background polling. The list fetches when it is shown and
// when the user asks for a reload.
package app
