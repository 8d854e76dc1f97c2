// Package driving defines the interfaces that external actors use to
// drive the application core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, watch mode, and MCP server depend on these interfaces, and
// core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or scanner package
package driving
