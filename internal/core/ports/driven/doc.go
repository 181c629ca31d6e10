// Package driven defines the interfaces that core calls OUT to browser
// state infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - HistoryStore: Native history search and URL deletion
//   - BookmarkStore: Bookmark tree retrieval and deletion
//   - TabStore: Open tab listing, creation, focus, and closing
//   - Favicons: Pure favicon URL derivation
//
// Every store call is fallible and must surface a distinguishable failure
// reason: wrap domain.ErrStoreUnavailable when the capability does not
// exist in the current execution context, and return a descriptive
// operation error otherwise. Silent empty returns are not allowed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
