// Package services implements the driving port interfaces.
// Services contain the core business logic: the three per-source search
// adapters, the merge orchestrator, the query session with stale-result
// suppression, result actions, and domain suggestions.
//
// Services are pure Go and talk to browser state only through driven ports.
package services
