// Package flow holds the pure state machines of the help-seeker session and
// the provider desk. Every transition is a function of (state, action) and
// never touches the ledger directly.
package flow
