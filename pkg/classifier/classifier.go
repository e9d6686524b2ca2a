package classifier

import "context"

// IntentClassifier defines the contract for the external intent model.
// Classify maps free text to one of a fixed set of intent labels; for a
// given model snapshot the mapping is deterministic.
type IntentClassifier interface {
	// Classify returns the intent label for the user text.
	Classify(ctx context.Context, text string) (string, error)

	// Ready reports whether the underlying model is loaded and reachable.
	Ready(ctx context.Context) bool
}
