package domain

// ShareOutcome is the result of a share-or-copy action.
type ShareOutcome string

const (
	// ShareOutcomeShared means a native share target accepted the quote.
	ShareOutcomeShared ShareOutcome = "shared"

	// ShareOutcomeCopied means the quote text landed on a clipboard or selection.
	ShareOutcomeCopied ShareOutcome = "copied"

	// ShareOutcomeFailed means every tier failed.
	ShareOutcomeFailed ShareOutcome = "failed"
)

// SharePayload is what a native share target receives.
type SharePayload struct {
	Title string
	Text  string
	URL   string
}
