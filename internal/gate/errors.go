package gate

import "errors"

// MsgIssueNumberMissing is the user-facing text for ErrIssueNumberMissing.
const MsgIssueNumberMissing = "Could not determine issue number"

var (
	ErrIssueNumberMissing = errors.New("could not determine issue number")
	ErrFetchFailed        = errors.New("failed to fetch checklist sources")
)
