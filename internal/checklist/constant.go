package checklist

const (
	CommentStart = "<!--"
	CommentEnd   = "-->"
)

// Log line prefixes.
const (
	LogPrefixCompleted  = "Completed task list item: "
	LogPrefixIncomplete = "Incomplete task list item: "
	LogPrefixSkipped    = "Skipping task list item: "
)

// Verdict messages.
const (
	MsgIncomplete  = "The following items are not marked as completed: "
	MsgConflict    = "The following items cannot be marked as completed simultaneously: "
	MsgNoChecklist = "No task list was present and requireChecklist is turned on"
	MsgAllComplete = "There are no incomplete task list items"
)

const (
	itemTextSeparator  = ", "
	strikeThroughGlyph = '~'
)
