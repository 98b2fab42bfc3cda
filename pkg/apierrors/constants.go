package apierrors

const (
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidItemID      = "invalidItemID"
	MsgInvalidDividerID   = "invalidDividerID"
	MsgInvalidRoutineID   = "invalidRoutineID"
	MsgInvalidNoteID      = "invalidNoteID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidItemPayload = "invalidItemPayload"
	MsgInvalidMovePayload = "invalidMovePayload"
	MsgInvalidNotePayload = "invalidNotePayload"
	MsgInvalidRoutine     = "invalidRoutinePayload"
	MsgInvalidColumn      = "invalidColumn"
	MsgTaskNotFound       = "taskNotFound"
	MsgItemNotFound       = "itemNotFound"
	MsgDividerNotFound    = "dividerNotFound"
	MsgRoutineNotFound    = "routineNotFound"
	MsgNoteNotFound       = "noteNotFound"
	MsgTaskNotArchived    = "taskNotArchived"
	MsgStorageFailure     = "storageFailure"
)
