package session

// Log messages
const (
	LogMsgSessionOpened  = "Session opened"
	LogMsgSessionEvicted = "Session evicted"
	LogMsgEvictSaveFail  = "Failed to save evicted session"
	LogMsgSlotDeleted    = "Slot deleted"
)
