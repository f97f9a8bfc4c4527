package engine

// Log messages
const (
	LogMsgDayEnded         = "Day ended"
	LogMsgAutosaveFailed   = "Autosave failed"
	LogMsgPublishFailed    = "Event publish failed"
	LogMsgSaveUnreadable   = "Stored save is unreadable, starting fresh"
	LogMsgSaveMigrated     = "Save migrated to current version"
	LogMsgSaveLoaded       = "Save loaded"
	LogMsgImportRejected   = "Save import rejected"
	LogMsgGameReset        = "Game reset"
	LogMsgShippingBinAdded = "Shipping bin placed"
)

// Error Messages
const (
	ErrMsgEncodeSave = "failed to encode save"
	ErrMsgWriteSave  = "failed to write save"
	ErrMsgReadSave   = "failed to read save"
)
