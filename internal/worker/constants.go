package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"
	// LogMsgQueueFull is logged when a job is dropped because the queue is full
	LogMsgQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Autosave
// ============================================================================

const (
	LogMsgAutosaveCompleted = "Autosave completed"
)
