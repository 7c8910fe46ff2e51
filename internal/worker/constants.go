package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Reset Job
// ============================================================================

const (
	LogMsgResetCheckFailed   = "Daily reset check failed"
	LogMsgResetPerformed     = "Daily reset performed"
	LogMsgMaintenanceFailed  = "Maintenance sweep failed"
	LogMsgTicketsPruned      = "Expired tickets pruned"
	LogMsgPlantsSweptToReady = "Plants swept to ready"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
