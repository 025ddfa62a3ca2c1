package reconciler

import "time"

const (
	defaultBatchSize   uint64 = 10
	defaultStartHeight uint64 = 1

	defaultBlockPollInterval   = 10 * time.Second
	defaultMempoolPollInterval = 5 * time.Second

	sleepDuration = 5 * time.Second
)
