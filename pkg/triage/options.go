package triage

type options struct {
	batchLimit int
}

// Option configures a Triage instance.
type Option func(*options)

// WithBatchLimit caps how many classifications ClassifyBatch and ScanFile
// return per call. 0 (default) means unlimited.
func WithBatchLimit(n int) Option {
	return func(o *options) {
		o.batchLimit = n
	}
}

func defaultOptions() options {
	return options{}
}
