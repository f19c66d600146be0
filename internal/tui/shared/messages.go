package shared

import (
	"time"

	"github.com/joe/filescan/pkg/collection"
)

// ScanCompleteMsg is sent when a scan has finished
type ScanCompleteMsg struct {
	Entries *collection.Collection
	Elapsed time.Duration
}

// ErrorMsg is sent when a scan fails
type ErrorMsg struct {
	Err error
}
