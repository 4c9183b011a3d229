package queue

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewJobID builds a job id from the submission time plus a random fragment,
// unique enough for rapid submissions within one process.
func NewJobID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
