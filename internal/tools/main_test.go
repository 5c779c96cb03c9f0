package tools

import (
	"testing"

	"go.uber.org/goleak"
)

// Handlers are pure reads over the snapshot and must not leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
