package testing

import (
	"testing"

	"github.com/arloliu/hashring/internal/logger"
	"github.com/arloliu/hashring/types"
)

// NewTestLogger creates a logger that writes to tb, so ring logs appear in
// test output.
func NewTestLogger(tb testing.TB) types.Logger {
	return logger.NewTest(tb)
}
