package testing

import (
	"os"
	"sync"
	stdtesting "testing"

	"github.com/tasklane/tasklane/internal/app"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("TASKLANE_TEST_MODE", "1")
		app.RefreshTestMode()
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
