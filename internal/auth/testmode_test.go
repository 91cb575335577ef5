package auth_test

// The blank import lives in the external test package so that the
// testing helper's dependency on internal/app does not create an
// import cycle with the package under test.
import _ "github.com/tasklane/tasklane/testing"
