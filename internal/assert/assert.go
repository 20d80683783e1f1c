package assert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// MarshalsTo checks that result encodes to the same JSON document as expected.
func (a *Assert) MarshalsTo(expected string, result any) bool {
	a.T.Helper()
	b, err := json.Marshal(result)
	if !a.NoError(err, "Failed to marshal result to JSON") {
		return false
	}
	return a.JSONEq(expected, string(b))
}

// EqualToJSONFixture marshals the result to indented JSON and compares it with the content of a fixture file.
// If GEN_FIXTURE=true is set, it writes the marshaled result to the fixture file and passes the test.
// The fixture path is fixtures/<test name>_<fixtureName>.json
func (a *Assert) EqualToJSONFixture(fixtureName string, result any) {
	a.T.Helper()
	resultJSON, err := json.MarshalIndent(result, "", "  ")
	a.NoError(err, "Failed to marshal result to JSON")
	resultStr := string(resultJSON)

	fixturePath := filepath.Join("fixtures", fmt.Sprintf("%s_%s.json", a.T.Name(), fixtureName))

	if os.Getenv("GEN_FIXTURE") == "true" {
		err = os.MkdirAll(filepath.Dir(fixturePath), 0755)
		a.NoError(err, "Failed to create fixture directory")
		err := os.WriteFile(fixturePath, []byte(resultStr), 0644)
		a.NoError(err, "Failed to write fixture file")
		return
	}

	expected, err := os.ReadFile(fixturePath)
	a.NoError(err, "Failed to read fixture file")

	a.Equal(string(expected), resultStr, "Result does not match fixture %s", fixturePath)
}
