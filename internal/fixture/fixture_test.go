package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/internal/fixture"
)

const doc = `
- name: unary-test-less-than
  bindings:
    cellInput: 5
  expected: true
- name: context-literal
  bindings: {}
  expected:
    a: 1
    b: 3
  expectedWarning: ""
`

func TestLoad(t *testing.T) {
	scenarios, err := fixture.Load([]byte(doc))
	assert.NoError(t, err)
	assert.Len(t, scenarios, 2)

	first := scenarios[0]
	assert.Equal(t, `unary-test-less-than`, first.Name)
	input, ok := first.Bindings[`cellInput`]
	assert.True(t, ok)
	assert.Equal(t, `5`, input.String())
	assert.Equal(t, `true`, first.Expected.String())

	second := scenarios[1]
	assert.Equal(t, `context-literal`, second.Name)
	assert.Equal(t, `context`, second.Expected.Kind().String())
}
