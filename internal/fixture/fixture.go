// Package fixture loads YAML-described test data for table-driven test
// scenarios, turning a YAML document into FEEL values via a MapSlice walk.
// Expression trees themselves are out of scope for this package and are
// built directly in Go by the tests that use a Scenario.
package fixture

import (
	ym "gopkg.in/yaml.v2"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/value"
)

// Scenario is one worked example's input/output data: a set of Context
// bindings, the expected result, and (for the suppressed-failure cases)
// the expected warning type.
type Scenario struct {
	Name            string
	Bindings        map[string]value.Value
	Expected        value.Value
	ExpectedWarning string
}

type rawScenario struct {
	Name            string      `yaml:"name"`
	Bindings        ym.MapSlice `yaml:"bindings"`
	Expected        interface{} `yaml:"expected"`
	ExpectedWarning string      `yaml:"expectedWarning"`
}

// Load parses a YAML document holding a list of scenarios.
func Load(data []byte) ([]Scenario, error) {
	var raws []rawScenario
	if err := ym.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	scenarios := make([]Scenario, len(raws))
	for i, r := range raws {
		bindings := make(map[string]value.Value, len(r.Bindings))
		for _, item := range r.Bindings {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}
			bindings[key] = wrapValue(item.Value)
		}
		scenarios[i] = Scenario{
			Name:            r.Name,
			Bindings:        bindings,
			Expected:        wrapValue(r.Expected),
			ExpectedWarning: r.ExpectedWarning,
		}
	}
	return scenarios, nil
}

// wrapValue converts a value produced by yaml.v2's unmarshalling (MapSlice
// or map[interface{}]interface{}, []interface{}, string, int, float64,
// bool, nil) into a value.Value. Mappings become Contexts.
func wrapValue(v interface{}) value.Value {
	switch tv := v.(type) {
	case map[interface{}]interface{}:
		ctx := context.New()
		for k, val := range tv {
			key, ok := k.(string)
			if !ok {
				continue
			}
			ctx = ctx.Bind(key, wrapValue(val))
		}
		return ctx
	case ym.MapSlice:
		ctx := context.New()
		for _, entry := range tv {
			key, ok := entry.Key.(string)
			if !ok {
				continue
			}
			ctx = ctx.Bind(key, wrapValue(entry.Value))
		}
		return ctx
	case []interface{}:
		items := make([]value.Value, len(tv))
		for i, item := range tv {
			items[i] = wrapValue(item)
		}
		return value.NewList(items)
	case string:
		return value.String(tv)
	case int:
		return value.NewNumberFromInt(int64(tv))
	case int64:
		return value.NewNumberFromInt(tv)
	case float64:
		return value.NewNumber(tv)
	case bool:
		return value.Boolean(tv)
	case nil:
		return value.TheNull
	default:
		return value.TheNull
	}
}
