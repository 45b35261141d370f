package valuepb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/internal/valuepb"
	"github.com/lyraproj/feel-evaluator/value"
)

func TestRoundTrip_Scalars(t *testing.T) {
	cases := []value.Value{
		value.NewNumber(3.5),
		value.Boolean(true),
		value.String(`hello`),
		value.TheNull,
	}
	for _, v := range cases {
		got := valuepb.FromPB(valuepb.ToPB(v))
		assert.True(t, value.Equal(v, got) || value.IsNull(v) && value.IsNull(got), v.String())
	}
}

func TestRoundTrip_List(t *testing.T) {
	list := value.NewList([]value.Value{value.NewNumberFromInt(1), value.String(`x`)})
	got := valuepb.FromPB(valuepb.ToPB(list)).(*value.List)
	assert.Equal(t, list.String(), got.String())
}

func TestRoundTrip_Date(t *testing.T) {
	d := value.NewDate(2024, 1, 15)
	got := valuepb.FromPB(valuepb.ToPB(d))
	assert.Equal(t, d.String(), got.String())
}

func TestMapper_SatisfiesValueMapper(t *testing.T) {
	m := valuepb.Mapper{}
	native := m.UnpackVal(value.NewNumberFromInt(7))
	back := m.ToVal(native)
	assert.Equal(t, `7`, back.String())
}
