// Package valuepb converts between value.Value and the wire-neutral
// datapb.Data message. It plays two roles: a general Value<->Data codec,
// and — via Mapper — a ready-made context.ValueMapper so a caller can plug
// protobuf-backed host-function marshalling into the invoker without
// writing one.
package valuepb

import (
	"regexp"
	"strconv"
	"time"

	"github.com/lyraproj/data-protobuf/datapb"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// typeTag names a Value kind that datapb has no dedicated message for, so
// it round-trips through a tagged HashValue ({"$type":..., "$value":...})
// instead of losing its identity to a bare StringValue.
const (
	tagKey       = `$type`
	valKey       = `$value`
	tagDate      = `date`
	tagLocalTime = `local-time`
	tagTime      = `time`
	tagLocalDT   = `local-date-time`
	tagDateTime  = `date-time`
	tagYearMonth = `year-month-duration`
	tagDayTime   = `day-time-duration`
	tagContext   = `context`
	tagError     = `error`
)

// ToPB converts a Value into a datapb.Data via a type switch over FEEL's
// fifteen variants.
func ToPB(v value.Value) *datapb.Data {
	switch tv := v.(type) {
	case value.Number:
		return &datapb.Data{Kind: &datapb.Data_FloatValue{FloatValue: tv.Float()}}
	case value.Boolean:
		return &datapb.Data{Kind: &datapb.Data_BooleanValue{BooleanValue: bool(tv)}}
	case value.String:
		return &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: string(tv)}}
	case value.Null:
		return &datapb.Data{Kind: &datapb.Data_UndefValue{}}
	case value.Date:
		return tagged(tagDate, tv.String())
	case value.LocalTime:
		return tagged(tagLocalTime, tv.String())
	case value.Time:
		return tagged(tagTime, tv.String())
	case value.LocalDateTime:
		return tagged(tagLocalDT, tv.String())
	case value.DateTime:
		return tagged(tagDateTime, tv.String())
	case value.YearMonthDuration:
		return tagged(tagYearMonth, tv.String())
	case value.DayTimeDuration:
		return tagged(tagDayTime, tv.String())
	case *value.List:
		vs := make([]*datapb.Data, tv.Len())
		for i, item := range tv.Items {
			vs[i] = ToPB(item)
		}
		return &datapb.Data{Kind: &datapb.Data_ArrayValue{ArrayValue: &datapb.DataArray{Values: vs}}}
	case *context.Context:
		entries := tv.Entries()
		vs := make([]*datapb.DataEntry, 0, len(entries)+1)
		vs = append(vs, &datapb.DataEntry{
			Key:   &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: tagKey}},
			Value: &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: tagContext}},
		})
		for k, val := range entries {
			vs = append(vs, &datapb.DataEntry{
				Key:   &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: k}},
				Value: ToPB(val),
			})
		}
		return &datapb.Data{Kind: &datapb.Data_HashValue{HashValue: &datapb.DataHash{Entries: vs}}}
	case value.Err:
		return tagged(tagError, tv.Message())
	default:
		// value.Function carries a Go closure with no wire representation.
		return &datapb.Data{Kind: &datapb.Data_UndefValue{}}
	}
}

func tagged(kind, str string) *datapb.Data {
	return &datapb.Data{Kind: &datapb.Data_HashValue{HashValue: &datapb.DataHash{Entries: []*datapb.DataEntry{
		{
			Key:   &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: tagKey}},
			Value: &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: kind}},
		},
		{
			Key:   &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: valKey}},
			Value: &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: str}},
		},
	}}}}
}

// FromPB converts a datapb.Data back into a Value. Host-opaque kinds
// (Function) cannot appear here since ToPB never emits them as anything
// but UndefValue.
func FromPB(d *datapb.Data) value.Value {
	switch k := d.Kind.(type) {
	case *datapb.Data_BooleanValue:
		return value.Boolean(k.BooleanValue)
	case *datapb.Data_FloatValue:
		return value.NewNumber(k.FloatValue)
	case *datapb.Data_IntegerValue:
		return value.NewNumberFromInt(k.IntegerValue)
	case *datapb.Data_StringValue:
		return value.String(k.StringValue)
	case *datapb.Data_UndefValue:
		return value.TheNull
	case *datapb.Data_ArrayValue:
		items := k.ArrayValue.GetValues()
		vs := make([]value.Value, len(items))
		for i, item := range items {
			vs[i] = FromPB(item)
		}
		return value.NewList(vs)
	case *datapb.Data_HashValue:
		return fromTaggedHash(k.HashValue.GetEntries())
	default:
		return value.TheNull
	}
}

func fromTaggedHash(entries []*datapb.DataEntry) value.Value {
	fields := make(map[string]*datapb.Data, len(entries))
	for _, e := range entries {
		if key, ok := e.Key.Kind.(*datapb.Data_StringValue); ok {
			fields[key.StringValue] = e.Value
		}
	}
	tagData, hasTag := fields[tagKey]
	if !hasTag {
		return value.TheNull
	}
	tagStr, ok := tagData.Kind.(*datapb.Data_StringValue)
	if !ok {
		return value.TheNull
	}
	if tagStr.StringValue == tagContext {
		ctx := context.New()
		for k, v := range fields {
			if k == tagKey {
				continue
			}
			ctx = ctx.Bind(k, FromPB(v))
		}
		return ctx
	}
	valData, hasVal := fields[valKey]
	if !hasVal {
		return value.TheNull
	}
	strVal, ok := valData.Kind.(*datapb.Data_StringValue)
	if !ok {
		return value.TheNull
	}
	return fromTaggedScalar(tagStr.StringValue, strVal.StringValue)
}

func fromTaggedScalar(tag, s string) value.Value {
	switch tag {
	case tagDate:
		if t, err := time.Parse(`2006-01-02`, s); err == nil {
			return value.Date{Time: t}
		}
	case tagLocalTime:
		if t, err := time.Parse(`15:04:05`, s); err == nil {
			return value.NewLocalTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
		}
	case tagTime:
		if t, err := time.Parse(`15:04:05-07:00`, s); err == nil {
			return value.NewTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	case tagLocalDT:
		if t, err := time.Parse(`2006-01-02T15:04:05`, s); err == nil {
			return value.LocalDateTime{Time: t}
		}
	case tagDateTime:
		if t, err := time.Parse(`2006-01-02T15:04:05-07:00`, s); err == nil {
			return value.DateTime{Time: t}
		}
	case tagYearMonth:
		if months, ok := parseYearMonthDuration(s); ok {
			return value.YearMonthDuration{Months: months}
		}
	case tagDayTime:
		if dur, ok := parseDayTimeDuration(s); ok {
			return value.DayTimeDuration{Duration: dur}
		}
	case tagError:
		return value.NewError(issue.DeserializedError, issue.H{`message`: s})
	}
	return value.String(s)
}

var yearMonthPattern = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?$`)

// parseYearMonthDuration inverts value.YearMonthDuration.String()'s
// `[-]P[<n>Y][<n>M]` format.
func parseYearMonthDuration(s string) (int64, bool) {
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var years, months int64
	if m[2] != `` {
		years, _ = strconv.ParseInt(m[2], 10, 64)
	}
	if m[3] != `` {
		months, _ = strconv.ParseInt(m[3], 10, 64)
	}
	total := years*12 + months
	if m[1] == `-` {
		total = -total
	}
	return total, true
}

var dayTimePattern = regexp.MustCompile(`^(-)?P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseDayTimeDuration inverts value.DayTimeDuration.String()'s
// `[-]P[<n>D][T[<n>H][<n>M][<n>S]]` format.
func parseDayTimeDuration(s string) (time.Duration, bool) {
	m := dayTimePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var days, hours, minutes, seconds int64
	if m[2] != `` {
		days, _ = strconv.ParseInt(m[2], 10, 64)
	}
	if m[3] != `` {
		hours, _ = strconv.ParseInt(m[3], 10, 64)
	}
	if m[4] != `` {
		minutes, _ = strconv.ParseInt(m[4], 10, 64)
	}
	if m[5] != `` {
		seconds, _ = strconv.ParseInt(m[5], 10, 64)
	}
	total := time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if m[1] == `-` {
		total = -total
	}
	return total, true
}

// Mapper adapts ToPB/FromPB to context.ValueMapper, passing *datapb.Data as
// the "native" representation on both sides of the host-function bridge.
type Mapper struct{}

func (Mapper) ToVal(native interface{}) value.Value {
	d, ok := native.(*datapb.Data)
	if !ok {
		return value.TheNull
	}
	return FromPB(d)
}

func (Mapper) UnpackVal(v value.Value) interface{} {
	return ToPB(v)
}

var _ context.ValueMapper = Mapper{}
