package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates sloppy request payloads: JSON
// numbers and numeric strings parse normally, everything else (including
// malformed strings, null and wrong types) coerces to zero instead of
// failing the request. This keeps the lenient boundary policy in one
// place; the engine only ever sees the coerced value.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*f = FlexFloat(parsed)
		}
	}
	return nil
}

// Value returns the coerced float64.
func (f FlexFloat) Value() float64 {
	return float64(f)
}

// FlexInt is the integer counterpart of FlexFloat.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = 0

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*i = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			*i = FlexInt(parsed)
		}
	}
	return nil
}

// Value returns the coerced int.
func (i FlexInt) Value() int {
	return int(i)
}
