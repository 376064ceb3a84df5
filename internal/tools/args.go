package tools

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

var errMissing = errors.New("is required")

type createAccountArgs struct {
	HolderName string `mapstructure:"holder_name"`
}

type accountArgs struct {
	AccountID string `mapstructure:"account_id"`
}

type amountArgs struct {
	AccountID string          `mapstructure:"account_id"`
	Amount    decimal.Decimal `mapstructure:"amount"`
}

type historyArgs struct {
	AccountID string `mapstructure:"account_id"`
	Limit     int    `mapstructure:"limit"`
}

// decodeArgs fills out from args after checking that every required
// parameter of tool is present. Values are weakly typed: "12.5" decodes into
// a number and 3.0 into an integer.
func decodeArgs(tool *Tool, args map[string]any, out any) error {
	for _, p := range tool.Params {
		if v, ok := args[p.Name]; ok && v != nil {
			continue
		}
		if p.Required {
			return &ArgumentError{Tool: tool.Name, Param: p.Name, Err: errMissing}
		}
		if p.Default != nil {
			if args == nil {
				args = map[string]any{}
			}
			args = withDefault(args, p.Name, p.Default)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(decimalHook, integerHook),
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return &ArgumentError{Tool: tool.Name, Err: err}
	}
	if err := dec.Decode(args); err != nil {
		return &ArgumentError{Tool: tool.Name, Err: err}
	}
	return nil
}

func withDefault(args map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(args)+1)
	for k, v := range args {
		out[k] = v
	}
	out[key] = value
	return out
}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	errNotWhole = errors.New("must be a whole number")
	maxInt      = decimal.NewFromInt(math.MaxInt32)
	minInt      = decimal.NewFromInt(math.MinInt32)
)

func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	default:
		return data, nil
	}
}

// integerHook accepts numbers and numeric strings for int fields only when
// they are whole, so 3.0 decodes to 3 and 2.5 is rejected on every transport.
func integerHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	var d decimal.Decimal
	var err error
	switch v := data.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errNotWhole
		}
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		return data, nil
	}
	if err != nil {
		return nil, errNotWhole
	}

	if !d.IsInteger() || d.GreaterThan(maxInt) || d.LessThan(minInt) {
		return nil, errNotWhole
	}
	return int(d.IntPart()), nil
}
