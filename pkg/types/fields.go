package types

import (
	"fmt"
	"math"
	"sort"
)

// checkFields returns ErrStructural when m does not carry exactly the
// fields in want.
func checkFields(entity string, m map[string]any, want []string) error {
	if m == nil {
		return fmt.Errorf("%w: %s: nil mapping", ErrStructural, entity)
	}
	allowed := make(map[string]bool, len(want))
	for _, f := range want {
		allowed[f] = true
		if _, ok := m[f]; !ok {
			return fmt.Errorf("%w: %s: missing field %q", ErrStructural, entity, f)
		}
	}
	var unknown []string
	for k := range m {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s: unknown field %q", ErrStructural, entity, unknown[0])
	}
	return nil
}

// int64er matches json.Number and equivalent number types from other decoders.
type int64er interface {
	Int64() (int64, error)
}

// intField reads an integral value. Decoders hand numbers back as float64,
// json.Number, or native ints depending on their configuration.
func intField(entity string, m map[string]any, key string) (int, error) {
	switch v := m[key].(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s: field %q is not an integer", ErrStructural, entity, key)
		}
		return int(v), nil
	case int64er:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: field %q is not an integer", ErrStructural, entity, key)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s: field %q has type %T, want integer", ErrStructural, entity, key, m[key])
	}
}

func stringField(entity string, m map[string]any, key string) (string, error) {
	s, ok := m[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: field %q has type %T, want string", ErrStructural, entity, key, m[key])
	}
	return s, nil
}

// intListField reads a sequence of integers. A nil value is rejected; an
// empty sequence is not.
func intListField(entity string, m map[string]any, key string) ([]int, error) {
	switch v := m[key].(type) {
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]int, 0, len(v))
		for i := range v {
			n, err := intField(entity, map[string]any{key: v[i]}, key)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s: field %q has type %T, want list of integers", ErrStructural, entity, key, m[key])
	}
}
