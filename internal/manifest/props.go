package manifest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// decodeResponsive converts a raw manifest value into a responsive prop. A
// scalar is the base value; a mapping is keyed by breakpoint name and null
// entries are treated as absent.
func decodeResponsive[T ~string](field string, raw any, check func(field string, v T) error) (style.Responsive[T], error) {
	if raw == nil {
		return style.Unset[T](), nil
	}

	entries, isMap, err := asMapping(field, raw)
	if err != nil {
		return style.Unset[T](), err
	}
	if !isMap {
		s, err := scalarString(field, raw)
		if err != nil {
			return style.Unset[T](), err
		}
		if err := check(field, T(s)); err != nil {
			return style.Unset[T](), err
		}
		return style.Scalar(T(s)), nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[style.Breakpoint]T, len(entries))
	seen := make(map[style.Breakpoint]string, len(entries))
	for _, key := range keys {
		entryField := field + "." + key
		bp, err := style.ParseBreakpoint(key)
		if err != nil {
			return style.Unset[T](), &stylekiterrors.ValidationError{
				Field:      entryField,
				Message:    fmt.Sprintf("unknown breakpoint %q", key),
				Suggestion: suggest(key, style.BreakpointNames()),
				Err:        err,
			}
		}
		if first, dup := seen[bp]; dup {
			return style.Unset[T](), stylekiterrors.NewValidationError(entryField, fmt.Sprintf("breakpoint %q is already set as %q", key, first), nil)
		}
		seen[bp] = key

		value := entries[key]
		if value == nil {
			continue
		}
		s, err := scalarString(entryField, value)
		if err != nil {
			return style.Unset[T](), err
		}
		if err := check(entryField, T(s)); err != nil {
			return style.Unset[T](), err
		}
		values[bp] = T(s)
	}
	return style.ByBreakpoint(values), nil
}

func asMapping(field string, raw any) (map[string]any, bool, error) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true, nil
	case []any:
		return nil, false, stylekiterrors.NewValidationError(field, "expected a value or a breakpoint mapping, got a list", nil)
	default:
		return nil, false, nil
	}
}

func scalarString(field string, raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", stylekiterrors.NewValidationError(field, fmt.Sprintf("expected a string or number, got %T", raw), nil)
	}
}

// enumCheck validates a value against an enumerated property domain.
func enumCheck[T style.Enum[T]](field string, v T) error {
	if err := validatorInstance().Var(string(v), "oneof="+strings.Join(style.Names[T](), " ")); err == nil {
		return nil
	}
	return &stylekiterrors.ValidationError{
		Field:      field,
		Message:    fmt.Sprintf("invalid value %q (allowed: %s)", string(v), strings.Join(style.Names[T](), ", ")),
		Suggestion: suggest(string(v), style.Names[T]()),
	}
}

func gapCheck(field string, v style.Gap) error {
	if !v.Valid() || strings.ContainsAny(string(v), " \t") {
		return stylekiterrors.NewValidationError(field, fmt.Sprintf("invalid gap %q", string(v)), nil)
	}
	return nil
}

func decodeEnum[T style.Enum[T]](field string, raw any) (style.Responsive[T], error) {
	return decodeResponsive(field, raw, enumCheck[T])
}

func decodeBool(field string, raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, stylekiterrors.NewValidationError(field, fmt.Sprintf("expected true or false, got %T", raw), nil)
	}
}
