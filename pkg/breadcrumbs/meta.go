package breadcrumbs

import "github.com/mesh-intelligence/breadcrumbs/pkg/types"

// MergeMeta merges display option records, highest priority first: the
// live route's options, then each matched route's options from the
// outermost layout inward. A key takes the value of the first source that
// sets it to a non-nil value. Nested records merge recursively under the
// same rule; two lists under one key concatenate, higher priority first.
func MergeMeta(current map[string]any, matched ...map[string]any) map[string]any {
	out := make(map[string]any)
	mergeInto(out, current)
	for _, m := range matched {
		mergeInto(out, m)
	}
	return out
}

// mergeInto fills dst from a lower priority src.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if v == nil {
			continue
		}
		have, ok := dst[k]
		if !ok {
			dst[k] = types.CloneValue(v)
			continue
		}
		switch h := have.(type) {
		case map[string]any:
			if sv, ok := v.(map[string]any); ok {
				mergeInto(h, sv)
			}
		case []any:
			if sv, ok := v.([]any); ok {
				dst[k] = append(h, types.CloneValue(sv).([]any)...)
			}
		}
	}
}
