// Package jsonpatch reports how an evaluated case record differs from the
// submitted one, as an RFC 6902 patch. Hosts apply it to decide which
// columns a write actually touched.
package jsonpatch

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"perm-engine/internal/model"
)

// DiffCases computes the patch transforming before into after. Both records
// are compared through their wire shape, so paths use the snake_case field
// names.
func DiffCases(before, after *model.CaseData) []model.PatchOp {
	return diff(toValue(before), toValue(after), "")
}

func toValue(c *model.CaseData) any {
	b, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	return v
}

func diff(a, b any, path string) []model.PatchOp {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []model.PatchOp{{Op: "replace", Path: path, Value: b}}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if a != b {
		return []model.PatchOp{{Op: "replace", Path: path, Value: b}}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) []model.PatchOp {
	var ops []model.PatchOp
	for k := range a {
		if _, ok := b[k]; !ok {
			ops = append(ops, model.PatchOp{Op: "remove", Path: path + "/" + escapeKey(k)})
		}
	}
	for k, bv := range b {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, model.PatchOp{Op: "add", Path: childPath, Value: bv})
			continue
		}
		ops = append(ops, diff(av, bv, childPath)...)
	}
	return ops
}

func diffArrays(a, b []any, path string) []model.PatchOp {
	var ops []model.PatchOp
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		ops = append(ops, diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}
	// Removals run in reverse order to keep indices valid.
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, model.PatchOp{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}
	for i := minLen; i < len(b); i++ {
		ops = append(ops, model.PatchOp{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}
	return ops
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
