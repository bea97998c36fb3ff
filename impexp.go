package kirabuku

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file handles the import of the legacy web application's state: the
// raw value of its localStorage key ("silat_management_v2"), possibly
// wrapped in whatever envelope a browser extension exported it with.

// ImportLegacy reads a legacy state export from 'r' and rebuilds a Store.
//
// The export is a single JSON object holding 'members', 'payments' and
// 'transactions' arrays; any of them may be absent. The collections are
// located with JSONPath rather than a rigid struct so that exports wrapped
// in an extra envelope level still import.
func ImportLegacy(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read legacy export: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("legacy export is not valid JSON: %w", err)
	}

	s := NewStore()
	if err := importCollection(jobj, "$..members", &s.members); err != nil {
		return nil, err
	}
	if err := importCollection(jobj, "$..payments", &s.payments); err != nil {
		return nil, err
	}
	if err := importCollection(jobj, "$..transactions", &s.transactions); err != nil {
		return nil, err
	}
	return s, nil
}

// importCollection locates a collection in the decoded export and decodes
// it into 'out'. A missing collection leaves 'out' untouched.
func importCollection[T any](jobj any, path string, out *[]T) error {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// jsonpath reports an error for an absent path; the legacy app wrote
		// whatever collections happened to be non-empty.
		return nil
	}
	for _, items := range answers(jval) {
		if len(items) == 0 {
			continue
		}
		// Round-trip through JSON to reuse the typed decoding of the models.
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("could not re-encode legacy collection %q: %w", path, err)
		}
		var typed []T
		if err := json.Unmarshal(raw, &typed); err != nil {
			return fmt.Errorf("could not parse legacy collection %q: %w", path, err)
		}
		*out = typed
		return nil
	}
	return nil
}

// answers normalizes a jsonpath result, because jsonpath is never clear
// about whether it returns a list of answers or a single answer: a
// recursive-descent query yields a list of matches, each a collection,
// while a direct hit yields the collection itself.
func answers(jval any) [][]any {
	list, ok := jval.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	if _, nested := list[0].([]any); !nested {
		return [][]any{list}
	}
	var out [][]any
	for _, c := range list {
		if items, ok := c.([]any); ok {
			out = append(out, items)
		}
	}
	return out
}
