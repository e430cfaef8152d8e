package results

import (
	"cmp"
	"fmt"
	"slices"
)

// anyResult is satisfied by every instantiation of Result and by nothing
// else; anySuccess and anyFailure are unexported, so foreign types with
// look-alike method sets cannot sneak in.
type anyResult interface {
	IsSuccess() bool
	IsFailure() bool
	anySuccess() any
	anyFailure() any
}

// IsResultType reports whether v is a Result, whatever its payload types.
// It is a type-identity test, not a structural one.
func IsResultType(v any) bool {
	_, ok := v.(anyResult)
	return ok
}

// Collect turns a slice of Results into a Result of a slice. Elements are
// visited in order, and the first failure is returned immediately with later
// elements left unexamined. If every element is a success, Collect returns a
// success holding a newly allocated slice of the payloads in their original
// order. An empty input collects into a success holding an empty slice.
func Collect[S, E any](rs []Result[S, E]) Result[[]S, E] {
	vals := make([]S, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return Failure[[]S, E](r.failure)
		}
		vals = append(vals, r.val)
	}
	return Success[[]S, E](vals)
}

// CollectMap turns a map of Results into a Result of a map with the same
// keys and the success payloads as values. Go maps have no insertion order,
// so entries are visited in ascending key order and the first failure in
// that order is the one returned. An empty input collects into a success
// holding an empty map.
func CollectMap[K cmp.Ordered, S, E any](m map[K]Result[S, E]) Result[map[K]S, E] {
	out := make(map[K]S, len(m))
	for _, k := range sortedKeys(m) {
		r := m[k]
		if !r.ok {
			return Failure[map[K]S, E](r.failure)
		}
		out[k] = r.val
	}
	return Success[map[K]S, E](out)
}

// CollectKeyed is the mixed-value form of CollectMap for maps whose values
// are only partly Results. Entries are visited in ascending key order. A
// value that is a Result is unwrapped: a failure is returned immediately
// (later entries unexamined) and a success contributes its payload under the
// same key. A value that is not a Result passes through unchanged. An empty
// input collects into a success holding an empty map.
//
// Result detection uses IsResultType, so plain values whose types merely
// resemble Result are passed through rather than unwrapped. Every failing
// Result in m must carry a payload assignable to E; a mismatch is a caller
// type error and panics.
func CollectKeyed[K cmp.Ordered, E any](m map[K]any) Result[map[K]any, E] {
	out := make(map[K]any, len(m))
	for _, k := range sortedKeys(m) {
		v := m[k]
		r, ok := v.(anyResult)
		if !ok {
			out[k] = v
			continue
		}
		if r.IsFailure() {
			return Failure[map[K]any, E](failurePayload[E](r))
		}
		out[k] = r.anySuccess()
	}
	return Success[map[K]any, E](out)
}

// Traverse maps items through fn and collects the outcomes, stopping at the
// first failure; fn is not invoked for the remaining items.
func Traverse[A, S, E any](items []A, fn func(A) Result[S, E]) Result[[]S, E] {
	vals := make([]S, 0, len(items))
	for _, item := range items {
		r := fn(item)
		if !r.ok {
			return Failure[[]S, E](r.failure)
		}
		vals = append(vals, r.val)
	}
	return Success[[]S, E](vals)
}

// Partition splits a slice of Results into the success payloads and the
// failure payloads, preserving encounter order on both sides.
func Partition[S, E any](rs []Result[S, E]) ([]S, []E) {
	vals := make([]S, 0, len(rs))
	failures := make([]E, 0, len(rs))
	for _, r := range rs {
		if r.ok {
			vals = append(vals, r.val)
		} else {
			failures = append(failures, r.failure)
		}
	}
	return vals, failures
}

func failurePayload[E any](r anyResult) E {
	payload := r.anyFailure()
	if payload == nil {
		var zero E
		return zero
	}
	failure, ok := payload.(E)
	if !ok {
		panic(fmt.Sprintf("results: failure payload of type %T is not assignable to the collected failure type", payload))
	}
	return failure
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
