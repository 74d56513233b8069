package valgo

// ItemValidator validates one element of an array. Paths inside the returned
// result are relative to the element; ValidateArray re-roots them under the
// element's index.
type ItemValidator func(v any) Result[any]

// ValidateArray checks that v is an array and validates every element with
// item. All elements are visited even after a failure, so one pass reports
// every offending index. Element order is preserved in both the validated
// value and the issue list.
func (e *Engine) ValidateArray(v any, item ItemValidator) Result[[]any] {
	arr, ok := v.([]any)
	if !ok {
		// A non-array fails at the top level with an empty path.
		return Fail[[]any](issueExpected("array"))
	}
	out := make([]any, 0, len(arr))
	var iss Issues
	for i, el := range arr {
		r := item(el).WithPrefix(Index(i))
		if val, ok := r.Value(); ok {
			out = append(out, val)
			continue
		}
		iss = AppendIssues(iss, r.Issues()...)
	}
	if len(iss) > 0 {
		return Fail[[]any](iss...)
	}
	return OK(out)
}
