package jsonschema

import "github.com/kaptinlin/go-i18n"

// KeywordError is one machine-readable validation failure. Keyword/Value
// are mandatory; Code/Params are present only when the failing rule
// registered a localizable message and are consumed by Localize.
type KeywordError struct {
	Keyword string
	Value   Value
	Message string
	Code    string
	Params  map[string]any
}

// Localize renders the error through localizer, falling back to the
// plain Message when localizer is nil or the code has no translation.
func (e KeywordError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil && e.Code != "" {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Message
}

// ErrorGroup collects every KeywordError raised at one instance location,
// preserving the order the keywords were evaluated in.
type ErrorGroup struct {
	Path   string
	Errors []KeywordError
}

// GroupErrors folds a flat accumulator of ErrorRecord into ErrorGroups,
// one per distinct Path, in first-seen order.
func GroupErrors(records []ErrorRecord) []ErrorGroup {
	groups := make([]ErrorGroup, 0)
	index := make(map[string]int)
	for _, r := range records {
		loc := r.Path.String()
		i, ok := index[loc]
		if !ok {
			i = len(groups)
			index[loc] = i
			groups = append(groups, ErrorGroup{Path: loc})
		}
		groups[i].Errors = append(groups[i].Errors, KeywordError{
			Keyword: r.Keyword,
			Value:   r.Value,
			Message: r.Message,
			Code:    r.Code,
			Params:  r.Params,
		})
	}
	return groups
}
