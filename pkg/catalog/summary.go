package catalog

// RequiredParam is a display summary of one required schema parameter.
// Values are derived fresh on each Summarize call and never cached: schemas
// are small and static within a load.
type RequiredParam struct {
	Name string
	Type string
}

// typeUnknown is reported when a required name has no typed property entry.
const typeUnknown = "unknown"

// Summarize extracts the required parameter names and their declared types
// from a schema fragment. Output order equals the declared required order —
// that order is the user-visible contract for the parameter chips. Dangling
// required names (no matching property) are emitted with type "unknown"
// rather than dropped, so a sloppy schema still renders.
func Summarize(schema SchemaNode) []RequiredParam {
	if len(schema.Required) == 0 {
		return nil
	}

	params := make([]RequiredParam, 0, len(schema.Required))
	for _, name := range schema.Required {
		typ := typeUnknown
		if prop, ok := schema.Properties[name]; ok && prop.Type != "" {
			typ = prop.Type
		}
		params = append(params, RequiredParam{Name: name, Type: typ})
	}

	return params
}
