package schema

// ValidateArguments checks an argument bag against a list of parameter
// specifications and returns every violation found.
//
// For each specification: a required key absent from args yields a
// violation; a present value is checked against the declared type and then
// against every rule, each failure adding its own message. Optional absent
// parameters are skipped. Keys in args with no matching specification are
// ignored; actions see the full bag regardless.
func ValidateArguments(params []*Parameter, args map[string]any) ErrorSet {
	set := ErrorSet{}

	for _, p := range params {
		value, present := args[p.Key()]
		if !present {
			if p.IsRequired() {
				set.Add(p.Key(), "required parameter is missing")
			}
			continue
		}

		if err := p.Type().Validate(value); err != nil {
			set.Add(p.Key(), err.Error())
			// A value of the wrong type would trip every rule; report the
			// type mismatch alone.
			continue
		}

		for _, rule := range p.Rules() {
			if err := rule.Check(value); err != nil {
				set.Add(p.Key(), err.Error())
			}
		}
	}

	return set
}
