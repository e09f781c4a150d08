package differ

// defaultSeverity is the severity of a construct change before rules apply.
func defaultSeverity(t OperationChangeType, action Action) Severity {
	switch action {
	case ActionAdded:
		if t == ChangeParameter {
			return SeverityWarning
		}
		return SeverityInfo
	case ActionDeleted:
		if t == ChangeResponseHeader {
			return SeverityWarning
		}
		return SeverityError
	default:
		return SeverityWarning
	}
}

// classify assigns a severity to every route and operation change.
func classify(result *Result, rules *BreakingRulesConfig) {
	for i := range result.AddedRoutes {
		r := &result.AddedRoutes[i]
		r.Severity, r.Ignored = rules.routeRule(ActionAdded).ApplyRule(SeverityInfo)
	}
	for i := range result.DeletedRoutes {
		r := &result.DeletedRoutes[i]
		r.Severity, r.Ignored = rules.routeRule(ActionDeleted).ApplyRule(SeverityCritical)
	}
	for i := range result.ChangedRoutes {
		r := &result.ChangedRoutes[i]
		r.Ignored = true
		for j := range r.Changes {
			c := &r.Changes[j]
			c.Severity, c.Ignored = rules.constructRules(c.Type).rule(c.Action).ApplyRule(defaultSeverity(c.Type, c.Action))
			if c.Ignored {
				continue
			}
			if r.Ignored || c.Severity > r.Severity {
				r.Severity = c.Severity
			}
			r.Ignored = false
		}
	}
}

// Summary counts the changes of a Result by severity. Ignored changes are
// not counted.
type Summary struct {
	Critical int `json:"critical" yaml:"critical"`
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Info     int `json:"info" yaml:"info"`
	Ignored  int `json:"ignored" yaml:"ignored"`
}

// Breaking returns the number of changes at error severity or above.
func (s Summary) Breaking() int {
	return s.Critical + s.Errors
}

func (s *Summary) add(sev Severity, ignored bool) {
	if ignored {
		s.Ignored++
		return
	}
	switch sev {
	case SeverityCritical:
		s.Critical++
	case SeverityError:
		s.Errors++
	case SeverityWarning:
		s.Warnings++
	default:
		s.Info++
	}
}

// Summary counts added and deleted routes and the individual changes of
// changed routes.
func (r *Result) Summary() Summary {
	var s Summary
	for _, rt := range r.AddedRoutes {
		s.add(rt.Severity, rt.Ignored)
	}
	for _, rt := range r.DeletedRoutes {
		s.add(rt.Severity, rt.Ignored)
	}
	for _, rt := range r.ChangedRoutes {
		for _, c := range rt.Changes {
			s.add(c.Severity, c.Ignored)
		}
	}
	return s
}

// HasBreakingChanges reports whether any change that is not ignored has
// error severity or above.
func (r *Result) HasBreakingChanges() bool {
	return r.Summary().Breaking() > 0
}
