package suite

// SettingSpace holds raw, possibly multi-valued settings before
// expansion. Set registers values with no cross-setting validation;
// all checking happens in ValidateAndFreeze, which returns a frozen
// copy and leaves the receiver mutable.
//
// A frozen space is read-only and safe to share between consumers.
type SettingSpace struct {
	raw map[Name]any

	// Populated on the frozen copy only.
	frozen   map[Name]*setting
	isFrozen bool
	n        int
}

// NewSettingSpace creates an empty, mutable SettingSpace.
func NewSettingSpace() *SettingSpace {
	return &SettingSpace{raw: make(map[Name]any)}
}

// Set registers or overwrites a setting. The value may be a scalar of
// the setting's kind or a slice of such scalars; nothing is validated
// until ValidateAndFreeze.
//
// Panics when called on a frozen space, as that is a programmer error.
func (s *SettingSpace) Set(name Name, value any) {
	if s.isFrozen {
		panic("suite: Set called on a frozen SettingSpace")
	}
	s.raw[name] = value
}

// Frozen reports whether the space has been validated and frozen.
func (s *SettingSpace) Frozen() bool { return s.isFrozen }

// ExpansionLength returns N, the number of suites the space expands to.
//
// Panics when the space is not frozen: N is only defined after
// validation.
func (s *SettingSpace) ExpansionLength() int {
	if !s.isFrozen {
		panic("suite: ExpansionLength called before ValidateAndFreeze")
	}
	return s.n
}

// ValidateAndFreeze checks the space against the fixed schema and
// returns a frozen copy, leaving the receiver untouched.
//
// For every setting in the schema it confirms presence (filling the
// declared default when absent), verifies the value kind, and finally
// establishes the expansion length N as the unique length shared by
// all list-valued settings (N = 1 when none are list-valued).
//
// Failure modes, all raised here and never during iteration:
//   - *UnknownSettingError: a name outside the schema was Set
//   - *MissingSettingError: a required setting without default is absent
//   - *TypeMismatchError: a value does not match its declared kind
//   - *InconsistentExpansionError: list-valued settings disagree on length
//
// Every returned error wraps ErrConfiguration.
func (s *SettingSpace) ValidateAndFreeze() (*SettingSpace, error) {
	for name := range s.raw {
		if _, ok := schemaLookup(name); !ok {
			return nil, &UnknownSettingError{Name: name}
		}
	}

	frozen := make(map[Name]*setting, len(schema))
	for _, entry := range schema {
		value, ok := s.raw[entry.name]
		if !ok {
			if entry.defaultValue == nil {
				return nil, &MissingSettingError{Name: entry.name}
			}
			value = entry.defaultValue
		}

		values, list, err := normalize(entry.name, entry.kind, value)
		if err != nil {
			return nil, err
		}
		if list && len(values) == 0 {
			return nil, &TypeMismatchError{Name: entry.name, Want: entry.kind, Got: "empty list"}
		}
		frozen[entry.name] = &setting{
			name:   entry.name,
			kind:   entry.kind,
			values: values,
			list:   list,
		}
	}

	n := 1
	var first Name
	for _, entry := range schema {
		st := frozen[entry.name]
		if !st.list {
			continue
		}
		if first == "" {
			first = st.name
			n = len(st.values)
			continue
		}
		if len(st.values) != n {
			return nil, &InconsistentExpansionError{
				Name:  st.name,
				Len:   len(st.values),
				Want:  n,
				First: first,
			}
		}
	}

	return &SettingSpace{
		frozen:   frozen,
		isFrozen: true,
		n:        n,
	}, nil
}

// suiteAt resolves the suite at index i from a frozen space.
func (s *SettingSpace) suiteAt(i int) Suite {
	values := make(map[Name]any, len(s.frozen))
	for name, st := range s.frozen {
		values[name] = st.at(i)
	}
	return Suite{index: i, values: values}
}
