// SPDX-License-Identifier: MPL-2.0

package schema

type (
	// Setting is the immutable definition of one configuration key.
	Setting struct {
		Section      string
		Name         string
		Default      string
		Type         SettingType
		FriendlyName string
		Tooltip      string
	}

	// Section groups related settings in declaration order.
	Section struct {
		Name         string
		FriendlyName string
		Settings     []*Setting
	}

	// Instance describes one configuration file.
	Instance struct {
		Type         InstanceType
		FriendlyName string
		FileLocation string
		Sections     []*Section
	}

	// Registry is the read-only set of known instances.
	Registry struct {
		instances []*Instance
		byType    map[InstanceType]*Instance
	}

	// Option customizes a Registry at construction time.
	Option func(*registryOptions)

	registryOptions struct {
		locations map[InstanceType]string
	}

	// MappingEntry is one default value in a Mapping.
	MappingEntry struct {
		Name  string
		Value string
	}

	// MappingSection is one section of a Mapping.
	MappingSection struct {
		Name    string
		Entries []MappingEntry
	}

	// Mapping is the ordered section -> name -> default value view of an Instance.
	Mapping []MappingSection
)

// WithFileLocation overrides the override-file path of an instance. Empty paths
// are ignored so unset configuration values keep the built-in location.
func WithFileLocation(instance InstanceType, path string) Option {
	return func(o *registryOptions) {
		if path != "" {
			o.locations[instance] = path
		}
	}
}

// NewRegistry builds the registry of built-in instances.
func NewRegistry(opts ...Option) *Registry {
	o := registryOptions{locations: make(map[InstanceType]string)}
	for _, opt := range opts {
		opt(&o)
	}

	instances := builtinInstances()
	r := &Registry{
		instances: instances,
		byType:    make(map[InstanceType]*Instance, len(instances)),
	}
	for _, inst := range instances {
		if loc, ok := o.locations[inst.Type]; ok {
			inst.FileLocation = loc
		}
		r.byType[inst.Type] = inst
	}
	return r
}

// Instances returns every registered instance in declaration order.
func (r *Registry) Instances() []*Instance {
	out := make([]*Instance, len(r.instances))
	copy(out, r.instances)
	return out
}

// LookupInstance returns the definition of an instance.
func (r *Registry) LookupInstance(instance InstanceType) (*Instance, error) {
	inst, ok := r.byType[instance]
	if !ok {
		return nil, &UnknownInstanceError{Instance: instance}
	}
	return inst, nil
}

// LookupSetting returns the definition of a single setting.
func (r *Registry) LookupSetting(instance InstanceType, section, name string) (*Setting, error) {
	inst, err := r.LookupInstance(instance)
	if err != nil {
		return nil, err
	}
	if s := inst.Setting(section, name); s != nil {
		return s, nil
	}
	return nil, &UnknownSettingError{Instance: instance, Section: section, Name: name}
}

// DefaultMapping flattens the defaults of every setting of an instance.
func (r *Registry) DefaultMapping(instance InstanceType) (Mapping, error) {
	inst, err := r.LookupInstance(instance)
	if err != nil {
		return nil, err
	}
	return inst.DefaultMapping(), nil
}

// Section returns the named section, or nil.
func (i *Instance) Section(name string) *Section {
	for _, sec := range i.Sections {
		if sec.Name == name {
			return sec
		}
	}
	return nil
}

// Setting returns the named setting, or nil.
func (i *Instance) Setting(section, name string) *Setting {
	sec := i.Section(section)
	if sec == nil {
		return nil
	}
	return sec.Setting(name)
}

// DefaultMapping returns the defaults of every setting in declaration order.
func (i *Instance) DefaultMapping() Mapping {
	m := make(Mapping, 0, len(i.Sections))
	for _, sec := range i.Sections {
		ms := MappingSection{Name: sec.Name, Entries: make([]MappingEntry, 0, len(sec.Settings))}
		for _, s := range sec.Settings {
			ms.Entries = append(ms.Entries, MappingEntry{Name: s.Name, Value: s.Default})
		}
		m = append(m, ms)
	}
	return m
}

// Setting returns the named setting, or nil.
func (s *Section) Setting(name string) *Setting {
	for _, st := range s.Settings {
		if st.Name == name {
			return st
		}
	}
	return nil
}

// Lookup returns the default for a section/name pair.
func (m Mapping) Lookup(section, name string) (string, bool) {
	for _, sec := range m {
		if sec.Name != section {
			continue
		}
		for _, e := range sec.Entries {
			if e.Name == name {
				return e.Value, true
			}
		}
	}
	return "", false
}
