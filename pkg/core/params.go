package core

// Parameter describes a single named value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the value stored under key in any group.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// Map flattens the snapshot into key/value pairs.
func (s ParameterSnapshot) Map() map[string]string {
	out := make(map[string]string)
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out[p.Key] = p.Value
		}
	}
	return out
}
