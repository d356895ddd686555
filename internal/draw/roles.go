package draw

// Role is the presentation role of a layer. Sinks pick colours by role, not
// by layer name, so renaming a layer never changes how it looks.
type Role int

const (
	RoleOther Role = iota
	RoleConcrete
	RoleRebar
	RoleText
)

func (r Role) String() string {
	switch r {
	case RoleConcrete:
		return "concrete"
	case RoleRebar:
		return "rebar"
	case RoleText:
		return "text"
	}
	return "other"
}

// Roles maps layer names to their role.
type Roles map[string]Role

// Of returns the role of layer, or RoleOther for unknown layers.
func (r Roles) Of(layer string) Role {
	if role, ok := r[layer]; ok {
		return role
	}
	return RoleOther
}

// Layers returns the distinct layer names referenced by cmds, in order of
// first use.
func Layers(cmds []Command) []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range cmds {
		name := c.LayerName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
