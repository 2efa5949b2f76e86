package mef

import (
	"fmt"

	"github.com/rakhimov/scram-sub001/expression"
)

// Container is a namespace of child elements — a FaultTree (top-level,
// Parent == nil) or a nested Component. Role governs visibility: a
// container's own Role bounds the Role its children may declare (a
// child's role never widens its container's), and reference resolution
// from inside a container walks outward through ancestors' *public*
// members only.
type Container struct {
	Name     string
	Role     Role
	Parent   *Container
	BasePath string // fully-qualified path prefix for this container's children
	model    *Model

	gates       map[string]Role // local name -> role
	basicEvents map[string]Role
	houseEvents map[string]Role
	parameters  map[string]Role
	ccfGroups   map[string]Role
	children    map[string]*Container
}

func newContainer(model *Model, name string, role Role, parent *Container, basePath string) *Container {
	return &Container{
		Name: name, Role: role, Parent: parent, BasePath: basePath, model: model,
		gates:       make(map[string]Role),
		basicEvents: make(map[string]Role),
		houseEvents: make(map[string]Role),
		parameters:  make(map[string]Role),
		ccfGroups:   make(map[string]Role),
		children:    make(map[string]*Container),
	}
}

// qualify joins this container's base path with a local name.
func (c *Container) qualify(local string) string {
	if c.BasePath == "" {
		return local
	}

	return c.BasePath + "." + local
}

// AddComponent declares a nested Component. role must not widen c's own
// role (a private container cannot contain a public component — more
// precisely, RolePublic is only allowed when c itself is RolePublic).
func (c *Container) AddComponent(name string, role Role) (*Container, error) {
	if _, exists := c.children[name]; exists {
		return nil, fmt.Errorf("%w: component %q", ErrDuplicateName, name)
	}
	if role == RolePublic && c.Role != RolePublic {
		return nil, fmt.Errorf("%w: component %q cannot be public inside a private container", ErrScopeViolation, name)
	}
	child := newContainer(c.model, name, role, c, c.qualify(name))
	c.children[name] = child

	return child, nil
}

// AddGate declares a Gate in this container.
func (c *Container) AddGate(name string, role Role, f *Formula) (*Gate, error) {
	if err := c.checkRole(c.gates, name, role); err != nil {
		return nil, err
	}
	qn := c.qualify(name)
	g := &Gate{Name: qn, Role: role, F: f}
	c.model.Gates[qn] = g
	c.gates[name] = role
	c.model.touchParsed()

	return g, nil
}

// AddBasicEvent declares a BasicEvent in this container. expr may be nil
// (undeclared probability). Validate does not reject a nil expr, and
// quant.Probabilities treats one as probability 0.
func (c *Container) AddBasicEvent(name string, role Role, expr *expression.Expression) (*BasicEvent, error) {
	if err := c.checkRole(c.basicEvents, name, role); err != nil {
		return nil, err
	}
	qn := c.qualify(name)
	be := &BasicEvent{Name: qn, Role: role, Expr: expr}
	c.model.BasicEvents[qn] = be
	c.basicEvents[name] = role
	c.model.touchParsed()

	return be, nil
}

// AddHouseEvent declares a HouseEvent in this container.
func (c *Container) AddHouseEvent(name string, role Role, state bool) (*HouseEvent, error) {
	if err := c.checkRole(c.houseEvents, name, role); err != nil {
		return nil, err
	}
	qn := c.qualify(name)
	he := &HouseEvent{Name: qn, Role: role, State: state}
	c.model.HouseEvents[qn] = he
	c.houseEvents[name] = role
	c.model.touchParsed()

	return he, nil
}

// AddParameter declares a Parameter in this container.
func (c *Container) AddParameter(name string, role Role, unit string, expr *expression.Expression) (*Parameter, error) {
	if err := c.checkRole(c.parameters, name, role); err != nil {
		return nil, err
	}
	qn := c.qualify(name)
	p := &Parameter{Name: qn, Role: role, Unit: unit, Expr: expr, Unused: true}
	c.model.Parameters[qn] = p
	c.parameters[name] = role
	c.model.touchParsed()

	return p, nil
}

// AddCcfGroup declares a CcfGroup in this container. members must be
// local basic-event names already declared in this same container.
func (c *Container) AddCcfGroup(name string, role Role, kind CcfKind, members []string, dist *expression.Expression, factors []CcfFactor) (*CcfGroup, error) {
	if err := c.checkRole(c.ccfGroups, name, role); err != nil {
		return nil, err
	}
	qualMembers := make([]string, len(members))
	for i, m := range members {
		if _, ok := c.basicEvents[m]; !ok {
			return nil, fmt.Errorf("%w: ccf group %q member %q not a basic event of this container", ErrUnknownReference, name, m)
		}
		qualMembers[i] = c.qualify(m)
	}
	qn := c.qualify(name)
	g := &CcfGroup{Name: qn, Role: role, Kind: kind, Members: qualMembers, Distribution: dist, Factors: factors}
	c.model.CcfGroups[qn] = g
	c.ccfGroups[name] = role
	c.model.touchParsed()

	return g, nil
}

func (c *Container) checkRole(set map[string]Role, name string, role Role) error {
	if _, exists := set[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if role == RolePublic && c.Role != RolePublic {
		return fmt.Errorf("%w: %q cannot be public inside a private container", ErrScopeViolation, name)
	}

	return nil
}

// Resolve looks up name of the given kind, first within c itself, then
// walking outward through ancestors but only through their public
// members — an ancestor's private member is not visible from a nested
// container even if the name matches.
func (c *Container) Resolve(kind EventKind, name string) (string, error) {
	if _, ok := c.localSet(kind)[name]; ok {
		return c.qualify(name), nil
	}
	for cur := c.Parent; cur != nil; cur = cur.Parent {
		set := cur.localSet(kind)
		role, ok := set[name]
		if !ok {
			continue
		}
		if role != RolePublic {
			return "", fmt.Errorf("%w: %q is private to %s", ErrScopeViolation, name, cur.Name)
		}

		return cur.qualify(name), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReference, name)
}

func (c *Container) localSet(kind EventKind) map[string]Role {
	switch kind {
	case EventGate:
		return c.gates
	case EventBasic:
		return c.basicEvents
	case EventHouse:
		return c.houseEvents
	default:
		return nil
	}
}
