// File: properties.go
// Role: Name-keyed property access over the statically typed Node and Link records.
// Policy:
//   - The tables are built once at package init and never mutated.
//   - Values cross the boundary as typed scalars on Get and as strings on Set,
//     which is what spreadsheet rows and property editors carry.

package core

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// ErrUnknownProperty indicates a property name outside the table.
	ErrUnknownProperty = errors.New("core: unknown property")

	// ErrReadOnlyProperty indicates an attempt to set an identity or structural field.
	ErrReadOnlyProperty = errors.New("core: read-only property")

	// ErrBadPropertyValue indicates the string could not be parsed into the field type.
	ErrBadPropertyValue = errors.New("core: bad property value")
)

type nodeAccessor struct {
	get func(*Node) any
	set func(*Node, string) error
}

type linkAccessor struct {
	get func(*Link) any
	set func(*Link, string) error
}

var (
	nodeProps     map[string]nodeAccessor
	linkProps     map[string]linkAccessor
	nodePropNames []string
	linkPropNames []string
)

func parseFloat(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadPropertyValue, v)
		}
		*dst = f
		return nil
	}
}

func parseInt(dst *int64) func(string) error {
	return func(v string) error {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadPropertyValue, v)
		}
		*dst = i
		return nil
	}
}

func nodeFloat(field func(*Node) *float64) nodeAccessor {
	return nodeAccessor{
		get: func(n *Node) any { return *field(n) },
		set: func(n *Node, v string) error { return parseFloat(field(n))(v) },
	}
}

func linkInt(field func(*Link) *int64) linkAccessor {
	return linkAccessor{
		get: func(l *Link) any { return *field(l) },
		set: func(l *Link, v string) error { return parseInt(field(l))(v) },
	}
}

func init() {
	nodeProps = map[string]nodeAccessor{
		"id":   {get: func(n *Node) any { return n.ID }},
		"name": {get: func(n *Node) any { return n.Name }},
		"kind": {get: func(n *Node) any { return n.Kind.String() }},
		"x":    nodeFloat(func(n *Node) *float64 { return &n.X }),
		"y":    nodeFloat(func(n *Node) *float64 { return &n.Y }),
	}
	linkProps = map[string]linkAccessor{
		"id":          {get: func(l *Link) any { return l.ID }},
		"name":        {get: func(l *Link) any { return l.Name }},
		"type":        {get: func(l *Link) any { return l.Type.String() }},
		"source":      {get: func(l *Link) any { return l.Source }},
		"destination": {get: func(l *Link) any { return l.Destination }},
		"costSD":      linkInt(func(l *Link) *int64 { return &l.CostSD }),
		"costDS":      linkInt(func(l *Link) *int64 { return &l.CostDS }),
		"capacitySD":  linkInt(func(l *Link) *int64 { return &l.CapacitySD }),
		"capacityDS":  linkInt(func(l *Link) *int64 { return &l.CapacityDS }),
		"flowSD":      {get: func(l *Link) any { return l.FlowSD }},
		"flowDS":      {get: func(l *Link) any { return l.FlowDS }},
		"path":        {get: func(l *Link) any { return slices.Clone(l.Path) }},
	}
	for name := range nodeProps {
		nodePropNames = append(nodePropNames, name)
	}
	for name := range linkProps {
		linkPropNames = append(linkPropNames, name)
	}
	slices.Sort(nodePropNames)
	slices.Sort(linkPropNames)
}

// NodeProperties lists the property names of nodes in lexical order.
func NodeProperties() []string { return slices.Clone(nodePropNames) }

// LinkProperties lists the property names of links in lexical order.
func LinkProperties() []string { return slices.Clone(linkPropNames) }

// GetNodeProperty returns the typed value of the named node property.
func GetNodeProperty(n *Node, name string) (any, error) {
	acc, ok := nodeProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: node.%s", ErrUnknownProperty, name)
	}
	return acc.get(n), nil
}

// SetNodeProperty parses value into the named node property.
// Renames go through Store.RenameNode so the name index stays a bijection.
func SetNodeProperty(n *Node, name, value string) error {
	acc, ok := nodeProps[name]
	if !ok {
		return fmt.Errorf("%w: node.%s", ErrUnknownProperty, name)
	}
	if acc.set == nil {
		return fmt.Errorf("%w: node.%s", ErrReadOnlyProperty, name)
	}
	return acc.set(n, value)
}

// GetLinkProperty returns the typed value of the named link property.
func GetLinkProperty(l *Link, name string) (any, error) {
	acc, ok := linkProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: link.%s", ErrUnknownProperty, name)
	}
	return acc.get(l), nil
}

// SetLinkProperty parses value into the named link property.
// Flow fields are read-only: only the flow solvers write them.
func SetLinkProperty(l *Link, name, value string) error {
	acc, ok := linkProps[name]
	if !ok {
		return fmt.Errorf("%w: link.%s", ErrUnknownProperty, name)
	}
	if acc.set == nil {
		return fmt.Errorf("%w: link.%s", ErrReadOnlyProperty, name)
	}
	return acc.set(l, value)
}
