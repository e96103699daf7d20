// Package domain layers Autonomous Systems and Areas over a core.Store.
//
// Each object moves through Unassigned → MemberOfAS (one or more) →
// MemberOfArea (zero or more within each AS). The Model keeps the AS and
// Area pools and every object's core.Membership map in step, so that
// Area ⊆ AS holds after every call; Validate checks it.
//
// ASes and Areas are created only by ASFactory and AreaFactory. Every AS
// starts with a default Area named "Backbone". Membership calls on absent
// objects or unknown Areas are no-ops.
//
// FindEdgeNodes and FindDomainLinks are derived from the trunk layer on every
// call. Export/Import and EncodeYAML/DecodeYAML reconstruct the whole model
// from name-based records.
package domain
