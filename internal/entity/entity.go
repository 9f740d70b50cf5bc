// Package entity holds the workspace data model shared by the client, the
// components and the pages.
package entity

import (
	"time"
)

// Type distinguishes single-user workspaces from multi-user ones.
type Type string

const (
	TypePersonal     Type = "personal"
	TypeOrganization Type = "organization"
)

// Entity is a workspace as seen by the calling user. Role is the caller's
// role within it.
type Entity struct {
	ID          string    `json:"id"`
	Slug        string    `json:"entitySlug"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description,omitempty"`
	Type        Type      `json:"entityType"`
	Role        Role      `json:"userRole"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsPersonal reports whether the entity is a personal workspace. Personal
// workspaces cannot have members.
func (e Entity) IsPersonal() bool {
	return e.Type == TypePersonal
}

// CanManage reports whether the caller may invite, re-role and remove members.
func (e Entity) CanManage() bool {
	return e.Role == RoleAdmin
}

// CreateEntityRequest creates an organization. Description is nil when the
// user left it blank.
type CreateEntityRequest struct {
	DisplayName string  `json:"displayName"`
	Description *string `json:"description,omitempty"`
}

// Partition splits entities into personal and organization groups, keeping
// the input order. Entities of any other type are left out of both.
func Partition(entities []Entity) (personal, organizations []Entity) {
	personal = make([]Entity, 0, len(entities))
	organizations = make([]Entity, 0, len(entities))
	for _, e := range entities {
		switch e.Type {
		case TypePersonal:
			personal = append(personal, e)
		case TypeOrganization:
			organizations = append(organizations, e)
		}
	}
	return personal, organizations
}

// FindBySlug returns the entity with the given slug.
func FindBySlug(entities []Entity, slug string) (Entity, bool) {
	for _, e := range entities {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entity{}, false
}
