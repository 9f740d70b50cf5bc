package client

import "github.com/team-loco/workspaces/internal/entity"

const ServiceName = "entity.v1.EntityService"

const (
	WhoAmIProcedure                = "/" + ServiceName + "/WhoAmI"
	ListEntitiesProcedure          = "/" + ServiceName + "/ListEntities"
	CreateEntityProcedure          = "/" + ServiceName + "/CreateEntity"
	ListMembersProcedure           = "/" + ServiceName + "/ListMembers"
	UpdateMemberRoleProcedure      = "/" + ServiceName + "/UpdateMemberRole"
	RemoveMemberProcedure          = "/" + ServiceName + "/RemoveMember"
	ListEntityInvitationsProcedure = "/" + ServiceName + "/ListEntityInvitations"
	CreateInvitationProcedure      = "/" + ServiceName + "/CreateInvitation"
	CancelInvitationProcedure      = "/" + ServiceName + "/CancelInvitation"
	ListMyInvitationsProcedure     = "/" + ServiceName + "/ListMyInvitations"
	AcceptInvitationProcedure      = "/" + ServiceName + "/AcceptInvitation"
	DeclineInvitationProcedure     = "/" + ServiceName + "/DeclineInvitation"
)

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type WhoAmIRequest struct{}

type WhoAmIResponse struct {
	User User `json:"user"`
}

type ListEntitiesRequest struct{}

type ListEntitiesResponse struct {
	Entities []entity.Entity `json:"entities"`
}

type CreateEntityResponse struct {
	Entity entity.Entity `json:"entity"`
}

type ListMembersRequest struct {
	EntitySlug string `json:"entitySlug"`
}

type ListMembersResponse struct {
	Members []entity.Member `json:"members"`
}

type UpdateMemberRoleRequest struct {
	EntitySlug string      `json:"entitySlug"`
	MemberID   string      `json:"memberId"`
	Role       entity.Role `json:"role"`
}

type UpdateMemberRoleResponse struct {
	Member entity.Member `json:"member"`
}

type RemoveMemberRequest struct {
	EntitySlug string `json:"entitySlug"`
	MemberID   string `json:"memberId"`
}

type ListEntityInvitationsRequest struct {
	EntitySlug string `json:"entitySlug"`
}

type ListInvitationsResponse struct {
	Invitations []entity.Invitation `json:"invitations"`
}

type CreateInvitationRequest struct {
	EntitySlug string                     `json:"entitySlug"`
	Request    entity.InviteMemberRequest `json:"request"`
}

type CreateInvitationResponse struct {
	Invitation entity.Invitation `json:"invitation"`
}

type CancelInvitationRequest struct {
	EntitySlug   string `json:"entitySlug"`
	InvitationID string `json:"invitationId"`
}

type ListMyInvitationsRequest struct{}

// RespondInvitationRequest accepts or declines an invitation by token.
type RespondInvitationRequest struct {
	Token string `json:"token"`
}

type Empty struct{}
