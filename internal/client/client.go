package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/team-loco/workspaces/internal/entity"
)

const RequestIDHeader = "X-Request-Id"

// Client talks to the entity service. It covers entities, members and
// invitations; every method is a single unary call.
type Client struct {
	host  string
	token string

	whoAmI                *connect.Client[WhoAmIRequest, WhoAmIResponse]
	listEntities          *connect.Client[ListEntitiesRequest, ListEntitiesResponse]
	createEntity          *connect.Client[entity.CreateEntityRequest, CreateEntityResponse]
	listMembers           *connect.Client[ListMembersRequest, ListMembersResponse]
	updateMemberRole      *connect.Client[UpdateMemberRoleRequest, UpdateMemberRoleResponse]
	removeMember          *connect.Client[RemoveMemberRequest, Empty]
	listEntityInvitations *connect.Client[ListEntityInvitationsRequest, ListInvitationsResponse]
	createInvitation      *connect.Client[CreateInvitationRequest, CreateInvitationResponse]
	cancelInvitation      *connect.Client[CancelInvitationRequest, Empty]
	listMyInvitations     *connect.Client[ListMyInvitationsRequest, ListInvitationsResponse]
	acceptInvitation      *connect.Client[RespondInvitationRequest, Empty]
	declineInvitation     *connect.Client[RespondInvitationRequest, Empty]
}

// NewHTTPClient returns the HTTP client used by the CLI.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func NewClient(host, token string) *Client {
	return NewClientWithHTTP(NewHTTPClient(), host, token)
}

// NewClientWithHTTP builds a Client on top of the given HTTP client.
func NewClientWithHTTP(httpClient connect.HTTPClient, host, token string) *Client {
	host = strings.TrimRight(host, "/")
	opts := []connect.ClientOption{connect.WithCodec(Codec{})}

	return &Client{
		host:  host,
		token: token,

		whoAmI:                connect.NewClient[WhoAmIRequest, WhoAmIResponse](httpClient, host+WhoAmIProcedure, opts...),
		listEntities:          connect.NewClient[ListEntitiesRequest, ListEntitiesResponse](httpClient, host+ListEntitiesProcedure, opts...),
		createEntity:          connect.NewClient[entity.CreateEntityRequest, CreateEntityResponse](httpClient, host+CreateEntityProcedure, opts...),
		listMembers:           connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, host+ListMembersProcedure, opts...),
		updateMemberRole:      connect.NewClient[UpdateMemberRoleRequest, UpdateMemberRoleResponse](httpClient, host+UpdateMemberRoleProcedure, opts...),
		removeMember:          connect.NewClient[RemoveMemberRequest, Empty](httpClient, host+RemoveMemberProcedure, opts...),
		listEntityInvitations: connect.NewClient[ListEntityInvitationsRequest, ListInvitationsResponse](httpClient, host+ListEntityInvitationsProcedure, opts...),
		createInvitation:      connect.NewClient[CreateInvitationRequest, CreateInvitationResponse](httpClient, host+CreateInvitationProcedure, opts...),
		cancelInvitation:      connect.NewClient[CancelInvitationRequest, Empty](httpClient, host+CancelInvitationProcedure, opts...),
		listMyInvitations:     connect.NewClient[ListMyInvitationsRequest, ListInvitationsResponse](httpClient, host+ListMyInvitationsProcedure, opts...),
		acceptInvitation:      connect.NewClient[RespondInvitationRequest, Empty](httpClient, host+AcceptInvitationProcedure, opts...),
		declineInvitation:     connect.NewClient[RespondInvitationRequest, Empty](httpClient, host+DeclineInvitationProcedure, opts...),
	}
}

// Host returns the base URL the client was built with.
func (c *Client) Host() string {
	return c.host
}

func (c *Client) authHeader() string {
	return fmt.Sprintf("Bearer %s", c.token)
}

// logRequestID logs the server's request id, only if err is not nil.
func logRequestID(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	var headerValue string
	var cErr *connect.Error

	if errors.As(err, &cErr) {
		headerValue = cErr.Meta().Get(RequestIDHeader)
	}

	slog.ErrorContext(ctx, msg, RequestIDHeader, headerValue, "error", err)
}

func call[Req, Res any](ctx context.Context, c *Client, rpc *connect.Client[Req, Res], msg *Req, failure string) (*Res, error) {
	req := connect.NewRequest(msg)
	if c.token != "" {
		req.Header().Set("Authorization", c.authHeader())
	}

	resp, err := rpc.CallUnary(ctx, req)
	if err != nil {
		logRequestID(ctx, err, failure)
		return nil, err
	}

	return resp.Msg, nil
}

func (c *Client) WhoAmI(ctx context.Context) (User, error) {
	resp, err := call(ctx, c, c.whoAmI, &WhoAmIRequest{}, "failed to get current user")
	if err != nil {
		return User{}, err
	}
	return resp.User, nil
}

func (c *Client) ListEntities(ctx context.Context) ([]entity.Entity, error) {
	resp, err := call(ctx, c, c.listEntities, &ListEntitiesRequest{}, "failed to list entities")
	if err != nil {
		return nil, err
	}
	return resp.Entities, nil
}

// GetEntity looks an entity up by slug among the caller's entities.
func (c *Client) GetEntity(ctx context.Context, slug string) (entity.Entity, error) {
	entities, err := c.ListEntities(ctx)
	if err != nil {
		return entity.Entity{}, err
	}
	e, ok := entity.FindBySlug(entities, slug)
	if !ok {
		return entity.Entity{}, fmt.Errorf("%w: %q", ErrEntityNotFound, slug)
	}
	return e, nil
}

func (c *Client) CreateEntity(ctx context.Context, req entity.CreateEntityRequest) (entity.Entity, error) {
	resp, err := call(ctx, c, c.createEntity, &req, "failed to create entity")
	if err != nil {
		return entity.Entity{}, err
	}
	return resp.Entity, nil
}

func (c *Client) ListMembers(ctx context.Context, entitySlug string) ([]entity.Member, error) {
	resp, err := call(ctx, c, c.listMembers, &ListMembersRequest{EntitySlug: entitySlug}, "failed to list members")
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, entitySlug, memberID string, role entity.Role) (entity.Member, error) {
	resp, err := call(ctx, c, c.updateMemberRole, &UpdateMemberRoleRequest{
		EntitySlug: entitySlug,
		MemberID:   memberID,
		Role:       role,
	}, "failed to update member role")
	if err != nil {
		return entity.Member{}, err
	}
	return resp.Member, nil
}

func (c *Client) RemoveMember(ctx context.Context, entitySlug, memberID string) error {
	_, err := call(ctx, c, c.removeMember, &RemoveMemberRequest{
		EntitySlug: entitySlug,
		MemberID:   memberID,
	}, "failed to remove member")
	return err
}

func (c *Client) ListEntityInvitations(ctx context.Context, entitySlug string) ([]entity.Invitation, error) {
	resp, err := call(ctx, c, c.listEntityInvitations, &ListEntityInvitationsRequest{EntitySlug: entitySlug}, "failed to list entity invitations")
	if err != nil {
		return nil, err
	}
	return resp.Invitations, nil
}

func (c *Client) CreateInvitation(ctx context.Context, entitySlug string, req entity.InviteMemberRequest) (entity.Invitation, error) {
	resp, err := call(ctx, c, c.createInvitation, &CreateInvitationRequest{
		EntitySlug: entitySlug,
		Request:    req,
	}, "failed to create invitation")
	if err != nil {
		return entity.Invitation{}, err
	}
	return resp.Invitation, nil
}

func (c *Client) CancelInvitation(ctx context.Context, entitySlug, invitationID string) error {
	_, err := call(ctx, c, c.cancelInvitation, &CancelInvitationRequest{
		EntitySlug:   entitySlug,
		InvitationID: invitationID,
	}, "failed to cancel invitation")
	return err
}

func (c *Client) ListMyInvitations(ctx context.Context) ([]entity.Invitation, error) {
	resp, err := call(ctx, c, c.listMyInvitations, &ListMyInvitationsRequest{}, "failed to list my invitations")
	if err != nil {
		return nil, err
	}
	return resp.Invitations, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, token string) error {
	_, err := call(ctx, c, c.acceptInvitation, &RespondInvitationRequest{Token: token}, "failed to accept invitation")
	return err
}

func (c *Client) DeclineInvitation(ctx context.Context, token string) error {
	_, err := call(ctx, c, c.declineInvitation, &RespondInvitationRequest{Token: token}, "failed to decline invitation")
	return err
}
