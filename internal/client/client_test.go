package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/entity"
)

type testServer struct {
	mux        *http.ServeMux
	authHeader string
}

func newTestServer(t *testing.T) (*testServer, *client.Client) {
	t.Helper()
	ts := &testServer{mux: http.NewServeMux()}
	srv := httptest.NewServer(ts.mux)
	t.Cleanup(srv.Close)
	return ts, client.NewClientWithHTTP(srv.Client(), srv.URL+"/", "secret")
}

func handle[Req, Res any](ts *testServer, procedure string, fn func(*Req) (*Res, error)) {
	ts.mux.Handle(procedure, connect.NewUnaryHandler(procedure,
		func(_ context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
			ts.authHeader = req.Header().Get("Authorization")
			res, err := fn(req.Msg)
			if err != nil {
				return nil, err
			}
			return connect.NewResponse(res), nil
		},
		connect.WithCodec(client.Codec{}),
	))
}

func TestListEntities(t *testing.T) {
	ts, c := newTestServer(t)
	handle(ts, client.ListEntitiesProcedure, func(*client.ListEntitiesRequest) (*client.ListEntitiesResponse, error) {
		return &client.ListEntitiesResponse{Entities: []entity.Entity{
			{Slug: "me", Type: entity.TypePersonal, Role: entity.RoleAdmin},
			{Slug: "acme", Type: entity.TypeOrganization, Role: entity.RoleMember},
		}}, nil
	})

	entities, err := c.ListEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "acme", entities[1].Slug)
	assert.Equal(t, entity.TypeOrganization, entities[1].Type)
	assert.Equal(t, "Bearer secret", ts.authHeader)
}

func TestGetEntityNotFound(t *testing.T) {
	ts, c := newTestServer(t)
	handle(ts, client.ListEntitiesProcedure, func(*client.ListEntitiesRequest) (*client.ListEntitiesResponse, error) {
		return &client.ListEntitiesResponse{}, nil
	})

	_, err := c.GetEntity(context.Background(), "ghost")
	assert.ErrorIs(t, err, client.ErrEntityNotFound)
}

func TestCreateEntity(t *testing.T) {
	ts, c := newTestServer(t)
	var got entity.CreateEntityRequest
	handle(ts, client.CreateEntityProcedure, func(req *entity.CreateEntityRequest) (*client.CreateEntityResponse, error) {
		got = *req
		return &client.CreateEntityResponse{Entity: entity.Entity{Slug: "acme", DisplayName: req.DisplayName}}, nil
	})

	e, err := c.CreateEntity(context.Background(), entity.CreateEntityRequest{DisplayName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "acme", e.Slug)
	assert.Equal(t, "Acme", got.DisplayName)
	assert.Nil(t, got.Description)
}

func TestCreateEntityRejected(t *testing.T) {
	ts, c := newTestServer(t)
	handle(ts, client.CreateEntityProcedure, func(*entity.CreateEntityRequest) (*client.CreateEntityResponse, error) {
		return nil, connect.NewError(connect.CodeAlreadyExists, errors.New("slug already taken"))
	})

	_, err := c.CreateEntity(context.Background(), entity.CreateEntityRequest{DisplayName: "Acme"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))
	assert.Equal(t, "slug already taken", client.ErrorMessage(err, "fallback"))
}

func TestMemberOperations(t *testing.T) {
	ts, c := newTestServer(t)
	var updated client.UpdateMemberRoleRequest
	var removed client.RemoveMemberRequest
	handle(ts, client.ListMembersProcedure, func(req *client.ListMembersRequest) (*client.ListMembersResponse, error) {
		return &client.ListMembersResponse{Members: []entity.Member{{ID: "m1", UserID: "u1", Role: entity.RoleAdmin}}}, nil
	})
	handle(ts, client.UpdateMemberRoleProcedure, func(req *client.UpdateMemberRoleRequest) (*client.UpdateMemberRoleResponse, error) {
		updated = *req
		return &client.UpdateMemberRoleResponse{Member: entity.Member{ID: req.MemberID, Role: req.Role}}, nil
	})
	handle(ts, client.RemoveMemberProcedure, func(req *client.RemoveMemberRequest) (*client.Empty, error) {
		removed = *req
		return &client.Empty{}, nil
	})

	ctx := context.Background()
	members, err := c.ListMembers(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, members, 1)

	m, err := c.UpdateMemberRole(ctx, "acme", "m1", entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, m.Role)
	assert.Equal(t, client.UpdateMemberRoleRequest{EntitySlug: "acme", MemberID: "m1", Role: entity.RoleManager}, updated)

	require.NoError(t, c.RemoveMember(ctx, "acme", "m1"))
	assert.Equal(t, client.RemoveMemberRequest{EntitySlug: "acme", MemberID: "m1"}, removed)
}

func TestInvitationOperations(t *testing.T) {
	ts, c := newTestServer(t)
	var created client.CreateInvitationRequest
	var cancelled client.CancelInvitationRequest
	var accepted, declined string

	handle(ts, client.CreateInvitationProcedure, func(req *client.CreateInvitationRequest) (*client.CreateInvitationResponse, error) {
		created = *req
		return &client.CreateInvitationResponse{Invitation: entity.Invitation{ID: "i1", Email: req.Request.Email}}, nil
	})
	handle(ts, client.CancelInvitationProcedure, func(req *client.CancelInvitationRequest) (*client.Empty, error) {
		cancelled = *req
		return &client.Empty{}, nil
	})
	handle(ts, client.ListMyInvitationsProcedure, func(*client.ListMyInvitationsRequest) (*client.ListInvitationsResponse, error) {
		return &client.ListInvitationsResponse{Invitations: []entity.Invitation{{ID: "i2", Token: "tok", Status: entity.InvitationPending}}}, nil
	})
	handle(ts, client.AcceptInvitationProcedure, func(req *client.RespondInvitationRequest) (*client.Empty, error) {
		accepted = req.Token
		return &client.Empty{}, nil
	})
	handle(ts, client.DeclineInvitationProcedure, func(req *client.RespondInvitationRequest) (*client.Empty, error) {
		declined = req.Token
		return &client.Empty{}, nil
	})

	ctx := context.Background()
	inv, err := c.CreateInvitation(ctx, "acme", entity.InviteMemberRequest{Email: "bob@example.com", Role: entity.RoleMember})
	require.NoError(t, err)
	assert.Equal(t, "i1", inv.ID)
	assert.Equal(t, "acme", created.EntitySlug)
	assert.Equal(t, entity.RoleMember, created.Request.Role)

	require.NoError(t, c.CancelInvitation(ctx, "acme", "i1"))
	assert.Equal(t, client.CancelInvitationRequest{EntitySlug: "acme", InvitationID: "i1"}, cancelled)

	mine, err := c.ListMyInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, c.AcceptInvitation(ctx, "tok"))
	require.NoError(t, c.DeclineInvitation(ctx, "tok2"))
	assert.Equal(t, "tok", accepted)
	assert.Equal(t, "tok2", declined)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", client.ErrorMessage(nil, "fallback"))
	assert.Equal(t, "boom", client.ErrorMessage(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", client.ErrorMessage(errors.New("  "), "fallback"))
	assert.Equal(t, "fallback", client.ErrorMessage(connect.NewError(connect.CodeInternal, errors.New("")), "fallback"))
}
