package middleware

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/contacts-server/internal/api/grpc/contactsapi"
	"github.com/dtroode/contacts-server/internal/logger"
)

func TestLogging_HandleGRPC(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: contactsapi.Contacts_ListContacts_FullMethodName}
	withPeer := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 5050}})

	tests := []struct {
		name    string
		ctx     context.Context
		handler grpc.UnaryHandler
		wantErr bool
		want    []string
	}{
		{
			name: "completed call",
			ctx:  withPeer,
			handler: func(context.Context, any) (any, error) {
				return &contactsapi.ListContactsResponse{}, nil
			},
			want: []string{`msg="gRPC request completed"`, "status=OK", "peer=127.0.0.1:5050", "method=/contacts.v1.Contacts/ListContacts"},
		},
		{
			name: "status error keeps its code",
			ctx:  withPeer,
			handler: func(context.Context, any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "first name is required")
			},
			wantErr: true,
			want:    []string{`msg="gRPC request failed"`, "status=InvalidArgument", `error="rpc error: code = InvalidArgument desc = first name is required"`},
		},
		{
			name: "plain error logged as internal",
			ctx:  context.Background(),
			handler: func(context.Context, any) (any, error) {
				return nil, errors.New("boom")
			},
			wantErr: true,
			want:    []string{"status=Internal", "peer=unknown", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := NewLogging(logger.NewWithWriter(&buf, 0))

			resp, err := lg.HandleGRPC(tt.ctx, &contactsapi.ListContactsRequest{}, info, tt.handler)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, resp)
			}

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.NotContains(t, out, "gRPC request started")
		})
	}
}

func TestLogging_DebugStart(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, -4))

	_, err := lg.HandleGRPC(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/m"}, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="gRPC request started"`)
}
