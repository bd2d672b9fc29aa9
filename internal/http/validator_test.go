package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		req  credentialsReq
		want string
	}{
		{
			name: "valid",
			req:  credentialsReq{Username: "alice", Password: "pw1"},
			want: "",
		},
		{
			name: "missing password",
			req:  credentialsReq{Username: "alice"},
			want: "password is required",
		},
		{
			name: "missing both",
			req:  credentialsReq{},
			want: "username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStruct(tt.req))
		})
	}
}
