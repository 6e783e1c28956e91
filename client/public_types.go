package client

import (
	"github.com/sker65/headsup/client/internal/batch"
	"github.com/sker65/headsup/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	User       = types.User
	Node       = types.Node
	PreAuthKey = types.PreAuthKey
	APIKey     = types.APIKey

	// Requests
	ListUsersParams         = types.ListUsersParams
	CreateUserRequest       = types.CreateUserRequest
	ListNodesParams         = types.ListNodesParams
	CreatePreAuthKeyRequest = types.CreatePreAuthKeyRequest
	CreateAPIKeyRequest     = types.CreateAPIKeyRequest
	SetPolicyRequest        = types.SetPolicyRequest

	// Responses
	HealthResponse           = types.HealthResponse
	ListUsersResponse        = types.ListUsersResponse
	CreateUserResponse       = types.CreateUserResponse
	ListNodesResponse        = types.ListNodesResponse
	ListPreAuthKeysResponse  = types.ListPreAuthKeysResponse
	CreatePreAuthKeyResponse = types.CreatePreAuthKeyResponse
	ListAPIKeysResponse      = types.ListAPIKeysResponse
	CreateAPIKeyResponse     = types.CreateAPIKeyResponse
	PolicyResponse           = types.PolicyResponse

	// BatchResult tallies a multi-delete.
	BatchResult = batch.Result
)
