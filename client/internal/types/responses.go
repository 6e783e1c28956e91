package types

// ------------------------------
// Response Types
// ------------------------------

// HealthResponse reports server health.
type HealthResponse struct {
	DatabaseConnectivity *bool `json:"databaseConnectivity,omitempty"`
}

// ListUsersResponse wraps the user list.
type ListUsersResponse struct {
	Users []User `json:"users,omitempty"`
}

// CreateUserResponse wraps the created user.
type CreateUserResponse struct {
	User *User `json:"user,omitempty"`
}

// ListNodesResponse wraps the node list.
type ListNodesResponse struct {
	Nodes []Node `json:"nodes,omitempty"`
}

// ListPreAuthKeysResponse wraps the pre-auth key list.
type ListPreAuthKeysResponse struct {
	PreAuthKeys []PreAuthKey `json:"preAuthKeys,omitempty"`
}

// CreatePreAuthKeyResponse carries the new key, including its secret.
type CreatePreAuthKeyResponse struct {
	PreAuthKey *PreAuthKey `json:"preAuthKey,omitempty"`
}

// ListAPIKeysResponse wraps the API key list.
type ListAPIKeysResponse struct {
	APIKeys []APIKey `json:"apiKeys,omitempty"`
}

// CreateAPIKeyResponse carries the full API key. It is the only time the
// secret is returned.
type CreateAPIKeyResponse struct {
	APIKey string `json:"apiKey,omitempty"`
}

// PolicyResponse is returned by both GetPolicy and SetPolicy.
type PolicyResponse struct {
	Policy    string `json:"policy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
