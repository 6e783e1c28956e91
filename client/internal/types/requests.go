package types

// ------------------------------
// Request Types
// ------------------------------
//
// Unset fields are omitted from the JSON body so server-side defaults apply.

// CreateUserRequest holds parameters for a new user.
type CreateUserRequest struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

// ListUsersParams filters ListUsers. Empty fields are not sent.
type ListUsersParams struct {
	ID    string
	Name  string
	Email string
}

// ListNodesParams filters ListNodes. Empty fields are not sent.
type ListNodesParams struct {
	User string
}

// CreatePreAuthKeyRequest holds parameters for a new pre-auth key.
type CreatePreAuthKeyRequest struct {
	User       string   `json:"user,omitempty"`
	Reusable   *bool    `json:"reusable,omitempty"`
	Ephemeral  *bool    `json:"ephemeral,omitempty"`
	Expiration string   `json:"expiration,omitempty"`
	ACLTags    []string `json:"aclTags,omitempty"`
}

// ExpirePreAuthKeyRequest is the body of the pre-auth key expire call.
type ExpirePreAuthKeyRequest struct {
	ID string `json:"id,omitempty"`
}

// CreateAPIKeyRequest holds parameters for a new API key.
type CreateAPIKeyRequest struct {
	Expiration string `json:"expiration,omitempty"`
}

// ExpireAPIKeyRequest is the body of the API key expire call.
type ExpireAPIKeyRequest struct {
	Prefix string `json:"prefix,omitempty"`
	ID     string `json:"id,omitempty"`
}

// SetPolicyRequest replaces the whole policy document. Policy is always
// sent, so an empty string clears it.
type SetPolicyRequest struct {
	Policy string `json:"policy"`
}
