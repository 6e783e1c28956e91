package types

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// Every field is optional: the server is the source of truth and may omit
// anything. Timestamps stay as the server's strings. Booleans whose absence
// matters are pointers so a missing value is never read as false.

// User is an account on the coordination server.
type User struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Email         string `json:"email,omitempty"`
	ProviderID    string `json:"providerId,omitempty"`
	Provider      string `json:"provider,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

// Node is a registered device. Key material is opaque.
type Node struct {
	ID              string      `json:"id,omitempty"`
	MachineKey      string      `json:"machineKey,omitempty"`
	NodeKey         string      `json:"nodeKey,omitempty"`
	DiscoKey        string      `json:"discoKey,omitempty"`
	IPAddresses     []string    `json:"ipAddresses,omitempty"`
	Name            string      `json:"name,omitempty"`
	User            *User       `json:"user,omitempty"`
	LastSeen        string      `json:"lastSeen,omitempty"`
	Expiry          string      `json:"expiry,omitempty"`
	PreAuthKey      *PreAuthKey `json:"preAuthKey,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	RegisterMethod  string      `json:"registerMethod,omitempty"`
	GivenName       string      `json:"givenName,omitempty"`
	Online          *bool       `json:"online,omitempty"`
	ApprovedRoutes  []string    `json:"approvedRoutes,omitempty"`
	AvailableRoutes []string    `json:"availableRoutes,omitempty"`
	SubnetRoutes    []string    `json:"subnetRoutes,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
}

// PreAuthKey enrolls a node without interactive login. Key is only populated
// in the response that created it.
type PreAuthKey struct {
	User       *User    `json:"user,omitempty"`
	ID         string   `json:"id,omitempty"`
	Key        string   `json:"key,omitempty"`
	Reusable   *bool    `json:"reusable,omitempty"`
	Ephemeral  *bool    `json:"ephemeral,omitempty"`
	Used       *bool    `json:"used,omitempty"`
	Expiration string   `json:"expiration,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	ACLTags    []string `json:"aclTags,omitempty"`
}

// APIKey is the listable part of an admin credential. The secret itself is
// never returned after creation.
type APIKey struct {
	ID         string `json:"id,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
	Expiration string `json:"expiration,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	LastSeen   string `json:"lastSeen,omitempty"`
}
