// Package entity contains the core business objects of the project.
package entity

// Provider identifies how a user authenticates. It is a closed set; sign-in
// requests are dispatched to the matching verifier by this tag.
type Provider string

const (
	// ProviderLocal marks accounts created outside the provider flows.
	ProviderLocal Provider = "local"
	// ProviderApple marks Sign in with Apple accounts.
	ProviderApple Provider = "apple"
	// ProviderGoogle marks Google Sign-In accounts.
	ProviderGoogle Provider = "google"
	// ProviderEmail marks email one-time-passcode accounts.
	ProviderEmail Provider = "email"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderApple, ProviderGoogle, ProviderEmail:
		return true
	default:
		return false
	}
}

// DeviceType identifies the client platform a session was opened from.
// Web clients receive the refresh token in a cookie; native clients
// receive it in the response body.
type DeviceType string

const (
	// DeviceWeb is a browser client.
	DeviceWeb DeviceType = "web"
	// DeviceIOS is a native iOS client.
	DeviceIOS DeviceType = "ios"
	// DeviceAndroid is a native Android client.
	DeviceAndroid DeviceType = "android"
)

// String returns the string representation of the DeviceType.
func (d DeviceType) String() string {
	return string(d)
}

// IsValid checks if the DeviceType is a valid value.
func (d DeviceType) IsValid() bool {
	switch d {
	case DeviceWeb, DeviceIOS, DeviceAndroid:
		return true
	default:
		return false
	}
}

// RevocationReason records why a refresh token was invalidated.
type RevocationReason string

const (
	// RevokedLogout is set when the owning device logs out, or on logout-all.
	RevokedLogout RevocationReason = "logout"
	// RevokedSecurity is set when a session is revoked for a security concern.
	RevokedSecurity RevocationReason = "security"
	// RevokedAdminAction is set when an operator terminates the session.
	RevokedAdminAction RevocationReason = "admin_action"
	// RevokedRotated is set when the token was superseded by rotation.
	RevokedRotated RevocationReason = "rotated"
)

// String returns the string representation of the RevocationReason.
func (r RevocationReason) String() string {
	return string(r)
}
