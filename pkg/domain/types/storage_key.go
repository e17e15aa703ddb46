package types

// StorageKey identifies one entry of the device store
type StorageKey string

const (
	StorageKeySession    StorageKey = "coachingSession"
	StorageKeyLabels     StorageKey = "coachingLabels"
	StorageKeyCredential StorageKey = "gemini_api_key"
	StorageKeyCoachEmail StorageKey = "coach_email"
)

// String returns the string representation of the key
func (k StorageKey) String() string {
	return string(k)
}

// DeviceID namespaces storage keys so several devices can share one backend
type DeviceID string

// DefaultDeviceID is used when no device ID is configured
const DefaultDeviceID DeviceID = "default"

// String returns the string representation of the device ID
func (d DeviceID) String() string {
	return string(d)
}

// Credential is an API key for the text generation service. It is redacted in logs.
type Credential string

// IsEmpty reports whether no credential is configured
func (c Credential) IsEmpty() bool {
	return c == ""
}

// String returns the raw credential value
func (c Credential) String() string {
	return string(c)
}
