package constant

// Context local keys set by the auth middleware.
const (
	ContextUserKey  = "currentUser"
	ContextTokenKey = "rawToken"
)

// ResetTokenByteLength is the size of the random reset secret before hex
// encoding.
const ResetTokenByteLength = 32

// BcryptCost is the work factor applied to password hashes.
const BcryptCost = 10
