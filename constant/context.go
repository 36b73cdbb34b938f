package constant

type contextKey string

// IdentityKey holds the *model.TokenPayload of an authenticated request.
const IdentityKey contextKey = "identity"
