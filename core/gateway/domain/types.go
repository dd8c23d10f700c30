package domain

// Payload is a transient JSON object passed between the gateway and the
// downstream services. The gateway never interprets values, only key
// presence.
type Payload map[string]any

// Messages surfaced by the composite operations. The wording is part of the
// wire contract and must not change.
const (
	MsgUpdated          = "Usuario actualizado exitosamente"
	MsgPartiallyUpdated = "Usuario actualizado parcialmente (solo seguridad)"
	MsgNothingToUpdate  = "No hay datos para actualizar"

	MsgRegistered          = "Usuario y perfil registrados exitosamente"
	MsgRegisteredNoProfile = "Usuario registrado exitosamente. El perfil se puede crear posteriormente."
)

type (
	// RegisterResult is the outcome of a composite registration. The security
	// registration already committed whenever a RegisterResult is returned;
	// profile creation is best-effort at creation time.
	RegisterResult struct {
		// Security is the downstream registration response.
		Security Payload

		// Profile is the profile-creation response, nil when creation was not
		// attempted or failed.
		Profile Payload

		// ProfileAttempted is true when a non-empty profile sub-payload and a
		// username were supplied.
		ProfileAttempted bool

		// Message is empty when no profile creation was attempted, in which
		// case the caller passes Security through verbatim.
		Message string
	}

	// UpdateResult is the outcome of a composite update. Untouched sides
	// carry an empty (non-nil) Payload, mirroring the downstream contract.
	UpdateResult struct {
		Message  string
		Security Payload
		Profile  Payload
	}

	// FetchResult merges the two independent sub-fetches. A nil Security or
	// Profile means that sub-fetch failed or returned nothing and the key is
	// omitted from the response.
	FetchResult struct {
		Username string
		Security Payload
		Profile  Payload
	}
)
