// Package phases defines the static phase catalog, the per-phase run status,
// and the typed result schemas returned by the demo backend.
package phases

// Count is the number of walkthrough phases served by the backend.
const Count = 6

// Phase is a static descriptor for one walkthrough phase. The six instances
// are created once at startup and never change.
type Phase struct {
	Num              int
	Title            string
	ShortDescription string
}

var catalog = []Phase{
	{1, "Basic Diffie-Hellman Key Exchange", "Alice and Bob derive a shared key over an insecure channel using X25519."},
	{2, "Man-in-the-Middle Attack", "Mallory intercepts the unauthenticated exchange and establishes separate keys with both parties."},
	{3, "Authenticated Diffie-Hellman", "Ed25519 signatures bind DH keys to identities, defeating Mallory's forgery."},
	{4, "Secure Channel with AEAD", "ChaCha20-Poly1305 encrypts a message and detects ciphertext tampering."},
	{5, "Blockchain Key Registry", "Alice and Bob register signing keys on-chain; peers verify them against the registry."},
	{6, "Blockchain MITM Attack Prevention", "Four registry impersonation attacks by Mallory, all rejected by wallet-ownership checks."},
}

// All returns the six phase descriptors ordered by number.
func All() []Phase {
	out := make([]Phase, len(catalog))
	copy(out, catalog)
	return out
}

// ByNum returns the descriptor for phase n (1..Count), or false when out of range.
func ByNum(n int) (Phase, bool) {
	if n < 1 || n > len(catalog) {
		return Phase{}, false
	}
	return catalog[n-1], true
}

// Status is the ephemeral lifecycle state of one phase run. All phases start
// pending; success and error are terminal per run but a phase may re-enter
// running on a new trigger.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Terminal reports whether s ends a run (success or error).
func (s Status) Terminal() bool { return s == StatusSuccess || s == StatusError }
