package phases

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the decoded backend response envelope for one phase run. The
// data/visualization sub-documents are phase-specific; they stay raw here and
// are decoded through the typed PhaseN accessors below so each renderer gets
// the variant matching its phase at compile time.
type Result struct {
	Success       bool            `json:"success"`
	Phase         int             `json:"phase,omitempty"`
	Title         string          `json:"title,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	Error         string          `json:"error,omitempty"`
	Steps         []Step          `json:"steps,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	Visualization json.RawMessage `json:"visualization,omitempty"`
}

// Step is one narrated protocol step, rendered verbatim.
type Step struct {
	Step        int            `json:"step"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details,omitempty"`
}

// HumanizeKey turns an underscore-separated detail key into a spaced,
// title-cased label ("private_key_size" -> "Private Key Size").
func HumanizeKey(k string) string {
	words := strings.Split(k, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Party is the per-participant block shared by phases 1 and 2.
type Party struct {
	PublicKey string `json:"public_key"`
	SharedKey string `json:"shared_key"`
}

// Phase1Payload is the basic key exchange schema.
type Phase1Payload struct {
	Data struct {
		Alice     Party `json:"alice"`
		Bob       Party `json:"bob"`
		KeysMatch bool  `json:"keys_match"`
	}
	Viz struct {
		Labels      []string `json:"labels"`
		KeysMatch   bool     `json:"keys_match"`
		AliceKeyHex string   `json:"alice_key_hex"`
		BobKeyHex   string   `json:"bob_key_hex"`
	}
}

// Phase2Payload is the MITM attack schema.
type Phase2Payload struct {
	Data struct {
		Alice   Party `json:"alice"`
		Bob     Party `json:"bob"`
		Mallory struct {
			KeyWithAlice string `json:"key_with_alice"`
			KeyWithBob   string `json:"key_with_bob"`
			FakeAliceKey string `json:"fake_alice_key"`
			FakeBobKey   string `json:"fake_bob_key"`
		} `json:"mallory"`
		AttackSuccess      bool `json:"attack_success"`
		AliceBobKeysDiffer bool `json:"alice_bob_keys_differ"`
	}
	Viz struct {
		Keys struct {
			Alice        string `json:"alice"`
			Bob          string `json:"bob"`
			MalloryAlice string `json:"mallory_alice"`
			MalloryBob   string `json:"mallory_bob"`
		} `json:"keys"`
		AttackSuccess bool `json:"attack_success"`
	}
}

// SignedParty is the per-participant block for the authenticated exchange.
type SignedParty struct {
	DHPublicKey      string `json:"dh_public_key"`
	SigningPublicKey string `json:"signing_public_key"`
	SharedKey        string `json:"shared_key"`
	SignatureValid   bool   `json:"signature_valid"`
}

// Phase3Payload is the authenticated exchange schema.
type Phase3Payload struct {
	Data struct {
		Alice               SignedParty `json:"alice"`
		Bob                 SignedParty `json:"bob"`
		Authenticated       bool        `json:"authenticated"`
		KeysMatch           bool        `json:"keys_match"`
		MalloryAttackFailed bool        `json:"mallory_attack_failed"`
	}
	Viz struct {
		SignaturesValid bool `json:"signatures_valid"`
		KeysMatch       bool `json:"keys_match"`
		AttackPrevented bool `json:"attack_prevented"`
	}
}

// Phase4Payload is the AEAD secure channel schema.
type Phase4Payload struct {
	Data struct {
		MessageLength     int    `json:"message_length"`
		CiphertextLength  int    `json:"ciphertext_length"`
		EncryptionSuccess bool   `json:"encryption_success"`
		DecryptionSuccess bool   `json:"decryption_success"`
		MessageOriginal   string `json:"message_original"`
		MessageDecrypted  string `json:"message_decrypted"`
		TamperingDetected bool   `json:"tampering_detected"`
	}
	Viz struct {
		MessageSizes struct {
			Original  int `json:"original"`
			Encrypted int `json:"encrypted"`
			Overhead  int `json:"overhead"`
		} `json:"message_sizes"`
		SecurityProperties struct {
			Confidentiality bool `json:"confidentiality"`
			Integrity       bool `json:"integrity"`
			Authentication  bool `json:"authentication"`
		} `json:"security_properties"`
	}
}

// RegisteredParty is the per-participant block for the registry phases.
type RegisteredParty struct {
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	Registered bool   `json:"registered"`
	Verified   bool   `json:"verified"`
}

// BlockchainInfo identifies the simulated chain and registry program.
type BlockchainInfo struct {
	Network         string `json:"network"`
	RegistryProgram string `json:"registry_program"`
	RegistryType    string `json:"registry_type"`
}

// Registration is one entry of the phase 5 visualization.
type Registration struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
}

// Phase5Payload is the registry verification schema.
type Phase5Payload struct {
	Data struct {
		Blockchain BlockchainInfo  `json:"blockchain"`
		Alice      RegisteredParty `json:"alice"`
		Bob        RegisteredParty `json:"bob"`
	}
	Viz struct {
		Registrations       []Registration `json:"registrations"`
		VerificationSuccess bool           `json:"verification_success"`
	}
}

// AttackTally is the phase 6 prevention summary. It is optional in the
// payload; the zero value stands in when the backend omits it.
type AttackTally struct {
	Attack1Prevented bool `json:"attack1_prevented"`
	Attack2Prevented bool `json:"attack2_prevented"`
	Attack3Prevented bool `json:"attack3_prevented"`
	Attack4Prevented bool `json:"attack4_prevented"`
	TotalPrevented   int  `json:"total_prevented"`
}

// PreventedCount counts the four per-attack booleans.
func (a AttackTally) PreventedCount() int {
	n := 0
	for _, p := range []bool{a.Attack1Prevented, a.Attack2Prevented, a.Attack3Prevented, a.Attack4Prevented} {
		if p {
			n++
		}
	}
	return n
}

// Phase6Payload is the attack prevention schema.
type Phase6Payload struct {
	Data struct {
		Blockchain BlockchainInfo  `json:"blockchain"`
		Alice      RegisteredParty `json:"alice"`
		Bob        RegisteredParty `json:"bob"`
		Mallory    RegisteredParty `json:"mallory"`
		Attacks    *AttackTally    `json:"attacks"`
	}
	Viz struct {
		AttacksPrevented int `json:"attacks_prevented"`
		TotalAttacks     int `json:"total_attacks"`
	}
}

// decodeInto unmarshals the raw data/visualization documents into the two
// halves of a typed payload. Absent documents decode to zero values so
// renderers can fall back to empty-state defaults.
func (r *Result) decodeInto(data, viz any) error {
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, data); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	if len(r.Visualization) > 0 {
		if err := json.Unmarshal(r.Visualization, viz); err != nil {
			return fmt.Errorf("decode visualization: %w", err)
		}
	}
	return nil
}

// Phase1 decodes the result as the basic exchange variant.
func (r *Result) Phase1() (*Phase1Payload, error) {
	var p Phase1Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}

// Phase2 decodes the result as the MITM variant.
func (r *Result) Phase2() (*Phase2Payload, error) {
	var p Phase2Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}

// Phase3 decodes the result as the authenticated exchange variant.
func (r *Result) Phase3() (*Phase3Payload, error) {
	var p Phase3Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}

// Phase4 decodes the result as the secure channel variant.
func (r *Result) Phase4() (*Phase4Payload, error) {
	var p Phase4Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}

// Phase5 decodes the result as the registry verification variant.
func (r *Result) Phase5() (*Phase5Payload, error) {
	var p Phase5Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}

// Phase6 decodes the result as the attack prevention variant.
func (r *Result) Phase6() (*Phase6Payload, error) {
	var p Phase6Payload
	if err := r.decodeInto(&p.Data, &p.Viz); err != nil {
		return nil, err
	}
	return &p, nil
}
