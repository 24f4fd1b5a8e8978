package models

// Envelope is one client-encrypted JSON payload. The client generates a fresh
// AES-256 key and 96-bit IV per message and ships them next to the
// ciphertext. All three fields travel as standard base64 strings.
//
// An Envelope is never persisted: it is opened right after the request is
// decoded and dropped afterwards.
type Envelope struct {
	Ciphertext []byte `json:"ciphertext" validate:"required"`
	Key        []byte `json:"key" validate:"required"`
	IV         []byte `json:"iv" validate:"required"`
}

// IsEmpty reports whether none of the envelope parts were supplied.
func (e Envelope) IsEmpty() bool {
	return len(e.Ciphertext) == 0 && len(e.Key) == 0 && len(e.IV) == 0
}
