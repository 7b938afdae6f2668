package payments

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/go-faster/errors"

	"payu_bridge/internal/usecase/interfaces"
)

var (
	ErrMissingSignature     = errors.New("missing signature")
	ErrUnsupportedAlgorithm = errors.New("unsupported signature algorithm")
	ErrSignatureMismatch    = errors.New("signature mismatch")
)

// SignatureVerifier checks notification bodies against hash(body + second key)
// using the entities.NotificationSignatureHeader value, e.g.
//
//	sender=checkout;signature=c33a38d8...;algorithm=MD5;content=DOCUMENT
type SignatureVerifier struct {
	secondKey string
}

var _ interfaces.INotificationVerifier = (*SignatureVerifier)(nil)

func NewSignatureVerifier(secondKey string) (*SignatureVerifier, error) {
	if strings.TrimSpace(secondKey) == "" {
		return nil, errors.New("missing PayU second key")
	}
	return &SignatureVerifier{secondKey: secondKey}, nil
}

func (v *SignatureVerifier) Verify(signatureHeader string, body []byte) error {
	params := parseSignatureHeader(signatureHeader)
	sig := params["signature"]
	if sig == "" {
		return ErrMissingSignature
	}

	h, err := newHash(params["algorithm"])
	if err != nil {
		return err
	}
	h.Write(body)
	h.Write([]byte(v.secondKey))
	expected := hex.EncodeToString(h.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(sig))) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign returns the header value PayU would send for body. Used by tests and
// by local tooling that replays notifications.
func (v *SignatureVerifier) Sign(body []byte) string {
	h := md5.New()
	h.Write(body)
	h.Write([]byte(v.secondKey))
	return "sender=checkout;signature=" + hex.EncodeToString(h.Sum(nil)) + ";algorithm=MD5;content=DOCUMENT"
}

func parseSignatureHeader(header string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(header, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

func newHash(algorithm string) (hash.Hash, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "", "MD5":
		return md5.New(), nil
	case "SHA", "SHA1", "SHA-1":
		return sha1.New(), nil
	case "SHA256", "SHA-256":
		return sha256.New(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "algorithm %q", algorithm)
	}
}
