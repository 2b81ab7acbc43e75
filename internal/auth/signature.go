package auth

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // the platform signs deliveries with HMAC-SHA1
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

const (
	// SignatureHeader carries the HMAC-SHA1 signature of the request body.
	SignatureHeader = "X-Hub-Signature"
	// SignatureHeaderSHA256 carries the HMAC-SHA256 signature of the request body.
	SignatureHeaderSHA256 = "X-Hub-Signature-256"

	ErrMissingSignature   = constError("missing request signature")
	ErrMalformedSignature = constError("malformed request signature")
	ErrSignatureMismatch  = constError("request signature does not match")
)

type constError string

func (e constError) Error() string {
	return string(e)
}

// SignaturePolicy decides what happens to deliveries that carry no signature.
type SignaturePolicy int

const (
	// PolicyStrict rejects unsigned deliveries.
	PolicyStrict SignaturePolicy = iota
	// PolicyPermissive lets unsigned deliveries through. Bad signatures are still rejected.
	PolicyPermissive
)

// SignatureVerifier checks webhook bodies against the app secret.
type SignatureVerifier struct {
	secret []byte
	policy SignaturePolicy
}

// NewSignatureVerifier creates a verifier keyed with the app secret.
func NewSignatureVerifier(appSecret string, policy SignaturePolicy) *SignatureVerifier {
	return &SignatureVerifier{
		secret: []byte(appSecret),
		policy: policy,
	}
}

// Verify checks a "<algorithm>=<hexDigest>" signature against the raw body.
// It returns ErrMissingSignature, ErrMalformedSignature or ErrSignatureMismatch on failure.
func (v *SignatureVerifier) Verify(body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissingSignature
	}
	algorithm, digest, ok := strings.Cut(signature, "=")
	if !ok || digest == "" {
		return fmt.Errorf("%w: expected <algorithm>=<digest>", ErrMalformedSignature)
	}
	newHash, err := hashFor(algorithm)
	if err != nil {
		return err
	}
	given, err := hex.DecodeString(digest)
	if err != nil {
		return fmt.Errorf("%w: digest is not hex: %w", ErrMalformedSignature, err)
	}

	mac := hmac.New(newHash, v.secret)
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), given) {
		return ErrSignatureMismatch
	}
	return nil
}

// Permits reports whether a verification error may be ignored under the configured policy.
func (v *SignatureVerifier) Permits(err error) bool {
	return v.policy == PolicyPermissive && errors.Is(err, ErrMissingSignature)
}

// Sign returns the header value the platform would send for body.
func Sign(appSecret, algorithm string, body []byte) (string, error) {
	newHash, err := hashFor(algorithm)
	if err != nil {
		return "", err
	}
	mac := hmac.New(newHash, []byte(appSecret))
	mac.Write(body)
	return strings.ToLower(algorithm) + "=" + hex.EncodeToString(mac.Sum(nil)), nil
}

func hashFor(algorithm string) (func() hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedSignature, algorithm)
	}
}
