// Package payload converts between raw file bytes and the base64 payloads
// the GitHub contents API exchanges. It has no knowledge of the store
// client; the functions are pure apart from EncodeFile's local read.
package payload

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrRead reports a failed local file read during encoding.
var ErrRead = errors.New("payload: read failed")

// Encode returns the base64 payload for raw bytes, without any data-URI
// prefix.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeFile reads a local file and returns its base64 payload. Failures
// to read match ErrRead under errors.Is.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(ErrRead, "reading %s: %v", path, err)
	}
	return Encode(data), nil
}

// Decode turns a base64 payload back into raw bytes. The contents API
// wraps payloads with newlines every 60 characters, so embedded CR/LF are
// stripped before decoding.
func Decode(payload string) ([]byte, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(payload)
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrap(err, "decoding payload")
	}
	return data, nil
}
