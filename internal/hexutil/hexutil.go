// Package hexutil provides hex/base64 byte helpers. cmd/verifaidemo uses
// Decode to parse its runtime id and signing secret literals; Bytes is a
// JSON byte type that encodes as hex and decodes hex or base64.
package hexutil

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Decode parses a hex string, tolerating an optional "0x" prefix.
func Decode(hexStr string) ([]byte, error) {
	if strings.HasPrefix(hexStr, "0x") {
		hexStr = hexStr[2:]
	}
	return hex.DecodeString(hexStr)
}

// Bytes is a byte slice that marshals to JSON as a "0x"-prefixed hex string
// and unmarshals either hex or base64, so config files and CLI output can use
// whichever encoding is convenient.
type Bytes []byte

func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	s := "0x" + hex.EncodeToString(b)
	jbz := make([]byte, len(s)+2)
	jbz[0] = '"'
	copy(jbz[1:], s)
	jbz[len(jbz)-1] = '"'
	return jbz, nil
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("hexutil: invalid quoted string: %s", data)
	}

	val := string(data[1 : len(data)-1])
	if isHex(val) {
		bz, err := Decode(val)
		if err != nil {
			return err
		}
		*b = bz
	} else {
		bz, err := base64.StdEncoding.DecodeString(val)
		if err != nil {
			return err
		}
		*b = bz
	}
	return nil
}

func isHex(s string) bool {
	v := strings.TrimPrefix(s, "0x")
	if len(v)%2 != 0 {
		return false
	}
	for _, c := range []byte(v) {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
