package utils_test

import (
	"testing"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/utils"
)

func TestBytesToHex(t *testing.T) {
	var testCases = []struct {
		Input    []byte
		Case     utils.HexCase
		Expected string
	}{
		{[]byte{}, utils.HexLower, ""},
		{[]byte{0x00}, utils.HexLower, "00"},
		{[]byte{0x0F}, utils.HexLower, "0f"},
		{[]byte{0x0F}, utils.HexUpper, "0F"},
		{[]byte{0xFF, 0x00, 0xA5}, utils.HexLower, "ff00a5"},
		{[]byte{0xFF, 0x00, 0xA5}, utils.HexUpper, "FF00A5"},
		{[]byte("AWS4"), utils.HexLower, "41575334"},
	}

	for _, tc := range testCases {
		got := utils.BytesToHex(tc.Input, tc.Case)
		if got != tc.Expected {
			t.Errorf("BytesToHex(%v): got %s, expected %s", tc.Input, got, tc.Expected)
		}
	}
}

func TestAppendByteHexMatchesBytesToHex(t *testing.T) {
	for b := 0; b < 256; b++ {
		fromAppend := string(utils.AppendByteHex(nil, byte(b), utils.HexUpper))
		fromBytes := utils.BytesToHex([]byte{byte(b)}, utils.HexUpper)
		if fromAppend != fromBytes {
			t.Errorf("byte %d: got %s, expected %s", b, fromAppend, fromBytes)
		}
	}
}
