package iamtoken

import (
	"strings"
	"testing"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/constants"
)

func TestSha256HexOfEmptyStringIsTheWellKnownConstant(t *testing.T) {
	//The empty-body payload hash is baked in as a constant, this guards it
	if got := sha256Hex(""); got != constants.EmptyStringSHA256 {
		t.Errorf("Got %s, expected %s", got, constants.EmptyStringSHA256)
	}
}

func TestCanonicalRequestShape(t *testing.T) {
	creq := canonicalRequest("a=1&b=2", "mydb.eu-central-1.rds.amazonaws.com", 5432)

	expected := "GET\n" +
		"/\n" +
		"a=1&b=2\n" +
		"host:mydb.eu-central-1.rds.amazonaws.com:5432\n" +
		"\n" +
		"host\n" +
		constants.EmptyStringSHA256
	if creq != expected {
		t.Errorf("Mismatch canonical request:\nGot     :%q\nExpected:%q", creq, expected)
	}
}

func TestStringToSignShape(t *testing.T) {
	creq := canonicalRequest("a=1", "mydb.eu-central-1.rds.amazonaws.com", 5432)
	sts := stringToSign("20200101T000000Z", "20200101", "eu-central-1", creq)

	lines := strings.Split(sts, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), sts)
	}
	if lines[0] != "AWS4-HMAC-SHA256" {
		t.Errorf("Got algorithm %s", lines[0])
	}
	if lines[1] != "20200101T000000Z" {
		t.Errorf("Got timestamp %s", lines[1])
	}
	if lines[2] != "20200101/eu-central-1/rds-db/aws4_request" {
		t.Errorf("Got credential scope %s", lines[2])
	}
	if lines[3] != sha256Hex(creq) {
		t.Errorf("Got hash %s, expected %s", lines[3], sha256Hex(creq))
	}
}

func TestSigningKeyIsDeterministicAndInputSensitive(t *testing.T) {
	key1 := signingKey("secret", "20200101", "eu-central-1")
	key2 := signingKey("secret", "20200101", "eu-central-1")
	if string(key1) != string(key2) {
		t.Error("Same inputs gave different signing keys")
	}
	if len(key1) != 32 {
		t.Errorf("Expected a 32 byte key, got %d bytes", len(key1))
	}

	otherDate := signingKey("secret", "20200102", "eu-central-1")
	if string(key1) == string(otherDate) {
		t.Error("Different dates gave identical signing keys")
	}
	otherRegion := signingKey("secret", "20200101", "us-east-1")
	if string(key1) == string(otherRegion) {
		t.Error("Different regions gave identical signing keys")
	}
}

func TestCalculateSignatureIsLowercaseHex(t *testing.T) {
	sig := calculateSignature("some string to sign", "secret", "20200101", "eu-central-1")
	if len(sig) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(sig))
	}
	if sig != strings.ToLower(sig) {
		t.Errorf("Signature not lowercase: %s", sig)
	}
}
