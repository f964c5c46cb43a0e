package iamtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"strconv"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/constants"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/utils"
)

//The sigv4 signing pipeline for an rds-db connect request: canonical request,
//string to sign, derived signing key and final signature. Everything in here
//is a pure function, intermediate key material lives only on the stack of
//calculateSignature.

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return utils.BytesToHex(sum[:], utils.HexLower)
}

//Assemble the fixed-shape canonical request. All inputs must already be
//percent-encoded; this is plain string assembly.
func canonicalRequest(canonicalQueryString, hostname string, port int) string {
	canonicalHeaders := constants.SignedHeader + ":" + hostname + ":" + strconv.Itoa(port) + "\n"
	return "GET" + "\n" +
		"/" + "\n" +
		canonicalQueryString + "\n" +
		canonicalHeaders + "\n" +
		constants.SignedHeader + "\n" +
		constants.EmptyStringSHA256
}

func stringToSign(dateTimeStamp, dateStamp, regionID, canonicalRequest string) string {
	credentialScope := dateStamp + "/" + regionID + "/" + constants.ServiceName + "/" + constants.AWS4Terminator
	return constants.SigningAlgorithm + "\n" +
		dateTimeStamp + "\n" +
		credentialScope + "\n" +
		sha256Hex(canonicalRequest)
}

//The sigv4 key derivation chain: kDate -> kRegion -> kService -> kSigning.
//The returned key is scoped to the signing call, it must not be cached
//anywhere since it is derived from the secret key.
func signingKey(secretKey, dateStamp, regionID string) []byte {
	kSecret := []byte("AWS4" + secretKey)
	kDate := hmacSHA256(kSecret, []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(regionID))
	kService := hmacSHA256(kRegion, []byte(constants.ServiceName))
	return hmacSHA256(kService, []byte(constants.AWS4Terminator))
}

func calculateSignature(stringToSign, secretKey, dateStamp, regionID string) string {
	key := signingKey(secretKey, dateStamp, regionID)
	return utils.BytesToHex(hmacSHA256(key, []byte(stringToSign)), utils.HexLower)
}
