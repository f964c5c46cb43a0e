// Package iamtoken generates RDS IAM authentication tokens: short-lived
// AWS sigv4 presigned request strings that act as the database password when
// connecting to an RDS instance with IAM authentication enabled.
package iamtoken

import (
	"fmt"
	"time"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/constants"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/regionutils"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/usererror"
)

// DefaultExpirySeconds is the token lifetime used when none is requested.
// It is not known if the RDS service accepts tokens with a longer
// time-to-live than this 15 minute default, so going above it is probably
// pointless; a smaller value is fine for increased security.
const DefaultExpirySeconds = 900

// Parameters is the input for generating a token.
//
// AccessKeyID, SecretKey, Hostname, Port and DBUsername are mandatory.
// RegionID may be left empty if it can be derived from the hostname or is
// configured externally (see regionutils.Resolve). ExpirySeconds defaults to
// DefaultExpirySeconds, Clock to the system clock.
//
// The SecretKey is only ever read during signing. It is never logged and is
// not part of the generated Token.
type Parameters struct {
	AccessKeyID   string
	SecretKey     string
	RegionID      string
	Hostname      string
	Port          int
	DBUsername    string
	ExpirySeconds int
	Clock         func() time.Time
}

// Resolve validates the parameters and returns a copy with defaults filled
// in and the region resolved. Errors are user facing and name the offending
// field. Resolve is idempotent; GetToken calls it on its input so callers
// only need it themselves when they want early validation or the resolved
// region.
func (p Parameters) Resolve() (Parameters, error) {
	if p.Hostname == "" {
		return p, missingField("hostname")
	}
	if p.RegionID == "" {
		regionID, err := regionutils.Resolve("", p.Hostname)
		if err != nil {
			return p, err
		}
		p.RegionID = regionID
	}
	if p.AccessKeyID == "" {
		return p, missingField("awsAccessKeyId")
	}
	if p.SecretKey == "" {
		return p, missingField("awsSecretKey")
	}
	if p.Port < 1 || p.Port > 65535 {
		return p, usererror.New(
			fmt.Errorf("port %d out of range", p.Port),
			"portNo must be in range 1-65535",
		)
	}
	if p.DBUsername == "" {
		return p, missingField("dbUsername")
	}
	if p.ExpirySeconds <= 0 {
		p.ExpirySeconds = DefaultExpirySeconds
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	return p, nil
}

// Key returns the lookup key the generated token will carry, without
// generating a token. The parameters must already be resolved for the key to
// carry the region.
func (p Parameters) Key() Key {
	return Key{
		AccessKeyID: p.AccessKeyID,
		RegionID:    p.RegionID,
		Hostname:    p.Hostname,
		Port:        p.Port,
		DBUsername:  p.DBUsername,
	}
}

func missingField(name string) error {
	return usererror.New(
		fmt.Errorf("mandatory parameter %s was empty", name),
		name+" must be supplied",
	)
}

// GetToken generates a token which can be used as password when connecting
// to the RDS instance.
//
// No checks are performed on the validity of the input beyond what Resolve
// does. It is perfectly possible to generate a token for an RDS instance or
// DB user which doesn't exist; using such a token results in a plain
// authentication error from the database server, so be meticulous with the
// input.
//
// Generating a token involves no network traffic, only some lightweight
// cryptographic calculations. The same inputs with the same clock reading
// always yield the same token. GetToken is safe for concurrent use; every
// call works on its own intermediate state.
func GetToken(p Parameters) (Token, error) {
	p, err := p.Resolve()
	if err != nil {
		return Token{}, err
	}

	now := p.Clock().UTC()
	expirationTime := now.Add(time.Duration(p.ExpirySeconds) * time.Second)
	dateTimeStamp := now.Format(constants.TimeFormat)
	dateStamp := now.Format(constants.ShortTimeFormat)

	params := connectQueryParameters(p, dateStamp, dateTimeStamp)
	creq := canonicalRequest(params.canonicalQueryString(), p.Hostname, p.Port)
	sts := stringToSign(dateTimeStamp, dateStamp, p.RegionID, creq)
	signature := calculateSignature(sts, p.SecretKey, dateStamp, p.RegionID)

	token := fmt.Sprintf("%s:%d/?%s&%s=%s",
		p.Hostname, p.Port, params.queryString(), constants.AmzSignatureKey, signature)

	return Token{
		AccessKeyID:    p.AccessKeyID,
		RegionID:       p.RegionID,
		Hostname:       p.Hostname,
		Port:           p.Port,
		DBUsername:     p.DBUsername,
		ExpirationTime: expirationTime,
		Token:          token,
	}, nil
}
