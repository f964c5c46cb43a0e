package iamtoken

import "time"

// Token is an RDS IAM authentication token together with the key attributes
// that went into creating it, meaning the context in which it can be used.
// It can be re-used as DB password until ExpirationTime; account for clock
// differences and network latency before relying on a token that is about to
// expire. Instances are immutable values.
type Token struct {
	//The AWS Access Key the token was signed with
	AccessKeyID string

	//The region where Hostname is located, e.g. "eu-central-1"
	RegionID string

	//The hostname of the RDS endpoint
	Hostname string

	//The port of the RDS endpoint, e.g. 5432 for PostgreSQL or 3306 for MySQL
	Port int

	//The database user the token authenticates
	DBUsername string

	//The time at which the token stops being accepted
	ExpirationTime time.Time

	//The token itself: the value to use as DB password
	Token string
}

// Key identifies the endpoint/user combination a token was generated for,
// excluding the expiration time. It is a comparable struct so it can be used
// directly as a map key, e.g. to find the token with the furthest-future
// expiration for a given endpoint.
type Key struct {
	AccessKeyID string
	RegionID    string
	Hostname    string
	Port        int
	DBUsername  string
}

// Key returns the lookup key for the token. The port is part of the key:
// tokens for the same host on different ports are distinct.
func (t Token) Key() Key {
	return Key{
		AccessKeyID: t.AccessKeyID,
		RegionID:    t.RegionID,
		Hostname:    t.Hostname,
		Port:        t.Port,
		DBUsername:  t.DBUsername,
	}
}

// Equal reports whether both tokens have the same identity, which is defined
// over all fields.
func (t Token) Equal(o Token) bool {
	return t.Key() == o.Key() &&
		t.ExpirationTime.Equal(o.ExpirationTime) &&
		t.Token == o.Token
}

// Before orders tokens by expiration time ascending.
func (t Token) Before(o Token) bool {
	return t.ExpirationTime.Before(o.ExpirationTime)
}
