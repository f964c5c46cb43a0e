package constants

//Constants of the AWS sigv4 signing protocol as used for RDS IAM authentication.
//The AWS SDK does not seem to provide packages that export these constants :(
const (
	// AmzAlgorithmKey indicates the signing algorithm
	AmzAlgorithmKey = "X-Amz-Algorithm"

	// AmzDateKey is the UTC timestamp for the request in the format YYYYMMDD'T'HHMMSS'Z'
	AmzDateKey = "X-Amz-Date"

	//AmzExpiresKey is how long the token is valid for in seconds since X-Amz-Date(AmzDateKey)
	AmzExpiresKey = "X-Amz-Expires"

	// AmzCredentialKey is the access key ID and credential scope
	AmzCredentialKey = "X-Amz-Credential"

	// AmzSignedHeadersKey is the set of headers signed for the request
	AmzSignedHeadersKey = "X-Amz-SignedHeaders"

	// AmzSignatureKey is the query parameter to store the SigV4 signature
	AmzSignatureKey = "X-Amz-Signature"

	// SigningAlgorithm is the value of AmzAlgorithmKey
	SigningAlgorithm = "AWS4-HMAC-SHA256"

	// ServiceName is the signing name of the RDS IAM authentication service
	ServiceName = "rds-db"

	// AWS4Terminator closes off a sigv4 credential scope
	AWS4Terminator = "aws4_request"

	// ConnectAction is the only action the rds-db service knows
	ConnectAction = "connect"

	// SignedHeader: host is the only header that gets signed into the token
	SignedHeader = "host"

	// EmptyStringSHA256 is the hex encoded sha256 value of an empty string.
	// The rds-db connect request never carries a body so this is the payload
	// hash in every canonical request.
	EmptyStringSHA256 = `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`

	// TimeFormat is the time format to be used in the X-Amz-Date query parameter
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the date-only format used in the credential scope
	ShortTimeFormat = "20060102"
)
