package iamtoken

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/constants"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/utils"
)

//A single query parameter of the token. The value is stored already
//percent-encoded so serialization is plain concatenation.
type queryParameter struct {
	key   string
	value string
}

type queryParameters []queryParameter

//Serialize in insertion order. This is the order used in the final token.
func (q queryParameters) queryString() string {
	var sb strings.Builder
	for i, qp := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(qp.key)
		sb.WriteByte('=')
		sb.WriteString(qp.value)
	}
	return sb.String()
}

//Serialize sorted ascending by key. This is the order the sigv4 canonical
//request requires. The keys in this protocol are a fixed distinct set so no
//tie-break is needed.
func (q queryParameters) canonicalQueryString() string {
	sorted := slices.Clone(q)
	slices.SortFunc(sorted, func(a, b queryParameter) int {
		return strings.Compare(a.key, b.key)
	})
	return sorted.queryString()
}

//The fixed query parameters of an rds-db connect request, in the insertion
//order the final token will carry them.
func connectQueryParameters(p Parameters, dateStamp, dateTimeStamp string) queryParameters {
	credential := p.AccessKeyID + "/" + dateStamp + "/" + p.RegionID + "/" +
		constants.ServiceName + "/" + constants.AWS4Terminator
	return queryParameters{
		{"Action", constants.ConnectAction},
		{"DBUser", utils.UriEncode(p.DBUsername, true)},
		{constants.AmzAlgorithmKey, constants.SigningAlgorithm},
		{constants.AmzDateKey, dateTimeStamp},
		{constants.AmzSignedHeadersKey, constants.SignedHeader},
		{constants.AmzExpiresKey, strconv.Itoa(p.ExpirySeconds)},
		{constants.AmzCredentialKey, utils.UriEncode(credential, true)},
	}
}
