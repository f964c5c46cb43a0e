package regionutils

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/usererror"
	"github.com/spf13/viper"
)

// RegionEnvVar is the environment variable consulted when a region was
// neither supplied explicitly nor derivable from the endpoint hostname.
const RegionEnvVar = "AWS_RDS_REGION"

const regionViperKey = "rdsRegion"

const rdsHostnameSuffix = ".rds.amazonaws.com"

// KnownRegionIDs lists the AWS region identifiers that are trusted when
// deriving a region from a hostname. A hostname label that is not in this
// list is never taken for a region.
var KnownRegionIDs = []string{
	"ap-south-1",
	"eu-south-1",
	"us-gov-east-1",
	"ca-central-1",
	"eu-central-1",
	"us-west-1",
	"us-west-2",
	"af-south-1",
	"eu-north-1",
	"eu-west-3",
	"eu-west-2",
	"eu-west-1",
	"ap-northeast-2",
	"ap-northeast-1",
	"me-south-1",
	"sa-east-1",
	"ap-east-1",
	"cn-north-1",
	"us-gov-west-1",
	"ap-southeast-1",
	"ap-southeast-2",
	"us-iso-east-1",
	"us-east-1",
	"us-east-2",
	"cn-northwest-1",
	"us-isob-east-1",
	"aws-global",
	"aws-cn-global",
	"aws-us-gov-global",
	"aws-iso-global",
	"aws-iso-b-global",
}

// RegionFromHostname derives the AWS region id from an RDS endpoint hostname
// like mydbcluster.cluster-123456789012.us-east-1.rds.amazonaws.com. Case is
// irrelevant. The region label must be a member of KnownRegionIDs and every
// label in front of the .rds.amazonaws.com suffix must be non-empty,
// otherwise the derivation errs on the side of caution and reports false.
func RegionFromHostname(hostname string) (string, bool) {
	if len(hostname) <= len(rdsHostnameSuffix) {
		return "", false
	}
	host := strings.ToLower(hostname)
	if !strings.HasSuffix(host, rdsHostnameSuffix) {
		return "", false
	}
	// Example fragment: mydb.eb6biuyqt2qc.eu-central-1
	fragment := strings.TrimSuffix(host, rdsHostnameSuffix)
	labels := strings.Split(fragment, ".")
	if len(labels) < 2 {
		return "", false
	}
	for _, label := range labels {
		if label == "" {
			return "", false
		}
	}
	region := labels[len(labels)-1]
	if !slices.Contains(KnownRegionIDs, region) {
		return "", false
	}
	return region, true
}

// Resolve determines the region id for a token request. The recognized
// sources are tried in order: the explicitly supplied value, derivation from
// the hostname, and finally external configuration (RegionEnvVar). If none
// of them yields a region a user facing error is returned.
func Resolve(explicitRegionID, hostname string) (string, error) {
	if explicitRegionID != "" {
		return explicitRegionID, nil
	}
	if region, ok := RegionFromHostname(hostname); ok {
		return region, nil
	}
	if err := viper.BindEnv(regionViperKey, RegionEnvVar); err != nil {
		return "", err
	}
	if region := viper.GetString(regionViperKey); region != "" {
		return region, nil
	}
	return "", usererror.New(
		fmt.Errorf("region not set explicitly, not derivable from hostname %q and %s not set", hostname, RegionEnvVar),
		"regionId must be supplied, be derivable from the hostname or be set via "+RegionEnvVar,
	)
}
