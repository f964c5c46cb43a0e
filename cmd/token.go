package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/iamtoken"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/usererror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const tokenCmdName = "token"

var tokenCmd = &cobra.Command{
	Use:   tokenCmdName,
	Short: "Generate one RDS IAM auth token and print it on stdout",
	Long: `Generates a token for the endpoint configured via environment variables
(RDS_HOSTNAME, RDS_PORT, RDS_DB_USERNAME and optionally AWS_RDS_REGION and
RDS_TOKEN_EXPIRY_SECONDS) and prints it on stdout. Use the token as the
database password together with the configured database user.

AWS credentials are taken from AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY when
both are set, otherwise from the AWS default credential chain.`,
	Run: func(cmd *cobra.Command, args []string) {
		BindEnvVariables(tokenCmdName)
		token, err := generateToken(cmd.Context())
		if err != nil {
			slog.Error("Could not generate token", "error", usererror.AsFlatSensitiveString(err))
			if ue := usererror.Get(err); ue != nil {
				fmt.Fprintln(os.Stderr, ue.Error())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
		fmt.Println(token.Token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func generateToken(ctx context.Context) (iamtoken.Token, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	accessKeyID := viper.GetString(awsAccessKeyId)
	secretKey := viper.GetString(awsSecretAccessKey)
	if accessKeyID == "" || secretKey == "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return iamtoken.Token{}, fmt.Errorf("could not load AWS config: %w", err)
		}
		creds, err := cfg.Credentials.Retrieve(ctx)
		if err != nil {
			return iamtoken.Token{}, fmt.Errorf("could not obtain AWS credentials from the default chain: %w", err)
		}
		accessKeyID = creds.AccessKeyID
		secretKey = creds.SecretAccessKey
	}

	return iamtoken.GetToken(iamtoken.Parameters{
		AccessKeyID:   accessKeyID,
		SecretKey:     secretKey,
		RegionID:      getRdsRegion(),
		Hostname:      getRdsHostname(),
		Port:          getRdsPort(),
		DBUsername:    getRdsDbUsername(),
		ExpirySeconds: getTokenExpirySeconds(),
	})
}
