package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

type envVarDef struct {
	//How this config will be retrieved through viper
	viperKey string
	//How this env var is named in the OS env var space
	envVarName string
	//Whether this env var is critical (absolutely required) for execution
	isCritical bool
	//Explain what this env var is for
	description string
	//The cli commands for which it is used
	cmds []string
}

func (e envVarDef) shouldBeSetFor(cmd string) bool {
	for _, applicableCmd := range e.cmds {
		if applicableCmd == cmd {
			return true
		}
	}
	return false
}

const (
	rdsHostname        = "rdsHostname"
	rdsPort            = "rdsPort"
	rdsDbUsername      = "rdsDbUsername"
	rdsRegion          = "rdsRegion"
	tokenExpirySeconds = "tokenExpirySeconds"
	awsAccessKeyId     = "awsAccessKeyId"
	awsSecretAccessKey = "awsSecretAccessKey"

	//Environment variables are upper cased
	//Unless they are wellknown environment variables they should be prefixed
	RDS_HOSTNAME             = "RDS_HOSTNAME"
	RDS_PORT                 = "RDS_PORT"
	RDS_DB_USERNAME          = "RDS_DB_USERNAME"
	AWS_RDS_REGION           = "AWS_RDS_REGION"
	RDS_TOKEN_EXPIRY_SECONDS = "RDS_TOKEN_EXPIRY_SECONDS"
	AWS_ACCESS_KEY_ID        = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY    = "AWS_SECRET_ACCESS_KEY"
)

var envVarDefs = []envVarDef{
	{
		rdsHostname,
		RDS_HOSTNAME,
		true,
		"The hostname of the RDS endpoint (the Address element of the endpoint, not a DNS alias)",
		[]string{tokenCmdName},
	},
	{
		rdsPort,
		RDS_PORT,
		true,
		"The TCP port of the RDS endpoint (e.g. 5432 for PostgreSQL, 3306 for MySQL)",
		[]string{tokenCmdName},
	},
	{
		rdsDbUsername,
		RDS_DB_USERNAME,
		true,
		"The database user to generate the token for",
		[]string{tokenCmdName},
	},
	{
		rdsRegion,
		AWS_RDS_REGION,
		false,
		"The AWS region of the RDS endpoint. Optional when it can be derived from the hostname",
		[]string{tokenCmdName},
	},
	{
		tokenExpirySeconds,
		RDS_TOKEN_EXPIRY_SECONDS,
		false,
		"How long the token should be valid in seconds (defaults to 900)",
		[]string{tokenCmdName},
	},
	{
		awsAccessKeyId,
		AWS_ACCESS_KEY_ID,
		false,
		"AWS access key id used for signing. When unset the AWS default credential chain is used",
		[]string{tokenCmdName},
	},
	{
		awsSecretAccessKey,
		AWS_SECRET_ACCESS_KEY,
		false,
		"AWS secret key used for signing. When unset the AWS default credential chain is used",
		[]string{tokenCmdName},
	},
}

func getRdsHostname() string {
	return viper.GetString(rdsHostname)
}

func getRdsPort() int {
	return viper.GetInt(rdsPort)
}

func getRdsDbUsername() string {
	return viper.GetString(rdsDbUsername)
}

func getRdsRegion() string {
	return viper.GetString(rdsRegion)
}

func getTokenExpirySeconds() int {
	return viper.GetInt(tokenExpirySeconds)
}

//Bind the environment variables for a command
func BindEnvVariables(cmd string) {
	for _, evd := range envVarDefs {
		if evd.shouldBeSetFor(cmd) {
			err := viper.BindEnv(evd.viperKey, evd.envVarName)
			if err != nil {
				panic(err)
			}
			checkViperVarNotEmpty(evd)
		}
	}
}

func checkViperVarNotEmpty(evd envVarDef) {
	r := viper.Get(evd.viperKey)
	if r == nil {
		if evd.isCritical {
			slog.Error("Mandatory key is empty", "viperKey", evd.viperKey, "envVarName", evd.envVarName, "description", evd.description)
			fmt.Printf("key %s[%s] is mandatory, aborting\n", evd.viperKey, evd.envVarName)
			os.Exit(1)
		} else {
			slog.Info("Optional key empty", "viperKey", evd.viperKey, "envVarName", evd.envVarName, "description", evd.description)
		}
	}
}
