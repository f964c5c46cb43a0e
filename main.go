package main

import "github.com/lbruun/AWS-RDS-IAM-Tokens/cmd"

func main() {
	cmd.Execute()
}
