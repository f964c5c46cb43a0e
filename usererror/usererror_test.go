package usererror_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lbruun/AWS-RDS-IAM-Tokens/usererror"
)

func TestUserErrorGivesUserFacingString(t *testing.T) {
	//Given internal and userfacing error details
	internalErr := errors.New("secret key was 40 chars but contained whitespace")
	publicDetails := "awsSecretKey must be supplied"

	//When we create a user error out of it
	ue := usererror.New(internalErr, publicDetails)

	//Then it should be user facing
	if !usererror.IsUserFacing(ue) {
		t.Error("Error was not user facing")
	}
	//Then it should result in the user facing details
	if publicDetails != ue.Error() {
		t.Errorf("Got %s, expected %s", ue.Error(), publicDetails)
	}
}

func TestWrappedUserErrorCanStillBeFound(t *testing.T) {
	//Given a user error that got wrapped further up the stack
	internalErr := errors.New("port 0 out of range")
	publicDetails := "portNo must be in range 1-65535"
	ue := usererror.New(internalErr, publicDetails)
	wrappedErr := fmt.Errorf("building token parameters: %w", ue)

	//Then the wrapped error itself is not user facing
	if usererror.IsUserFacing(wrappedErr) {
		t.Error("Wrapped error was userfacing but it shouldn't have been")
	}

	//Then Get digs out the user facing part
	gotten := usererror.Get(wrappedErr)
	if gotten == nil {
		t.Fatal("Expected to find a user error in the chain")
	}
	if publicDetails != gotten.Error() {
		t.Errorf("Got %s, expected %s", gotten.Error(), publicDetails)
	}
}

func TestGetIsSafeOnPlainAndNilErrors(t *testing.T) {
	if ue := usererror.Get(errors.New("just internal")); ue != nil {
		t.Error("Got a user facing error but that should not have been possible", "usererror", ue)
	}
	if ue := usererror.Get(nil); ue != nil {
		t.Error("Got a user facing error for nil input")
	}
}

func TestFlatSensitiveStringKeepsAllDetails(t *testing.T) {
	internalDetails := "region label atlanta not in known region list"
	publicDetails := "regionId must be supplied"
	ue := usererror.New(errors.New(internalDetails), publicDetails)
	wrappedErr := fmt.Errorf("building token parameters: %w", ue)

	flat := usererror.AsFlatSensitiveString(wrappedErr)
	if !strings.Contains(flat, internalDetails) {
		t.Errorf("flat error %q did not contain internal details", flat)
	}
	if !strings.Contains(flat, publicDetails) {
		t.Errorf("flat error %q did not contain public details", flat)
	}
}

func TestFlatSensitiveStringOnNilDoesNotPanic(t *testing.T) {
	usererror.AsFlatSensitiveString(nil)
}
