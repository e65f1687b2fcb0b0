package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// IdentityAPI is the subset of *sts.Client used to check a session.
type IdentityAPI interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// CallerAccount returns the account the session credentials belong to.
func CallerAccount(ctx context.Context, api IdentityAPI) (string, error) {
	output, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", &LookupError{Op: "get caller identity", Err: err}
	}
	return aws.ToString(output.Account), nil
}
