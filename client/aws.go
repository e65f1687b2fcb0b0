//go:build !DEMO

package client

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewClient loads the shared configuration for profile, checks that its
// credentials are usable and returns an ECS backed Client.
func NewClient(ctx context.Context, profile string) (Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return nil, &LookupError{Op: fmt.Sprintf("load profile %s", profile), Err: err}
	}

	account, err := CallerAccount(ctx, sts.NewFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	log.Printf("Using account %s in region %s", account, cfg.Region)

	return New(ecs.NewFromConfig(cfg)), nil
}
