// Package arn reduces ECS resource ARNs to the short identifiers used as
// filters and prompt options.
package arn

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// ErrMalformedIdentifier is returned when a resource name does not match the
// template expected for its resource type.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// ResourceType is the resource-type segment of an ECS ARN.
type ResourceType string

const (
	Cluster ResourceType = "cluster"
	Service ResourceType = "service"
	Task    ResourceType = "task"
)

var (
	accountIdRegex = regexp.MustCompile(`^[0-9]{12}$`)
	parentCounts   = map[ResourceType]int{
		Cluster: 0,
		Service: 1,
		Task:    1,
	}
)

// Extract returns the identifier that follows the resource type and the
// parent identifiers in resourceName, for example:
//
//	Extract("arn:aws:ecs:us-east-1:123456789012:service/prod/web-api", Service, "prod") // "web-api"
//
// Clusters take no parents; services and tasks take their cluster identifier.
func Extract(resourceName string, resourceType ResourceType, parents ...string) (string, error) {
	want, ok := parentCounts[resourceType]
	if !ok {
		return "", fmt.Errorf("%w: unknown resource type %q", ErrMalformedIdentifier, resourceType)
	}
	if len(parents) != want {
		return "", fmt.Errorf(
			"%w: %s expects %d parent identifier(s), got %d",
			ErrMalformedIdentifier,
			resourceType,
			want,
			len(parents),
		)
	}

	parsed, err := awsarn.Parse(resourceName)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedIdentifier, resourceName, err)
	}
	if parsed.Service != "ecs" || !accountIdRegex.MatchString(parsed.AccountID) {
		return "", malformed(resourceName, resourceType)
	}

	prefix := strings.Join(append([]string{string(resourceType)}, parents...), "/") + "/"
	id, found := strings.CutPrefix(parsed.Resource, prefix)
	if !found || id == "" {
		return "", malformed(resourceName, resourceType)
	}

	return id, nil
}

func malformed(resourceName string, resourceType ResourceType) error {
	return fmt.Errorf("%w: %q is not a %s ARN", ErrMalformedIdentifier, resourceName, resourceType)
}
