package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// Client lists the ECS resources a container can be reached through. Every
// operation returns short identifiers in API order; an empty result is not an
// error.
type Client interface {
	ListClusters(ctx context.Context) ([]string, error)
	ListServices(ctx context.Context, cluster string) ([]string, error)
	ListTasks(ctx context.Context, cluster string, service string) ([]string, error)
	ListContainers(ctx context.Context, cluster string, task string) ([]string, error)
}

// ECSAPI is the subset of *ecs.Client used by Client.
type ECSAPI interface {
	ecs.ListClustersAPIClient
	ecs.ListServicesAPIClient
	ecs.ListTasksAPIClient
	ecs.DescribeTasksAPIClient
}

// LookupError reports a failed call to the ECS API.
type LookupError struct {
	Op  string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
