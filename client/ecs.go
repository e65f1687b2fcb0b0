package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/sestrella/ecsr/client/arn"
)

var _ Client = ecsClient{}

type ecsClient struct {
	api ECSAPI
}

// New returns a Client backed by the given ECS API.
func New(api ECSAPI) Client {
	return ecsClient{api: api}
}

func (c ecsClient) ListClusters(ctx context.Context) ([]string, error) {
	var clusterArns []string
	paginator := ecs.NewListClustersPaginator(c.api, &ecs.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &LookupError{Op: "list clusters", Err: err}
		}
		clusterArns = append(clusterArns, page.ClusterArns...)
	}

	return extractAll(clusterArns, arn.Cluster)
}

func (c ecsClient) ListServices(ctx context.Context, cluster string) ([]string, error) {
	var serviceArns []string
	paginator := ecs.NewListServicesPaginator(c.api, &ecs.ListServicesInput{
		Cluster: &cluster,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &LookupError{
				Op:  fmt.Sprintf("list services in cluster %s", cluster),
				Err: err,
			}
		}
		serviceArns = append(serviceArns, page.ServiceArns...)
	}

	return extractAll(serviceArns, arn.Service, cluster)
}

func (c ecsClient) ListTasks(
	ctx context.Context,
	cluster string,
	service string,
) ([]string, error) {
	var taskArns []string
	paginator := ecs.NewListTasksPaginator(c.api, &ecs.ListTasksInput{
		Cluster:     &cluster,
		ServiceName: &service,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &LookupError{
				Op:  fmt.Sprintf("list tasks for service %s in cluster %s", service, cluster),
				Err: err,
			}
		}
		taskArns = append(taskArns, page.TaskArns...)
	}

	return extractAll(taskArns, arn.Task, cluster)
}

func (c ecsClient) ListContainers(
	ctx context.Context,
	cluster string,
	task string,
) ([]string, error) {
	output, err := c.api.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: &cluster,
		Tasks:   []string{task},
	})
	if err != nil {
		return nil, &LookupError{
			Op:  fmt.Sprintf("describe task %s in cluster %s", task, cluster),
			Err: err,
		}
	}
	if len(output.Tasks) == 0 && len(output.Failures) > 0 {
		var reasons []string
		for _, failure := range output.Failures {
			reasons = append(reasons, fmt.Sprintf("%s: %s", aws.ToString(failure.Arn), aws.ToString(failure.Reason)))
		}
		return nil, &LookupError{
			Op:  fmt.Sprintf("describe task %s in cluster %s", task, cluster),
			Err: errors.New(strings.Join(reasons, ", ")),
		}
	}

	containerNames := []string{}
	for _, t := range output.Tasks {
		for _, container := range t.Containers {
			if container.Name != nil {
				containerNames = append(containerNames, *container.Name)
			}
		}
	}

	return containerNames, nil
}

func extractAll(resourceArns []string, resourceType arn.ResourceType, parents ...string) ([]string, error) {
	ids := make([]string, 0, len(resourceArns))
	for _, resourceArn := range resourceArns {
		id, err := arn.Extract(resourceArn, resourceType, parents...)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
