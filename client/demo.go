//go:build DEMO

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

const demoArnPrefix = "arn:aws:ecs:us-east-1:123456789012"

var _ ECSAPI = demoECS{}

type demoECS struct{}

func NewClient(_ context.Context, _ string) (Client, error) {
	return New(demoECS{}), nil
}

func (demoECS) ListClusters(
	ctx context.Context,
	params *ecs.ListClustersInput,
	optFns ...func(*ecs.Options),
) (*ecs.ListClustersOutput, error) {
	return &ecs.ListClustersOutput{
		ClusterArns: []string{
			demoArnPrefix + ":cluster/cluster-1",
			demoArnPrefix + ":cluster/cluster-2",
		},
	}, nil
}

func (demoECS) ListServices(
	ctx context.Context,
	params *ecs.ListServicesInput,
	optFns ...func(*ecs.Options),
) (*ecs.ListServicesOutput, error) {
	cluster := aws.ToString(params.Cluster)
	return &ecs.ListServicesOutput{
		ServiceArns: []string{
			fmt.Sprintf("%s:service/%s/service-1", demoArnPrefix, cluster),
			fmt.Sprintf("%s:service/%s/service-2", demoArnPrefix, cluster),
		},
	}, nil
}

func (demoECS) ListTasks(
	ctx context.Context,
	params *ecs.ListTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.ListTasksOutput, error) {
	cluster := aws.ToString(params.Cluster)
	return &ecs.ListTasksOutput{
		TaskArns: []string{
			fmt.Sprintf("%s:task/%s/task-1", demoArnPrefix, cluster),
			fmt.Sprintf("%s:task/%s/task-2", demoArnPrefix, cluster),
		},
	}, nil
}

func (demoECS) DescribeTasks(
	ctx context.Context,
	params *ecs.DescribeTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.DescribeTasksOutput, error) {
	tasks := []types.Task{}
	for _, task := range params.Tasks {
		tasks = append(tasks, types.Task{
			TaskArn:    aws.String(fmt.Sprintf("%s:task/%s/%s", demoArnPrefix, aws.ToString(params.Cluster), task)),
			LastStatus: aws.String("RUNNING"),
			Containers: []types.Container{
				{Name: aws.String(strings.Replace(task, "task", "container", 1) + "-app")},
				{Name: aws.String(strings.Replace(task, "task", "container", 1) + "-sidecar")},
			},
		})
	}
	return &ecs.DescribeTasksOutput{Tasks: tasks}, nil
}
