package selector

import (
	"context"
	"fmt"

	"github.com/sestrella/ecsr/client"
)

// Selection holds everything needed to reach a container. Service is only
// used to narrow down the tasks.
type Selection struct {
	Profile   string
	Cluster   string
	Service   string
	Task      string
	Container string
	Command   string
}

// ProfileLister returns the credential profiles to choose from.
type ProfileLister func() ([]string, error)

// ClientFactory opens a Client for the given profile.
type ClientFactory func(ctx context.Context, profile string) (client.Client, error)

// Cascade narrows down profile, cluster, service, task and container one
// stage at a time; every stage filters on the choices made before it.
type Cascade struct {
	profiles  ProfileLister
	newClient ClientFactory
	chooser   Chooser
}

func NewCascade(profiles ProfileLister, newClient ClientFactory, chooser Chooser) *Cascade {
	return &Cascade{
		profiles:  profiles,
		newClient: newClient,
		chooser:   chooser,
	}
}

func (c *Cascade) Run(ctx context.Context) (Selection, error) {
	profiles, err := c.profiles()
	if err != nil {
		return Selection{}, err
	}
	profile, err := c.choose("Profile", "profile", profiles)
	if err != nil {
		return Selection{}, err
	}

	ecsClient, err := c.newClient(ctx, profile)
	if err != nil {
		return Selection{}, err
	}

	clusters, err := ecsClient.ListClusters(ctx)
	if err != nil {
		return Selection{}, err
	}
	cluster, err := c.choose("Cluster", "cluster", clusters)
	if err != nil {
		return Selection{}, err
	}

	services, err := ecsClient.ListServices(ctx, cluster)
	if err != nil {
		return Selection{}, err
	}
	service, err := c.choose("Service", "service", services)
	if err != nil {
		return Selection{}, err
	}

	tasks, err := ecsClient.ListTasks(ctx, cluster, service)
	if err != nil {
		return Selection{}, err
	}
	task, err := c.choose("Task", "task", tasks)
	if err != nil {
		return Selection{}, err
	}

	containers, err := ecsClient.ListContainers(ctx, cluster, task)
	if err != nil {
		return Selection{}, err
	}
	container, err := c.choose("Container", "container", containers)
	if err != nil {
		return Selection{}, err
	}

	command, err := c.chooser.Input("Command")
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		Profile:   profile,
		Cluster:   cluster,
		Service:   service,
		Task:      task,
		Container: container,
		Command:   command,
	}, nil
}

func (c *Cascade) choose(title string, resource string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", &NoCandidatesError{Resource: resource}
	}

	i, err := c.chooser.Select(title, candidates)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(candidates) {
		return "", fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndexOutOfRange, resource, i, len(candidates))
	}

	return candidates[i], nil
}
