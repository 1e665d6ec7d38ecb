// Package dockerclient adapts the Docker SDK client to the narrow
// engine interface consumed by the sensor reporters.
package dockerclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
)

// Client is the production sensor.Engine backed by the local Docker
// daemon (socket or DOCKER_HOST).
type Client struct {
	api *client.Client
}

// New connects to the Docker daemon with environment defaults.
func New() (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating Docker client: %w", err)
	}
	return &Client{api: api}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.api.Close()
}

// ListImages returns all images known to the engine.
func (c *Client) ListImages(ctx context.Context) ([]image.Summary, error) {
	return c.api.ImageList(ctx, image.ListOptions{})
}

// ListVolumes returns all volumes known to the engine.
func (c *Client) ListVolumes(ctx context.Context) ([]*volume.Volume, error) {
	resp, err := c.api.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, err
	}
	return resp.Volumes, nil
}

// ListContainers returns containers matching one engine filter.
func (c *Client) ListContainers(ctx context.Context, filterKey, filterValue string) ([]container.Summary, error) {
	return c.api.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg(filterKey, filterValue)),
	})
}

// ContainerStats opens the streaming stats endpoint for the container,
// decodes exactly one sample, and closes the stream.
func (c *Client) ContainerStats(ctx context.Context, containerID string) (container.StatsResponse, error) {
	reader, err := c.api.ContainerStats(ctx, containerID, true)
	if err != nil {
		return container.StatsResponse{}, err
	}
	defer reader.Body.Close()

	var stats container.StatsResponse
	if err := json.NewDecoder(reader.Body).Decode(&stats); err != nil {
		return container.StatsResponse{}, fmt.Errorf("decoding stats sample: %w", err)
	}
	return stats, nil
}
