package fabclient

import (
	"fmt"
	"strings"

	"github.com/fabworks-io/fabric-client/internal/client"
	"github.com/fabworks-io/fabric-client/internal/constants"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// New creates a new Fabric API client.
//
// The API endpoint defaults to the public Fabric endpoint and is
// normalized to an https URL with no trailing slash. Authentication comes
// from Config.AccessToken or an AAD client-credentials grant.
func New(config *fabric.Config) (fabric.Client, error) {
	if config == nil {
		return nil, fabric.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		config.APIEndpoint = constants.DefaultFabricEndpoint
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	if config.PowerBIEndpoint == "" {
		config.PowerBIEndpoint = constants.DefaultPowerBIEndpoint
	}

	config.PowerBIEndpoint = normalizeEndpoint(config.PowerBIEndpoint)

	fabricClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return fabricClient, nil
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to
// https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
