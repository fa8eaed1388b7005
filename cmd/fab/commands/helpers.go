package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fabworks-io/fabric-client/pkg/fabclient"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrNoCredentials     = errors.New("no credentials configured (set a token or client id and secret)")
	ErrWorkspaceRequired = errors.New("workspace is required (use --workspace or set a default)")
	ErrReportRequired    = errors.New("report name or id is required")
	ErrDatasetRequired   = errors.New("semantic model name or id is required")
)

// CreateClient builds a Fabric client from the resolved configuration.
func CreateClient() (fabric.Client, error) {
	config := &fabric.Config{
		APIEndpoint:     viper.GetString("api"),
		PowerBIEndpoint: viper.GetString("powerbi-api"),
		AccessToken:     viper.GetString("token"),
		TenantID:        viper.GetString("tenant"),
		ClientID:        viper.GetString("client-id"),
		ClientSecret:    viper.GetString("client-secret"),
	}

	if config.AccessToken == "" && (config.ClientID == "" || config.ClientSecret == "") {
		return nil, ErrNoCredentials
	}

	workspace := viper.GetString("workspace")
	lakehouse := viper.GetString("lakehouse")

	if workspace != "" || lakehouse != "" {
		config.Ambient = &fabric.StaticAmbient{
			WorkspaceID: workspace,
			LakehouseID: lakehouse,
		}
	}

	client, err := fabclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer writes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// outputTable renders a flattened listing in the configured output format.
func outputTable(listing *fabric.Table) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(listing)
	case OutputFormatYAML:
		return StandardYAMLRenderer(listing)
	default:
		return renderTable(listing)
	}
}

func renderTable(listing *fabric.Table) error {
	table := tablewriter.NewWriter(os.Stdout)

	header := make([]any, len(listing.Columns))
	for i, column := range listing.Columns {
		header[i] = column
	}

	table.Header(header...)

	for _, row := range listing.Rows {
		values := make([]any, len(listing.Columns))
		for i, column := range listing.Columns {
			values[i] = row[column]
		}

		_ = table.Append(values...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// normalizeItemType maps a loosely typed user input to the item type casing
// the Fabric API expects. Known multi-word types are handled explicitly;
// anything else is title-cased.
func normalizeItemType(itemType string) string {
	switch cases.Lower(language.English).String(itemType) {
	case "":
		return ""
	case "lakehouse":
		return fabric.ItemTypeLakehouse
	case "mounteddatafactory":
		return fabric.ItemTypeMountedDataFactory
	case "kqlqueryset":
		return fabric.ItemTypeKQLQueryset
	case "semanticmodel":
		return fabric.ItemTypeSemanticModel
	case "report":
		return fabric.ItemTypeReport
	default:
		return cases.Title(language.English).String(itemType)
	}
}
