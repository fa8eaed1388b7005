package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fabworks-io/fabric-client/pkg/fabclient"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		tenantID     string
		clientID     string
		clientSecret string
		accessToken  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Microsoft Fabric",
		Long:  "Authenticate against the Fabric API and store the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := &fabric.Config{
				APIEndpoint:     viper.GetString("api"),
				PowerBIEndpoint: viper.GetString("powerbi-api"),
			}

			if accessToken != "" {
				config.AccessToken = accessToken
			} else {
				if tenantID == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Tenant id: ")
					tenantID, _ = reader.ReadString('\n')
					tenantID = strings.TrimSpace(tenantID)
				}

				if clientID == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Client id: ")
					clientID, _ = reader.ReadString('\n')
					clientID = strings.TrimSpace(clientID)
				}

				if clientSecret == "" {
					fmt.Print("Client secret: ")
					byteSecret, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read client secret: %w", err)
					}
					clientSecret = string(byteSecret)
					fmt.Println()
				}

				config.TenantID = tenantID
				config.ClientID = clientID
				config.ClientSecret = clientSecret
			}

			// Create client and verify the credentials work
			client, err := fabclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			_, err = client.Workspaces().ListAll(context.Background())
			if err != nil {
				return fmt.Errorf("authentication check failed: %w", err)
			}

			err = saveCredentials(config)
			if err != nil {
				return err
			}

			fmt.Println("Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "AAD tenant id")
	cmd.Flags().StringVar(&clientID, "client-id", "", "AAD client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "AAD client secret")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "use a pre-acquired access token")

	return cmd
}

// storedCredentials is the on-disk shape of ~/.fab/config.yml.
type storedCredentials struct {
	API          string `yaml:"api,omitempty"`
	PowerBIAPI   string `yaml:"powerbi-api,omitempty"`
	Token        string `yaml:"token,omitempty"`
	Tenant       string `yaml:"tenant,omitempty"`
	ClientID     string `yaml:"client-id,omitempty"`
	ClientSecret string `yaml:"client-secret,omitempty"`
}

func saveCredentials(config *fabric.Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".fab")

	err = os.MkdirAll(configDir, 0700)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	credentials := storedCredentials{
		API:          config.APIEndpoint,
		PowerBIAPI:   config.PowerBIEndpoint,
		Token:        config.AccessToken,
		Tenant:       config.TenantID,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}

	data, err := yaml.Marshal(credentials)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	err = os.WriteFile(filepath.Join(configDir, "config.yml"), data, 0600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
