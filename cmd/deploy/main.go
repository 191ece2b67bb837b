// Command deploy manages AI Debate Team deployments on the managed agent
// engine service. Flags take priority over environment variables, which may
// also be supplied through a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/your-org/ai-debate-team/config"
	"github.com/your-org/ai-debate-team/deployment"
)

var (
	flagProjectID  string
	flagLocation   string
	flagBucket     string
	flagEndpoint   string
	flagResourceID string
)

func main() {
	root := &cobra.Command{
		Use:          "deploy",
		Short:        "Manage AI Debate Team deployments on the agent engine service",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagProjectID, "project-id", "", "GCP project ID (overrides GOOGLE_CLOUD_PROJECT)")
	root.PersistentFlags().StringVar(&flagLocation, "location", "", "GCP location (overrides GOOGLE_CLOUD_LOCATION)")
	root.PersistentFlags().StringVar(&flagBucket, "bucket", "", "GCS staging bucket (overrides GOOGLE_CLOUD_STORAGE_BUCKET)")
	root.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "agent engine endpoint (overrides AGENT_ENGINE_ENDPOINT)")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Deploy a new agent engine",
		RunE:  runCreate,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all agent engines",
		RunE:  runList,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an agent engine",
		RunE:  runDelete,
	}
	deleteCmd.Flags().StringVar(&flagResourceID, "resource-id", "", "resource ID of the engine to delete (required)")

	root.AddCommand(createCmd, listCmd, deleteCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves configuration with flags taking priority over the
// environment, then validates the deployment settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagProjectID != "" {
		cfg.ProjectID = flagProjectID
	}
	if flagLocation != "" {
		cfg.Location = flagLocation
	}
	if flagBucket != "" {
		cfg.Bucket = flagBucket
	}
	if flagEndpoint != "" {
		cfg.EngineEndpoint = flagEndpoint
	}
	if err := cfg.ValidateDeployment(); err != nil {
		return nil, err
	}

	fmt.Printf("PROJECT: %s\n", cfg.ProjectID)
	fmt.Printf("LOCATION: %s\n", cfg.Location)
	fmt.Printf("BUCKET: %s\n", cfg.StagingBucketURI())

	return cfg, nil
}

func newClient(cfg *config.Config) *deployment.Client {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	return deployment.NewClient(deployment.ClientConfig{
		Endpoint: cfg.EngineEndpoint,
		Project:  cfg.ProjectID,
		Location: cfg.Location,
		Options:  deployment.ClientOptions{Token: cfg.EngineToken},
		Logger:   log,
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := newClient(cfg).Create(cmd.Context(), deployment.NewManifest(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("Created remote app: %s\n", engine.Name)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engines, err := newClient(cfg).List(cmd.Context())
	if err != nil {
		return err
	}

	if len(engines) == 0 {
		fmt.Println("No agent engines found.")
		return nil
	}
	fmt.Println("All remote apps:")
	for _, engine := range engines {
		fmt.Printf("- %s (%q, created %s)\n",
			engine.Name, engine.DisplayName, engine.CreateTime.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if flagResourceID == "" {
		return fmt.Errorf("resource-id is required for delete")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := newClient(cfg).Delete(cmd.Context(), flagResourceID); err != nil {
		return err
	}

	fmt.Printf("Deleted remote app: %s\n", flagResourceID)
	return nil
}
