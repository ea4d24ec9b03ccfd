package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pawmark-hq/catpedia/internal/config"
	"github.com/pawmark-hq/catpedia/internal/logger"
	"github.com/pawmark-hq/catpedia/pkg/catapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "catpedia: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := catapi.New(catapi.Config{
		BaseURL:     cfg.APIBaseURL,
		ImageCDNURL: cfg.ImageCDNURL,
		APIKey:      cfg.APIKey,
		HTTPTimeout: cfg.HTTPTimeout,
	}, catapi.WithLogger(log))
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	root := rootCommand(client)
	return root.ExecuteContext(ctx)
}

func rootCommand(client *catapi.Client) *cobra.Command {
	root := &cobra.Command{
		Use:           "catpedia",
		Short:         "Look up cat breeds and images from the remote cat API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(breedCommand(client))
	root.AddCommand(breedsCommand(client))
	root.AddCommand(imageCommand(client))

	return root
}

func breedCommand(client *catapi.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "breed <query>",
		Short: "Show the breed card for the best match of a free-text query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breed, err := client.SearchBreed(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBreedCard(cmd, breed)

			imgURL, err := client.BreedImageURL(cmd.Context(), args[0])
			if err == nil {
				cmd.Printf("Image:        %s\n", imgURL)
			}
			return nil
		},
	}
}

func breedsCommand(client *catapi.Client) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "List breeds in the server's alphabetical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			breeds, err := client.ListBreeds(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, b := range breeds {
				cmd.Printf("%-6s %s\n", b.ID, b.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", catapi.DefaultBreedLimit, "maximum number of breeds to list")
	return cmd
}

func imageCommand(client *catapi.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "image",
		Short: "Print the URL of one random cat image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := client.RandomImageURL(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(url)
			return nil
		},
	}
}

func printBreedCard(cmd *cobra.Command, b catapi.Breed) {
	cmd.Printf("Name:         %s\n", b.Name)
	if b.Origin != "" {
		cmd.Printf("Origin:       %s\n", b.Origin)
	}
	if b.LifeSpan != "" {
		cmd.Printf("Life span:    %s years\n", b.LifeSpan)
	}
	if b.Temperament != "" {
		cmd.Printf("Temperament:  %s\n", b.Temperament)
	}
	cmd.Printf("Traits:       affection %d/5, intelligence %d/5, child friendly %d/5, energy %d/5, adaptability %d/5\n",
		b.AffectionLevel, b.Intelligence, b.ChildFriendly, b.EnergyLevel, b.Adaptability)
	if b.Description != "" {
		cmd.Printf("\n%s\n", wrap(b.Description, 78))
	}
}

// wrap folds text at the last space before width. Good enough for terminal
// breed descriptions.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var sb strings.Builder
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = w
			continue
		}
		line += " " + w
	}
	sb.WriteString(line)
	return sb.String()
}
