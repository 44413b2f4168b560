package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"colorctl/pkg/logging"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the default repository releases are fetched from.
var githubRepoSlug = "vigneshncc/JSColor"

var updateRepo string

// release is the part of a GitHub release self-update acts on.
type release struct {
	Version   string
	AssetURL  string
	AssetName string
}

// For mocking in tests
var detectLatest = func(ctx context.Context, slug string) (release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil || !found {
		return release{}, found, err
	}
	return release{Version: latest.Version(), AssetURL: latest.AssetURL, AssetName: latest.AssetName}, true, nil
}

var updateTo = selfupdate.UpdateTo

var executablePath = selfupdate.ExecutablePath

func newSelfUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self-update",
		Short: "Update colorctl to the latest version",
		Long: `Checks for the latest release of colorctl on GitHub and
updates the current binary if a newer version is found.

Use --repo to follow a fork or a mirror that publishes colorctl releases.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
	cmd.Flags().StringVar(&updateRepo, "repo", githubRepoSlug, "GitHub repository (owner/name) to fetch releases from")
	return cmd
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}
	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("current version %q is not a release version: %w", currentVersion, err)
	}

	var out io.Writer = os.Stdout
	ctx := context.Background()
	if cmd != nil {
		out = cmd.OutOrStdout()
		ctx = cmd.Context()
	}
	repo := updateRepo
	if repo == "" {
		repo = githubRepoSlug
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintf(out, "Checking %s for updates...\n", repo)

	latest, found, err := detectLatest(ctx, repo)
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("no colorctl release found in github repository %s", repo)
	}

	latestVersion, err := semver.NewVersion(latest.Version)
	if err != nil {
		return fmt.Errorf("latest release has an invalid version %q: %w", latest.Version, err)
	}
	if !latestVersion.GreaterThan(current) {
		fmt.Fprintf(out, "Current version (%s) is the latest\n", currentVersion)
		return nil
	}

	exe, err := executablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logging.Debug("SelfUpdate", "Downloading %s from %s", latest.AssetName, latest.AssetURL)
	fmt.Fprintf(out, "Updating to %s...\n", latest.Version)
	if err := updateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version)
	return nil
}
