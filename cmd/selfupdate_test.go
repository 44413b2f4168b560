package cmd

import (
	"context"
	"errors"
	"testing"

	"colorctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateCall struct {
	assetURL, assetName, exe string
}

// mockUpdater replaces the GitHub lookup and the binary swap for one test.
func mockUpdater(t *testing.T, latest release, found bool, detectErr error) (*string, *[]updateCall) {
	t.Helper()
	originalDetect, originalUpdate, originalExe := detectLatest, updateTo, executablePath
	t.Cleanup(func() {
		detectLatest, updateTo, executablePath = originalDetect, originalUpdate, originalExe
	})

	var askedRepo string
	var calls []updateCall
	detectLatest = func(ctx context.Context, slug string) (release, bool, error) {
		askedRepo = slug
		return latest, found, detectErr
	}
	updateTo = func(ctx context.Context, assetURL, assetName, exe string) error {
		calls = append(calls, updateCall{assetURL, assetName, exe})
		return nil
	}
	executablePath = func() (string, error) { return "/usr/local/bin/colorctl", nil }
	return &askedRepo, &calls
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	originalVersion := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = originalVersion })
	rootCmd.Version = v
}

func TestSelfUpdate_RefusesDevelopmentVersions(t *testing.T) {
	for _, v := range []string{"", "dev"} {
		withVersion(t, v)
		_, calls := mockUpdater(t, release{}, false, nil)

		err := runSelfUpdate(nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot self-update a development version")
		assert.Empty(t, *calls)
	}
}

func TestSelfUpdate(t *testing.T) {
	newer := release{Version: "1.3.0", AssetURL: "https://example.test/colorctl_1.3.0.tar.gz", AssetName: "colorctl_1.3.0.tar.gz"}

	tests := []struct {
		name       string
		latest     release
		found      bool
		detectErr  error
		wantErr    string
		wantOut    string
		wantUpdate bool
	}{
		{
			name:      "detect fails",
			detectErr: errors.New("rate limited"),
			wantErr:   "error occurred while detecting version: rate limited",
		},
		{
			name:    "no release published",
			found:   false,
			wantErr: "no colorctl release found in github repository vigneshncc/JSColor",
		},
		{
			name:    "already latest",
			latest:  release{Version: "1.2.0"},
			found:   true,
			wantOut: "Current version (1.2.0) is the latest",
		},
		{
			name:    "older release",
			latest:  release{Version: "1.1.9"},
			found:   true,
			wantOut: "is the latest",
		},
		{
			name:    "invalid release version",
			latest:  release{Version: "nightly"},
			found:   true,
			wantErr: `latest release has an invalid version "nightly"`,
		},
		{
			name:       "newer release",
			latest:     newer,
			found:      true,
			wantOut:    "Successfully updated to version 1.3.0",
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "1.2.0")
			askedRepo, calls := mockUpdater(t, tt.latest, tt.found, tt.detectErr)

			out, _, err := executeCommand(t, config.GetDefaultConfig(), "self-update")
			assert.Equal(t, githubRepoSlug, *askedRepo)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out, tt.wantOut)
			}

			if tt.wantUpdate {
				require.Len(t, *calls, 1)
				assert.Equal(t, updateCall{newer.AssetURL, newer.AssetName, "/usr/local/bin/colorctl"}, (*calls)[0])
			} else {
				assert.Empty(t, *calls)
			}
		})
	}
}

func TestSelfUpdate_RepoFlag(t *testing.T) {
	withVersion(t, "v1.2.0")
	askedRepo, _ := mockUpdater(t, release{Version: "v1.2.0"}, true, nil)

	out, _, err := executeCommand(t, config.GetDefaultConfig(), "self-update", "--repo", "acme/colorctl")
	require.NoError(t, err)
	assert.Equal(t, "acme/colorctl", *askedRepo)
	assert.Contains(t, out, "Checking acme/colorctl for updates")
}

func TestSelfUpdate_UpdateFails(t *testing.T) {
	withVersion(t, "1.0.0")
	mockUpdater(t, release{Version: "2.0.0", AssetName: "colorctl.tar.gz"}, true, nil)
	updateTo = func(context.Context, string, string, string) error { return errors.New("permission denied") }

	_, _, err := executeCommand(t, config.GetDefaultConfig(), "self-update")
	require.Error(t, err)
	assert.EqualError(t, err, "error occurred while updating binary: permission denied")
}

func TestSelfUpdate_NonReleaseVersion(t *testing.T) {
	withVersion(t, "feature-branch")
	_, calls := mockUpdater(t, release{}, false, nil)

	err := runSelfUpdate(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `current version "feature-branch" is not a release version`)
	assert.Empty(t, *calls)
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	out, _, err := executeCommand(t, config.GetDefaultConfig(), "self-update", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Checks for the latest release")
	assert.Contains(t, out, "--repo")
}
