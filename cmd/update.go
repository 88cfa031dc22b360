package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// Version is the current forge version, set at build time via ldflags.
var Version = "dev"

// GitHub repository hosting forge releases.
const (
	repoOwner = "forgeworks"
	repoName  = "forge"
)

var (
	updateCheck bool
	updateForce bool
	updatePre   bool
	updateYes   bool
)

// updateCmd updates forge to the latest release.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update forge to the latest version",
	Long: `Update forge to the latest version from GitHub releases.

The release binary is verified against the published checksums file
before the running binary is replaced.

Examples:
  forge update           # Update to the latest release
  forge update --check   # Only check whether an update is available
  forge update --yes     # Update without confirmation
  forge update --force   # Reinstall even if already up to date
  forge update --pre     # Include pre-release versions`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVarP(&updateCheck, "check", "c", false, "Check for updates without installing")
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Force update even if already up to date")
	updateCmd.Flags().BoolVarP(&updatePre, "pre", "p", false, "Include pre-release versions")
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Skip the confirmation prompt")
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

func runUpdate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return errors.Wrap(err, "failed to create GitHub release source")
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:     source,
		Validator:  &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		Prerelease: updatePre,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create updater")
	}

	repo := selfupdate.NewRepositorySlug(repoOwner, repoName)
	latest, found, err := updater.DetectLatest(ctx, repo)
	if err != nil {
		return errors.Wrap(err, "failed to check for updates")
	}
	if !found {
		return errors.Newf("no releases found for %s/%s", repoOwner, repoName)
	}

	current := GetVersion()
	isDevVersion := current == "dev"

	latestLessEqual := false
	if !isDevVersion {
		currentVer, verErr := semver.NewVersion(current)
		if verErr == nil {
			latestVer, latestErr := semver.NewVersion(latest.Version())
			if latestErr != nil {
				return errors.Wrapf(latestErr, "invalid latest version %s", latest.Version())
			}
			latestLessEqual = !latestVer.GreaterThan(currentVer)
		}
	}

	if updateCheck {
		if !isDevVersion && latestLessEqual {
			fmt.Printf("forge %s is up to date.\n", current)
		} else {
			fmt.Printf("Update available: %s -> %s\n", current, latest.Version())
		}
		return nil
	}

	if !isDevVersion && latestLessEqual && !updateForce {
		fmt.Printf("forge %s is up to date.\n", current)
		return nil
	}

	if !updateYes && !confirmUpdate(current, latest.Version()) {
		fmt.Println("Update cancelled.")
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return errors.Wrap(err, "could not locate executable path")
	}

	fmt.Printf("Updating to %s...\n", latest.Version())
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return errors.Wrap(err, "update failed")
	}

	fmt.Printf("Updated forge to %s\n", latest.Version())
	return nil
}

// confirmUpdate asks the user to confirm the update. Only "y" or "yes"
// (any case) confirms.
func confirmUpdate(currentVersion, newVersion string) bool {
	fmt.Printf("Update forge from %s to %s? [y/N]: ", currentVersion, newVersion)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
