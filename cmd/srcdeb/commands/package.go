package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/srcdeb/srcdeb/internal/app"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package [dir]",
		Short: "Build a Debian package from a source tree",
		Long: `Build a Debian package from a source tree.

The tree is either checked out from a repository (--git or --svn) or used in
place from the given directory (defaults to the current one).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := runConfig(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Package(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("git", "", "git repository URL to check out and package")
	cmd.Flags().String("svn", "", "subversion repository URL to check out and package")
	cmd.Flags().StringP("output", "o", ".", "directory receiving the built artifacts")
	cmd.Flags().Bool("strict", false, "fail when scanning discovers a dependency the manifest does not declare")
	cmd.Flags().Bool("test", true, "run the project's test suite before building")
	cmd.Flags().Bool("keep", false, "keep the staging checkout after the run")
	cmd.Flags().String("maintainer", "", "maintainer name (defaults to $DEBFULLNAME)")
	cmd.Flags().String("email", "", "maintainer email (defaults to $DEBEMAIL)")
	cmd.MarkFlagsMutuallyExclusive("git", "svn")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) (app.RunConfig, error) {
	flags := cmd.Flags()

	git, err := flags.GetString("git")
	if err != nil {
		return app.RunConfig{}, err
	}
	svn, err := flags.GetString("svn")
	if err != nil {
		return app.RunConfig{}, err
	}
	output, err := flags.GetString("output")
	if err != nil {
		return app.RunConfig{}, err
	}
	strict, err := flags.GetBool("strict")
	if err != nil {
		return app.RunConfig{}, err
	}
	test, err := flags.GetBool("test")
	if err != nil {
		return app.RunConfig{}, err
	}
	keep, err := flags.GetBool("keep")
	if err != nil {
		return app.RunConfig{}, err
	}
	name, err := flags.GetString("maintainer")
	if err != nil {
		return app.RunConfig{}, err
	}
	email, err := flags.GetString("email")
	if err != nil {
		return app.RunConfig{}, err
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	// A checkout URL and a directory select conflicting source modes; refuse
	// to guess which one was meant.
	if dir != "" && (git != "" || svn != "") {
		return app.RunConfig{}, zerr.New("a directory argument cannot be combined with --git or --svn")
	}

	return app.RunConfig{
		Source:    domain.SourceSpec{GitURL: git, SvnURL: svn, Dir: dir},
		OutputDir: output,
		Strict:    strict,
		RunTests:  test,
		Keep:      keep,
		Maintainer: domain.Maintainer{
			Name:  fallback(name, os.Getenv("DEBFULLNAME"), "srcdeb"),
			Email: fallback(email, os.Getenv("DEBEMAIL"), "srcdeb@localhost"),
		},
	}, nil
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
