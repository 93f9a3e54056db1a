// Command grouplab-audit validates authored level content offline: it
// loads level-definition files (JSON or YAML), re-derives every author
// claim through the engine's exhaustive verification paths, and reports
// each discrepancy. A non-zero exit code on any finding makes it suitable
// as a CI gate over content repositories.
//
// Usage:
//
//	grouplab-audit check levels/*.json levels/*.yaml
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grouplab/level"
)

var errFindings = errors.New("grouplab-audit: discrepancies found")

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "grouplab-audit",
	Short:         "Audit authored group-theory level content",
	Long:          "Re-derives subgroup, normality, and quotient-type claims in level files and reports every disagreement with the engine's exhaustive verification.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Check level definition files for content defects",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every audited file, not only findings")
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runCheck(_ *cobra.Command, args []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	findings := 0
	for _, path := range args {
		n, auditErr := auditFile(logger, path)
		if auditErr != nil {
			logger.Error("audit failed",
				zap.String("file", path),
				zap.Error(auditErr))
			findings++
			continue
		}
		findings += n
	}

	if findings > 0 {
		logger.Error("content audit failed", zap.Int("findings", findings))
		return errFindings
	}
	logger.Info("content audit passed", zap.Int("files", len(args)))

	return nil
}

// auditFile decodes one definition by extension and audits it, logging
// each discrepancy. Returns the number of findings.
func auditFile(logger *zap.Logger, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	var def *level.Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		def, err = level.DecodeYAML(f)
	default:
		def, err = level.DecodeJSON(f)
	}
	if err != nil {
		return 0, err
	}

	disc, err := level.Audit(def)
	if err != nil {
		return 0, err
	}

	for _, d := range disc {
		logger.Warn("content discrepancy",
			zap.String("file", path),
			zap.String("level", def.Name),
			zap.String("kind", d.Kind.String()),
			zap.Int("subgroup", d.Subgroup),
			zap.String("detail", d.Detail))
	}
	if verbose && len(disc) == 0 {
		logger.Info("level consistent",
			zap.String("file", path),
			zap.String("level", def.Name),
			zap.Int("subgroups", len(def.Subgroups)))
	}

	return len(disc), nil
}

// buildLogger returns a console logger; verbose enables debug level.
func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}
