package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeai/resumeai-cli/internal/analyzer"
	"github.com/resumeai/resumeai-cli/internal/logger"
	"github.com/resumeai/resumeai-cli/internal/render"
	"github.com/resumeai/resumeai-cli/internal/report"
	"github.com/resumeai/resumeai-cli/internal/secrets"
	"github.com/resumeai/resumeai-cli/internal/session"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <semantic|quality|improve|ml>",
	Short: "Submit a resume and a job description to one analysis endpoint and display the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "path to the resume file (required)")
	analyzeCmd.Flags().String("job-description", "", "job description text")
	analyzeCmd.Flags().String("job-description-file", "", "file containing the job description text")
	analyzeCmd.Flags().StringP("output", "o", "", "also write the report as markdown to this file")

	analyzeCmd.MarkFlagRequired("resume")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, kindArg string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	kind, err := report.ParseKind(kindArg)
	if err != nil {
		logger.Fatal("parsing the analysis kind", zap.Error(err))
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	shell := session.NewShell(session.NewStore(""))
	user, ok := shell.Current()
	if !ok {
		logger.Fatal("no active session",
			zap.String("hint", "run 'resumeai login' first"),
		)
	}

	resumePath := cmd.Flag("resume").Value.String()
	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		logger.Fatal("reading the resume file", zap.Error(err))
	}
	if len(resumeData) == 0 {
		logger.Fatal("resume file is empty", zap.String("path", resumePath))
	}

	jobDescription, err := resolveJobDescription(cmd)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	token, err := secrets.LoadToken(config.APITokenFile)
	if err != nil {
		logger.Fatal("loading the api token",
			zap.Error(err),
			zap.String("hint", "set RESUMEAI_TOKEN_FILE environment variable or the 'api-token-file' key in the configuration file"),
		)
	}

	client := analyzer.New(ctx, logger, config.BaseURL)
	client.Token = token
	client.HTTPClient.Timeout = time.Duration(config.TimeoutSeconds) * time.Second
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	logger.Info("starting the analysis",
		zap.String("version", version),
		zap.String("kind", string(kind)),
		zap.String("user", user.Email),
		zap.String("resume", filepath.Base(resumePath)),
	)

	raw, submitErr := client.Submit(kind, analyzer.Artifact{
		Name: filepath.Base(resumePath),
		Data: resumeData,
	}, jobDescription)

	// Every gateway outcome ends in a displayable tree; failures become a
	// single kind-labeled alert.
	rep := report.Normalize(kind, raw, submitErr)
	tree := render.Render(kind, rep, false)

	if err := render.WriteText(os.Stdout, tree); err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := exportMarkdown(output, tree); err != nil {
			logger.Fatal("writing the markdown report", zap.Error(err))
		}
		logger.Info("markdown report written", zap.String("filename", output))
	}
}

func resolveJobDescription(cmd *cobra.Command) (string, error) {
	if text := cmd.Flag("job-description").Value.String(); text != "" {
		return text, nil
	}

	file := strings.TrimSpace(cmd.Flag("job-description-file").Value.String())
	if file == "" {
		// An empty job description is allowed; the service decides whether
		// it needs one.
		return "", nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func exportMarkdown(path string, tree *render.Tree) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return render.NewMarkdownWriter(file).Write(tree)
}
