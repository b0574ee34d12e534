package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumeai/resumeai-cli/internal/logger"
	"github.com/resumeai/resumeai-cli/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session locally",
	Run: func(_ *cobra.Command, _ []string) {
		login()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted session",
	Run: func(_ *cobra.Command, _ []string) {
		logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the signed-in user",
	Run: func(_ *cobra.Command, _ []string) {
		whoami()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func login() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	shell := session.NewShell(session.NewStore(""))

	if current, ok := shell.Current(); ok {
		logger.Info("replacing existing session", zap.String("email", current.Email))
	}

	namePrompt := promptui.Prompt{
		Label: "Full name (press enter to derive it from the email)",
	}
	name, err := namePrompt.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	emailPrompt := promptui.Prompt{
		Label:    "Email",
		Validate: session.ValidateEmail,
	}
	email, err := emailPrompt.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	// The password is checked for shape only. It is never stored or sent
	// anywhere, so its value is discarded right after the prompt.
	passwordPrompt := promptui.Prompt{
		Label:    "Password",
		Mask:     '*',
		Validate: session.ValidatePassword,
	}
	if _, err := passwordPrompt.Run(); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	sess, err := shell.Login(name, email)
	if err != nil {
		logger.Fatal("signing in", zap.Error(err))
	}

	logger.Info("signed in",
		zap.String("name", sess.Name),
		zap.String("email", sess.Email),
	)
}

func logout() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	shell := session.NewShell(session.NewStore(""))
	if _, ok := shell.Current(); !ok {
		logger.Info("no active session")
		return
	}

	if err := shell.Logout(); err != nil {
		logger.Fatal("clearing the session", zap.Error(err))
	}

	logger.Info("signed out")
}

func whoami() {
	shell := session.NewShell(session.NewStore(""))
	current, ok := shell.Current()
	if !ok {
		fmt.Println("not signed in")
		return
	}

	fmt.Printf("%s <%s>\n", current.Name, current.Email)
}
