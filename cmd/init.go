package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"jiralog/internal/jiralog/errors"
	"jiralog/internal/jiralog/validate"
	"jiralog/internal/log"
)

// envFileName is where init stores the credentials, the same file the
// logger loads on every run.
const envFileName = ".env"

var (
	initEmail   string
	initToken   string
	initDomain  string
	initCloudID string
	initForce   bool
)

// creds holds the values written to the .env file.
type creds struct {
	Email   string
	Token   string
	Domain  string
	CloudID string
}

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Create a .env file with Jira credentials",
	Long: `Create a .env file in the working directory holding the credentials
jiralog reads on every run.

You can provide values via flags or be prompted for input interactively.
API tokens are created at:
  https://id.atlassian.com/manage-profile/security/api-tokens`,
	Example: `  # Initialize with prompts
  jiralog init

  # Initialize with flags
  jiralog init --email dev@example.com --domain mycompany.atlassian.net

  # Overwrite an existing .env
  jiralog init --force`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := checkEnvOverwrite(envFileName, initForce); err != nil {
			log.Fatal(err)
		}

		c := creds{
			Email:   initEmail,
			Token:   initToken,
			Domain:  initDomain,
			CloudID: initCloudID,
		}
		if err := promptMissing(&c); err != nil {
			log.Fatal(err)
		}
		if err := c.validate(); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(envFileName, []byte(renderEnv(c)), 0600); err != nil {
			log.Fatal(err)
		}

		log.Info("Credentials saved to %s", envFileName)
		log.InfoH2("Site: %s", c.Domain)
		log.InfoH2("User: %s", c.Email)
	},
}

// checkEnvOverwrite refuses to clobber an existing env file unless force is
// set.
func checkEnvOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, pass --force to overwrite it", path)
	}
	return nil
}

// promptMissing asks for every credential that was not given as a flag.
func promptMissing(c *creds) error {
	var questions []*survey.Question
	if c.Email == "" {
		questions = append(questions, &survey.Question{
			Name:   "email",
			Prompt: &survey.Input{Message: "Jira account email:"},
		})
	}
	if c.Token == "" {
		questions = append(questions, &survey.Question{
			Name:   "token",
			Prompt: &survey.Password{Message: "Jira API token:"},
		})
	}
	if c.Domain == "" {
		questions = append(questions, &survey.Question{
			Name:   "domain",
			Prompt: &survey.Input{Message: "Jira domain (like mycompany.atlassian.net):"},
		})
	}
	if c.CloudID == "" {
		questions = append(questions, &survey.Question{
			Name:   "cloudid",
			Prompt: &survey.Input{Message: "Jira cloud ID (optional):"},
		})
	}
	if len(questions) == 0 {
		return nil
	}

	answers := struct {
		Email   string `survey:"email"`
		Token   string `survey:"token"`
		Domain  string `survey:"domain"`
		CloudID string `survey:"cloudid"`
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("init canceled: %w", err)
	}

	if answers.Email != "" {
		c.Email = answers.Email
	}
	if answers.Token != "" {
		c.Token = answers.Token
	}
	if answers.Domain != "" {
		c.Domain = answers.Domain
	}
	if answers.CloudID != "" {
		c.CloudID = answers.CloudID
	}
	return nil
}

// validate checks the credential values and normalizes the domain. The
// cloud ID may stay empty.
func (c *creds) validate() error {
	if !validate.Email(c.Email) {
		return errors.Wrapf(errors.ErrInvalidEmail, "%q", c.Email)
	}
	if c.Token == "" {
		return errors.Wrap(errors.ErrMissingConfig, "API token")
	}
	domain, err := validate.NormalizeDomain(c.Domain)
	if err != nil {
		return err
	}
	c.Domain = domain
	return nil
}

// renderEnv lays out the .env file using the primary variable names.
func renderEnv(c creds) string {
	content := fmt.Sprintf("JIRA_EMAIL=%s\nJIRA_API_TOKEN=%s\nJIRA_DOMAIN=%s\n",
		c.Email, c.Token, c.Domain)
	if c.CloudID != "" {
		content += fmt.Sprintf("JIRA_CLOUD_ID=%s\n", c.CloudID)
	}
	return content
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initEmail, "email", "", "Jira account email")
	initCmd.Flags().StringVar(&initToken, "token", "", "Jira API token")
	initCmd.Flags().StringVar(&initDomain, "domain", "", "Jira site domain")
	initCmd.Flags().StringVar(&initCloudID, "cloud-id", "", "Jira cloud ID")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing .env file")
}
