// cmd/fitscore/submit.go
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/profile"
)

// matchProcessID is the BPMN process that validates, ranks and reports.
const matchProcessID = "franchise-match"

type submitOptions struct {
	profile profileFlags
	userID  string
	email   string
}

var submitOpts submitOptions

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Start the franchise-match process in Zeebe for a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		p, err := submitOpts.profile.resolve()
		if err != nil {
			return err
		}
		answers, err := profile.ToAnswers(p)
		if err != nil {
			return err
		}

		userID := submitOpts.userID
		if userID == "" {
			userID = uuid.NewString()
		}
		vars := map[string]interface{}{
			"userId":  userID,
			"answers": answers,
			"persist": true,
		}
		if submitOpts.email != "" {
			vars["email"] = submitOpts.email
		}

		client, err := camunda.NewClient(e.cfg.Camunda.BrokerAddress)
		if err != nil {
			return err
		}
		defer client.Close()

		key, err := client.StartProcess(cmd.Context(), matchProcessID, vars)
		if err != nil {
			return err
		}
		e.log.Info("process started", map[string]interface{}{"processInstanceKey": key, "userId": userID})
		fmt.Fprintf(cmd.OutOrStdout(), "started %s instance %d for user %s\n", matchProcessID, key, userID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitOpts.profile.register(submitCmd)
	submitCmd.Flags().StringVar(&submitOpts.userID, "user-id", "", "user id (default: random)")
	submitCmd.Flags().StringVar(&submitOpts.email, "email", "", "address for the match report")
}
