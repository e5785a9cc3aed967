package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/services"
)

func newSendCommand() *cobra.Command {
	var (
		lead       models.LeadSubmission
		experience string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit one lead to the intake endpoint",
		Long: `Runs a single lead through the same validation and submission flow as the
web form. Useful for checking that LEAD_ENDPOINT_URL accepts submissions.`,
		Example: `  recruit-landing send --name 홍길동 --phone 010-1234-5678 --region "서울 강남구" --experience new --privacy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lead.Experience = models.Experience(experience)
			return runSend(cmd, lead)
		},
	}

	cmd.Flags().StringVar(&lead.Name, "name", "", "applicant name")
	cmd.Flags().StringVar(&lead.Phone, "phone", "", "mobile number, e.g. 010-1234-5678")
	cmd.Flags().StringVar(&lead.Region, "region", "", "region of residence")
	cmd.Flags().StringVar(&experience, "experience", "", "one of new, under_1, 1_3, over_3, manager")
	cmd.Flags().BoolVar(&lead.Privacy, "privacy", false, "applicant consents to data collection")
	return cmd
}

func runSend(cmd *cobra.Command, lead models.LeadSubmission) error {
	_, sink, log, err := bootstrap()
	if err != nil {
		return err
	}

	flow := services.NewLeadFlow(sink, log)
	flow.Update(lead)

	receipt, err := flow.Submit(cmd.Context())
	out := cmd.OutOrStdout()

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		for _, field := range verr.Fields.Fields() {
			fmt.Fprintf(out, "%s: %s\n", field, verr.Fields[field])
		}
		return err
	}
	if err != nil {
		if notice := flow.Snapshot().Notice; notice != nil {
			fmt.Fprintln(out, notice.Message)
		}
		return err
	}

	fmt.Fprintf(out, "%s (submission %s, status %d, confirmed=%t)\n",
		services.MessageSubmitted, receipt.SubmissionID, receipt.StatusCode, receipt.Confirmed)
	return nil
}
