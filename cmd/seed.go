package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replaces the site content with sample data",
	Long: `seed deletes the existing projects, skills, technologies, certifications,
posts, messages and settings and loads the sample portfolio. Admin accounts
are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		summary, err := store.Seed(cmd.Context())
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"projects":       summary.Projects,
			"skills":         summary.Skills,
			"technologies":   summary.Technologies,
			"certifications": summary.Certifications,
			"posts":          summary.Posts,
			"contacts":       summary.Contacts,
		}).Info("database seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
