package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var adminEmail, adminPassword, adminName string

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Creates an admin account for the admin screens and API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(adminPassword) < 8 {
			return errors.New("the password must be at least 8 characters long")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, err := store.CreateAdminUser(cmd.Context(), adminEmail, adminName, adminPassword)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("an admin with email %s already exists", adminEmail)
		}
		if err != nil {
			return err
		}

		log.WithField("email", user.Email).Info("admin created")
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createAdminCmd)
}
