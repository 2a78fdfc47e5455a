package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/internal/catalog"
)

func (a *app) newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Add and list members",
	}
	cmd.AddCommand(a.newMemberAddCmd())
	cmd.AddCommand(a.newMemberListCmd())
	return cmd
}

func (a *app) newMemberAddCmd() *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}

			member, err := cat.AddMember(name, email, phone)
			if err != nil {
				return validationError(err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), member.ToMap())
			}
			fmt.Fprintln(cmd.OutOrStdout(), catalog.MemberAdded(member, nil).Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "member name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSONList(cmd.OutOrStdout(), cat.Members())
			}
			writeMembers(cmd.OutOrStdout(), cat.Members())
			return nil
		},
	}
}
