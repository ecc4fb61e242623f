package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clientbook/clientbook/internal/domain"
)

func (r *runner) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the client tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				if err := svc.InitializeSchema(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgSchemaReady)
				return nil
			})
		},
	}
}

func (r *runner) newResetCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every client and phone and recreate the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return domain.NewValidationError("reset deletes every client, pass --yes to confirm")
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				if err := svc.ResetSchema(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgSchemaReset)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm that all data is deleted")
	return cmd
}

func (r *runner) newCreateCmd() *cobra.Command {
	var phones []string

	cmd := &cobra.Command{
		Use:   "create <first-name> <last-name> <email>",
		Short: "Create a client, optionally with phone numbers",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &domain.Client{
				FirstName: args[0],
				LastName:  args[1],
				Email:     args[2],
				Phones:    phones,
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				id, err := svc.CreateClient(ctx, client)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), msgClientCreated+"\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&phones, "phone", nil, "phone number to attach (repeatable)")
	return cmd
}

func (r *runner) newAddPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-phone <client-id> <phone>",
		Short: "Add a phone number to a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				if err := svc.AddPhone(ctx, clientID, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), msgPhoneAdded+"\n", args[1], clientID)
				return nil
			})
		},
	}
}

func (r *runner) newUpdateCmd() *cobra.Command {
	var update domain.ClientUpdate

	cmd := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Change a client's name or email",
		Long:  "Change a client's name or email. Only the flags that are given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				if err := svc.UpdateClient(ctx, clientID, update); err != nil {
					return err
				}
				if update.IsEmpty() {
					fmt.Fprintln(cmd.OutOrStdout(), msgNothingToUpdate)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), msgClientUpdated+"\n", clientID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&update.FirstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&update.LastName, "last-name", "", "new last name")
	cmd.Flags().StringVar(&update.Email, "email", "", "new email")
	return cmd
}

func (r *runner) newDeletePhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-phone <client-id> <phone>",
		Short: "Remove a phone number from a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				deleted, err := svc.DeletePhone(ctx, clientID, args[1])
				if err != nil {
					return err
				}
				if deleted == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), msgPhoneNotFound+"\n", args[1], clientID)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), msgPhoneDeleted+"\n", args[1], clientID)
				return nil
			})
		},
	}
}

func (r *runner) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client and all of its phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				if err := svc.DeleteClient(ctx, clientID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), msgClientDeleted+"\n", clientID)
				return nil
			})
		},
	}
}

func (r *runner) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <client-id>",
		Short: "Show a single client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				client, err := svc.GetClient(ctx, clientID)
				if err != nil {
					return err
				}
				return r.printClients(cmd, []*domain.Client{client})
			})
		},
	}
}

func (r *runner) newFindCmd() *cobra.Command {
	var filter domain.ClientFilter

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find clients by id, name, email or phone",
		Long: `Find clients by id, name, email or phone.

When --phone is given the other filters are ignored. Otherwise every given
filter must match. At least one filter is required; use "list" to show
every client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				clients, err := svc.FindClients(ctx, filter)
				if err != nil {
					return err
				}
				return r.printClients(cmd, clients)
			})
		},
	}

	cmd.Flags().Int64Var(&filter.ID, "id", 0, "client id")
	cmd.Flags().StringVar(&filter.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&filter.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&filter.Email, "email", "", "email")
	cmd.Flags().StringVar(&filter.Phone, "phone", "", "phone number")
	return cmd
}

func (r *runner) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
				clients, err := svc.ListClients(ctx)
				if err != nil {
					return err
				}
				return r.printClients(cmd, clients)
			})
		},
	}
}
