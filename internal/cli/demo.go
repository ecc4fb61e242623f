package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clientbook/clientbook/internal/domain"
)

// Status lines printed by the commands
const (
	msgSchemaReady     = "Структура базы данных готова."
	msgSchemaReset     = "Все данные удалены, структура базы данных создана заново."
	msgClientCreated   = "Клиент добавлен, ID: %d"
	msgPhoneAdded      = "Телефон %s добавлен клиенту %d."
	msgClientUpdated   = "Данные клиента %d изменены."
	msgNothingToUpdate = "Нет данных для изменения."
	msgPhoneDeleted    = "Телефон %s удалён у клиента %d."
	msgPhoneNotFound   = "Телефон %s у клиента %d не найден."
	msgClientDeleted   = "Клиент %d удалён."
)

// Demonstration data
const (
	demoFirstName = "Boris"
	demoLastName  = "Ivanov"
	demoEmail     = "borisivanov@mail.ru"
	demoPhone     = "79301506287"
	demoNewName   = "Ivan"
)

func (r *runner) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, r.runDemo)
		},
	}
}

// runDemo walks a client through its whole lifecycle and finally searches for it
func (r *runner) runDemo(ctx context.Context, cmd *cobra.Command, svc domain.ClientService) error {
	out := cmd.OutOrStdout()

	if err := svc.InitializeSchema(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, msgSchemaReady)

	id, err := svc.CreateClient(ctx, &domain.Client{
		FirstName: demoFirstName,
		LastName:  demoLastName,
		Email:     demoEmail,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, msgClientCreated+"\n", id)

	if err := svc.AddPhone(ctx, id, demoPhone); err != nil {
		return err
	}
	fmt.Fprintf(out, msgPhoneAdded+"\n", demoPhone, id)

	if err := svc.UpdateClient(ctx, id, domain.ClientUpdate{FirstName: demoNewName}); err != nil {
		return err
	}
	fmt.Fprintf(out, msgClientUpdated+"\n", id)

	if _, err := svc.DeletePhone(ctx, id, demoPhone); err != nil {
		return err
	}
	fmt.Fprintf(out, msgPhoneDeleted+"\n", demoPhone, id)

	if err := svc.DeleteClient(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, msgClientDeleted+"\n", id)

	clients, err := svc.FindClients(ctx, domain.ClientFilter{FirstName: demoNewName})
	if err != nil {
		return err
	}
	return r.printClients(cmd, clients)
}
