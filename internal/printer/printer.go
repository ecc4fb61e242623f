// Package printer renders client listings for the terminal.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/clientbook/clientbook/internal/domain"
)

// Format selects how a listing is rendered
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

const (
	notFoundMessage = "Клиент не найден."
	listingHeader   = "Информация о клиенте:"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", name)
	}
}

// PrintClients writes clients to w in the given format
func PrintClients(w io.Writer, clients []*domain.Client, format Format) error {
	switch format {
	case FormatTable:
		return renderTable(w, clients)
	case FormatJSON:
		return renderJSON(w, clients)
	case FormatText, "":
		return renderText(w, clients)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderText(w io.Writer, clients []*domain.Client) error {
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, notFoundMessage)
		return err
	}

	var b strings.Builder
	b.WriteString(listingHeader + "\n")
	for _, c := range clients {
		fmt.Fprintf(&b, "ID: %d\nИмя: %s\nФамилия: %s\nEmail: %s\n", c.ID, c.FirstName, c.LastName, c.Email)
		if len(c.Phones) > 0 {
			fmt.Fprintf(&b, "Телефоны: %s\n", strings.Join(c.Phones, ", "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(w io.Writer, clients []*domain.Client) error {
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, notFoundMessage)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"ID", "Имя", "Фамилия", "Email", "Телефоны"})

	for _, c := range clients {
		t.AppendRow(table.Row{c.ID, c.FirstName, c.LastName, c.Email, strings.Join(c.Phones, ", ")})
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, clients []*domain.Client) error {
	if clients == nil {
		clients = []*domain.Client{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(clients)
}
