package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evgkondr/bidpilot/internal/adapter"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/internal/service"
	"github.com/evgkondr/bidpilot/models"
)

// App drives the interactive session: one conversation open at a time, with
// send/edit/backup commands read line by line.
type App struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	in  io.Reader
	out io.Writer

	activeConversation string
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, log *logger.Logger) *App {
	return &App{
		services: services,
		adapter:  serverAdapter,
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "bidpilot client. Commands: open, list, send, edit, export, import, close, quit")

	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "open":
			err = a.openConversation(ctx, rest)
		case "list":
			err = a.listMessages()
		case "send":
			err = a.sendMessage(ctx, rest)
		case "edit":
			err = a.editMessage(ctx, rest)
		case "export":
			err = a.exportBackup(ctx, rest)
		case "import":
			err = a.importBackup(ctx, rest)
		case "close":
			a.closeConversation()
		case "quit", "exit":
			a.closeConversation()
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
		}

		if err != nil {
			a.logger.Debug().Err(err).Str("cmd", cmd).Msg("command failed")
			fmt.Fprintf(a.out, "error: %v\n", a.presentError(err))
		}
	}
}

func (a *App) openConversation(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return errors.New("usage: open <conversation-id>")
	}

	a.closeConversation()

	thread, err := a.services.ConversationService.Open(ctx, conversationID)
	if err != nil {
		return err
	}

	a.activeConversation = conversationID
	a.printThread(thread)
	return nil
}

func (a *App) listMessages() error {
	if a.activeConversation == "" {
		return errors.New("no open conversation")
	}

	thread, err := a.services.ConversationService.Messages(a.activeConversation)
	if err != nil {
		return err
	}
	a.printThread(thread)
	return nil
}

func (a *App) sendMessage(ctx context.Context, text string) error {
	if a.activeConversation == "" {
		return errors.New("no open conversation")
	}
	if text == "" {
		return errors.New("usage: send <text>")
	}

	thread, err := a.services.ConversationService.Send(ctx, a.activeConversation, models.TextContent(text))
	if err != nil {
		return err
	}
	a.printThread(thread)
	return nil
}

func (a *App) editMessage(ctx context.Context, args string) error {
	if a.activeConversation == "" {
		return errors.New("no open conversation")
	}

	messageID, text, _ := strings.Cut(args, " ")
	text = strings.TrimSpace(text)
	if messageID == "" || text == "" {
		return errors.New("usage: edit <message-id> <text>")
	}

	thread, err := a.services.ConversationService.Edit(ctx, a.activeConversation, messageID, models.TextContent(text))
	if err != nil {
		return err
	}
	a.printThread(thread)
	return nil
}

func (a *App) exportBackup(ctx context.Context, args string) error {
	path, passphrase, _ := strings.Cut(args, " ")
	passphrase = strings.TrimSpace(passphrase)
	if path == "" || passphrase == "" {
		return errors.New("usage: export <file> <passphrase>")
	}

	tenantID := a.adapter.TenantID()
	artifact, err := a.services.BackupService.Export(ctx, tenantID, passphrase)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}

	fmt.Fprintf(a.out, "key backup written to %s\n", path)
	return nil
}

func (a *App) importBackup(ctx context.Context, args string) error {
	path, passphrase, _ := strings.Cut(args, " ")
	passphrase = strings.TrimSpace(passphrase)
	if path == "" || passphrase == "" {
		return errors.New("usage: import <file> <passphrase>")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	var artifact models.BackupArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return service.ErrBadPassphraseOrCorrupt
	}

	if err := a.services.BackupService.Import(ctx, artifact, passphrase, a.adapter.TenantID()); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "master key restored from backup")
	return nil
}

func (a *App) closeConversation() {
	if a.activeConversation == "" {
		return
	}
	a.services.ConversationService.Close(a.activeConversation)
	a.activeConversation = ""
}

func (a *App) printThread(thread []models.Message) {
	for _, msg := range thread {
		marker := " "
		switch msg.State {
		case models.StatePending:
			marker = "…"
		case models.StateSecured:
			marker = "✓"
		}

		text := msg.Content.Text
		if msg.Content.HasImages() {
			text = fmt.Sprintf("%s [%d image(s)]", text, len(msg.Content.Images))
		}
		fmt.Fprintf(a.out, "%s [%s] %s: %s\n", marker, msg.ID, msg.Role, text)
	}
}

// presentError flattens well-known failures into a message fit for the
// prompt; everything else passes through with its cause chain.
func (a *App) presentError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return errors.New("session expired, set a fresh token and restart")
	case errors.Is(err, service.ErrThreadBusy):
		return errors.New("previous request still in flight, try again")
	case errors.Is(err, service.ErrEditInProgress):
		return errors.New("another edit is active in this conversation")
	default:
		return err
	}
}
